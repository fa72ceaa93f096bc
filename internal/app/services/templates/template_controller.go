package templates

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"auditflow-service/internal/pkg/constvars"
	"auditflow-service/internal/pkg/dto/requests"
	"auditflow-service/internal/pkg/exceptions"
	"auditflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TemplateController struct {
	Log             *zap.Logger
	TemplateUsecase TemplateUsecase
}

func NewTemplateController(logger *zap.Logger, templateUsecase TemplateUsecase) *TemplateController {
	return &TemplateController{
		Log:             logger,
		TemplateUsecase: templateUsecase,
	}
}

func (ctrl *TemplateController) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveTemplateRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TemplateUsecase.CreateTemplate(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTemplateSuccess, response)
}

func (ctrl *TemplateController) FindAllTemplates(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	templates, total, err := ctrl.TemplateUsecase.FindAllTemplates(ctx, page, pageSize)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListTemplatesSuccess, pagination, templates)
}

func (ctrl *TemplateController) FindTemplateByID(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TemplateUsecase.FindTemplateByID(ctx, templateID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindTemplateSuccess, response)
}

func (ctrl *TemplateController) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveTemplateRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	templateID := chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TemplateUsecase.UpdateTemplate(ctx, templateID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTemplateSuccess, response)
}

func (ctrl *TemplateController) DeleteTemplateByID(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.TemplateUsecase.DeleteTemplateByID(ctx, templateID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteTemplateSuccess, nil)
}

func (ctrl *TemplateController) PublishTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TemplateUsecase.PublishTemplate(ctx, templateID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PublishTemplateSuccess, response)
}

func parsePagination(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
