package responses

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

type ResponseController struct {
	Log             *zap.Logger
	ResponseUsecase ResponseUsecase
}

func NewResponseController(logger *zap.Logger, responseUsecase ResponseUsecase) *ResponseController {
	return &ResponseController{
		Log:             logger,
		ResponseUsecase: responseUsecase,
	}
}

func (ctrl *ResponseController) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitResponseRequest)
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

	response, err := ctrl.ResponseUsecase.SubmitResponse(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitResponseSuccess, response)
}

func (ctrl *ResponseController) FindResponsesByTemplateID(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamTemplateID)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, total, err := ctrl.ResponseUsecase.FindResponsesByTemplateID(ctx, templateID, page, pageSize)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListResponsesSuccess, pagination, items)
}
