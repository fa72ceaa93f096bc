package sessions

import (
	"context"
	"net/http"
	"time"

	"auditflow-service/internal/pkg/constvars"
	"auditflow-service/internal/pkg/dto/requests"
	"auditflow-service/internal/pkg/exceptions"
	"auditflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase SessionUsecase
}

func NewSessionController(logger *zap.Logger, sessionUsecase SessionUsecase) *SessionController {
	return &SessionController{
		Log:            logger,
		SessionUsecase: sessionUsecase,
	}
}

func (ctrl *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSessionRequest)
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

	response, err := ctrl.SessionUsecase.CreateSession(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSessionSuccess, response)
}

func (ctrl *SessionController) FindSessionByID(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.FindSessionByID(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindSessionSuccess, response)
}

func (ctrl *SessionController) SetAnswer(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetSessionAnswerRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.SetAnswer(ctx, sessionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetAnswerSuccess, response)
}

func (ctrl *SessionController) ResetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.ResetSession(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetSessionSuccess, response)
}

func (ctrl *SessionController) SubmitSession(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitSessionRequest)
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.SubmitSession(ctx, sessionID, request)
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
