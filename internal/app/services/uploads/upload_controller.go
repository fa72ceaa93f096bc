package uploads

import (
	"context"
	"net/http"
	"time"

	"auditflow-service/internal/pkg/constvars"
	"auditflow-service/internal/pkg/dto/requests"
	"auditflow-service/internal/pkg/exceptions"
	"auditflow-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UploadController struct {
	Log           *zap.Logger
	UploadUsecase UploadUsecase
}

func NewUploadController(logger *zap.Logger, uploadUsecase UploadUsecase) *UploadController {
	return &UploadController{
		Log:           logger,
		UploadUsecase: uploadUsecase,
	}
}

func (ctrl *UploadController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UploadAttachmentRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.UploadUsecase.UploadAttachment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadImageSuccess, response)
}
