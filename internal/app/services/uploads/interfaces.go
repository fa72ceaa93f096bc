package uploads

import (
	"context"

	"auditflow-service/internal/pkg/dto/requests"
	dtoresponses "auditflow-service/internal/pkg/dto/responses"
)

type UploadUsecase interface {
	UploadAttachment(ctx context.Context, request *requests.UploadAttachmentRequest) (*dtoresponses.UploadAttachmentResponse, error)
}
