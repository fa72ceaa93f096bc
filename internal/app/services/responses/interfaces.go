package responses

import (
	"context"

	"auditflow-service/internal/app/models"
	"auditflow-service/internal/pkg/dto/requests"
	dtoresponses "auditflow-service/internal/pkg/dto/responses"
)

type ResponseUsecase interface {
	SubmitResponse(ctx context.Context, request *requests.SubmitResponseRequest) (*dtoresponses.SubmissionResultResponse, error)
	FindResponsesByTemplateID(ctx context.Context, templateID string, page, pageSize int) ([]models.Response, int, error)
}

type ResponseRepository interface {
	CreateResponse(ctx context.Context, response *models.Response) (string, error)
	FindByTemplateID(ctx context.Context, templateID string, page, pageSize int) ([]models.Response, int, error)
	CountByTemplateID(ctx context.Context, templateID string) (int64, error)
}

// TemplateFinder loads the template a submission answers. Satisfied by the
// templates repository; declared here so responses does not depend on that
// package.
type TemplateFinder interface {
	FindByID(ctx context.Context, templateID string) (*models.Template, error)
}
