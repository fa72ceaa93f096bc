package templates

import (
	"context"

	"auditflow-service/internal/app/models"
	"auditflow-service/internal/pkg/dto/requests"
)

type TemplateUsecase interface {
	CreateTemplate(ctx context.Context, request *requests.SaveTemplateRequest) (*models.Template, error)
	FindAllTemplates(ctx context.Context, page, pageSize int) ([]models.Template, int, error)
	FindTemplateByID(ctx context.Context, templateID string) (*models.Template, error)
	UpdateTemplate(ctx context.Context, templateID string, request *requests.SaveTemplateRequest) (*models.Template, error)
	DeleteTemplateByID(ctx context.Context, templateID string) error
	PublishTemplate(ctx context.Context, templateID string) (*models.Template, error)
}

type TemplateRepository interface {
	CreateTemplate(ctx context.Context, template *models.Template) (string, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Template, int, error)
	FindByID(ctx context.Context, templateID string) (*models.Template, error)
	UpdateTemplate(ctx context.Context, template *models.Template) error
	DeleteByID(ctx context.Context, templateID string) error
}

// ResponseCounter reports how many stored responses reference a template.
// Satisfied by the responses repository; declared here so templates does not
// depend on that package.
type ResponseCounter interface {
	CountByTemplateID(ctx context.Context, templateID string) (int64, error)
}
