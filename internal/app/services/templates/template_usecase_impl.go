package templates

import (
	"context"
	"fmt"
	"sync"

	"auditflow-service/internal/app/models"
	"auditflow-service/internal/app/services/engine"
	"auditflow-service/internal/pkg/constvars"
	"auditflow-service/internal/pkg/dto/requests"
	"auditflow-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type templateUsecase struct {
	TemplateRepository TemplateRepository
	ResponseCounter    ResponseCounter
	Log                *zap.Logger
}

var (
	templateUsecaseInstance TemplateUsecase
	onceTemplateUsecase     sync.Once
)

func NewTemplateUsecase(
	templateRepository TemplateRepository,
	responseCounter ResponseCounter,
	logger *zap.Logger,
) TemplateUsecase {
	onceTemplateUsecase.Do(func() {
		instance := &templateUsecase{
			TemplateRepository: templateRepository,
			ResponseCounter:    responseCounter,
			Log:                logger,
		}
		templateUsecaseInstance = instance
	})
	return templateUsecaseInstance
}

func (uc *templateUsecase) CreateTemplate(ctx context.Context, request *requests.SaveTemplateRequest) (*models.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("templateUsecase.CreateTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	template := request.ToModel()
	engine.NormalizeTemplate(template)
	if err := engine.ValidateTemplate(template); err != nil {
		uc.Log.Error("templateUsecase.CreateTemplate template invalid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTemplateInvalid(err)
	}

	templateID, err := uc.TemplateRepository.CreateTemplate(ctx, template)
	if err != nil {
		uc.Log.Error("templateUsecase.CreateTemplate error inserting template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	template.ID = templateID

	uc.Log.Info("templateUsecase.CreateTemplate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)
	return template, nil
}

func (uc *templateUsecase) FindAllTemplates(ctx context.Context, page, pageSize int) ([]models.Template, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("templateUsecase.FindAllTemplates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	templates, total, err := uc.TemplateRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		uc.Log.Error("templateUsecase.FindAllTemplates error fetching templates",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	return templates, total, nil
}

func (uc *templateUsecase) FindTemplateByID(ctx context.Context, templateID string) (*models.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("templateUsecase.FindTemplateByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)

	template, err := uc.TemplateRepository.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrTemplateNotFound(fmt.Errorf("template %s not found", templateID))
	}
	return template, nil
}

func (uc *templateUsecase) UpdateTemplate(ctx context.Context, templateID string, request *requests.SaveTemplateRequest) (*models.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("templateUsecase.UpdateTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)

	existing, err := uc.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureMutable(ctx, templateID); err != nil {
		return nil, err
	}

	template := request.ToModel()
	template.ID = existing.ID
	template.Status = existing.Status
	template.CreatedAt = existing.CreatedAt
	engine.NormalizeTemplate(template)
	if err := engine.ValidateTemplate(template); err != nil {
		uc.Log.Error("templateUsecase.UpdateTemplate template invalid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTemplateIDKey, templateID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTemplateInvalid(err)
	}

	if err := uc.TemplateRepository.UpdateTemplate(ctx, template); err != nil {
		uc.Log.Error("templateUsecase.UpdateTemplate error updating template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTemplateIDKey, templateID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("templateUsecase.UpdateTemplate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)
	return template, nil
}

func (uc *templateUsecase) DeleteTemplateByID(ctx context.Context, templateID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("templateUsecase.DeleteTemplateByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)

	if _, err := uc.FindTemplateByID(ctx, templateID); err != nil {
		return err
	}
	if err := uc.ensureMutable(ctx, templateID); err != nil {
		return err
	}

	if err := uc.TemplateRepository.DeleteByID(ctx, templateID); err != nil {
		uc.Log.Error("templateUsecase.DeleteTemplateByID error deleting template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTemplateIDKey, templateID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("templateUsecase.DeleteTemplateByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)
	return nil
}

func (uc *templateUsecase) PublishTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("templateUsecase.PublishTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)

	template, err := uc.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.Status == models.TemplateStatusPublished {
		return template, nil
	}

	template.Status = models.TemplateStatusPublished
	if err := uc.TemplateRepository.UpdateTemplate(ctx, template); err != nil {
		uc.Log.Error("templateUsecase.PublishTemplate error updating template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTemplateIDKey, templateID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("templateUsecase.PublishTemplate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)
	return template, nil
}

// ensureMutable rejects mutation once any response references the template.
// Submitted responses must stay interpretable against the template they were
// answered under.
func (uc *templateUsecase) ensureMutable(ctx context.Context, templateID string) error {
	count, err := uc.ResponseCounter.CountByTemplateID(ctx, templateID)
	if err != nil {
		return err
	}
	if count > 0 {
		return exceptions.ErrTemplateImmutable(fmt.Errorf("template %s has %d responses", templateID, count))
	}
	return nil
}
