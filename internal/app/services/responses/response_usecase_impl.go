package responses

import (
	"context"
	"fmt"
	"sync"

	"auditflow-service/internal/app/config"
	"auditflow-service/internal/app/models"
	"auditflow-service/internal/app/services/engine"
	"auditflow-service/internal/app/services/shared/publisher"
	"auditflow-service/internal/app/services/shared/ratelimiter"
	"auditflow-service/internal/pkg/constvars"
	"auditflow-service/internal/pkg/dto/requests"
	dtoresponses "auditflow-service/internal/pkg/dto/responses"
	"auditflow-service/internal/pkg/exceptions"
	"auditflow-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

type responseUsecase struct {
	ResponseRepository ResponseRepository
	TemplateFinder     TemplateFinder
	EventPublisher     publisher.EventPublisher
	Limiter            *ratelimiter.ResourceLimiter
	Metrics            *metrics.Metrics
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	responseUsecaseInstance ResponseUsecase
	onceResponseUsecase     sync.Once
)

func NewResponseUsecase(
	responseRepository ResponseRepository,
	templateFinder TemplateFinder,
	eventPublisher publisher.EventPublisher,
	limiter *ratelimiter.ResourceLimiter,
	appMetrics *metrics.Metrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) ResponseUsecase {
	onceResponseUsecase.Do(func() {
		instance := &responseUsecase{
			ResponseRepository: responseRepository,
			TemplateFinder:     templateFinder,
			EventPublisher:     eventPublisher,
			Limiter:            limiter,
			Metrics:            appMetrics,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		responseUsecaseInstance = instance
	})
	return responseUsecaseInstance
}

func (uc *responseUsecase) SubmitResponse(ctx context.Context, request *requests.SubmitResponseRequest) (*dtoresponses.SubmissionResultResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("responseUsecase.SubmitResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, request.TemplateID),
	)

	if err := uc.applySubmissionLimiter(ctx, request); err != nil {
		return nil, err
	}

	template, err := uc.loadPublishedTemplate(ctx, request.TemplateID)
	if err != nil {
		return nil, err
	}

	// Settle the submitted answers: re-resolve visibility and drop answers
	// held by questions the final state hides, so a stale client cannot
	// submit an answered-but-hidden question.
	snapshot := make(engine.Snapshot, len(request.Answers))
	for _, answer := range request.Answers {
		if template.QuestionByKey(answer.QuestionID) == nil {
			uc.Log.Warn("responseUsecase.SubmitResponse discarding unknown question",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingQuestionKey, answer.QuestionID),
			)
			continue
		}
		snapshot[answer.QuestionID] = answer.Value
	}
	store := engine.RestoreAnswerStore(template, snapshot)
	final := store.Snapshot()

	if missing := engine.MissingMandatory(template, final); len(missing) > 0 {
		uc.Log.Info("responseUsecase.SubmitResponse rejected with missing mandatory answers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingMissingQuestionsKey, missing),
		)
		return nil, exceptions.ErrMissingMandatoryAnswers(missing)
	}

	scoreResult := engine.Score(template, final)

	response := &models.Response{
		TemplateID: template.ID,
		Answers:    buildOrderedAnswers(template, request.Answers, final),
		Score:      scoreResult.Score,
		Passed:     scoreResult.Passed,
		Meta: models.ResponseMeta{
			UserID: request.UserID,
		},
	}
	if request.Location != nil {
		response.Meta.Location = &models.GeoPoint{Lat: request.Location.Lat, Lng: request.Location.Lng}
	}

	responseID, err := uc.ResponseRepository.CreateResponse(ctx, response)
	if err != nil {
		uc.Log.Error("responseUsecase.SubmitResponse error inserting response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	response.ID = responseID

	uc.Metrics.RecordSubmission(template.ID, scoreResult.Passed, scoreResult.Score)
	uc.publishSubmissionEvent(ctx, template, response)

	uc.Log.Info("responseUsecase.SubmitResponse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
	)

	return &dtoresponses.SubmissionResultResponse{
		ResponseID:  responseID,
		TemplateID:  template.ID,
		Score:       scoreResult.Score,
		Passed:      scoreResult.Passed,
		SubmittedAt: response.Meta.CreatedAt,
	}, nil
}

func (uc *responseUsecase) FindResponsesByTemplateID(ctx context.Context, templateID string, page, pageSize int) ([]models.Response, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("responseUsecase.FindResponsesByTemplateID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)

	if _, err := uc.loadTemplate(ctx, templateID); err != nil {
		return nil, 0, err
	}

	items, total, err := uc.ResponseRepository.FindByTemplateID(ctx, templateID, page, pageSize)
	if err != nil {
		uc.Log.Error("responseUsecase.FindResponsesByTemplateID error fetching responses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTemplateIDKey, templateID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return items, total, nil
}

func (uc *responseUsecase) applySubmissionLimiter(ctx context.Context, request *requests.SubmitResponseRequest) error {
	resource := request.UserID
	if resource == "" {
		resource = "guest:" + request.TemplateID
	}

	out, err := uc.Limiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      resource,
		LimiterGroupName:  constvars.LimiterGroupSubmission,
		WindowDurationSec: uc.InternalConfig.App.SubmissionRateWindowInSecs,
		MaxQuota:          uc.InternalConfig.App.SubmissionRateLimit,
	})
	if err != nil {
		return err
	}
	if !out.Allowed {
		return exceptions.ErrSubmissionQuotaExceeded(fmt.Errorf("retry after %d seconds", out.RetryAfterSecs))
	}
	return nil
}

func (uc *responseUsecase) loadTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	template, err := uc.TemplateFinder.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrTemplateNotFound(fmt.Errorf("template %s not found", templateID))
	}
	return template, nil
}

func (uc *responseUsecase) loadPublishedTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	template, err := uc.loadTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.Status != models.TemplateStatusPublished {
		return nil, exceptions.ErrTemplateNotPublished(fmt.Errorf("template %s has status %s", templateID, template.Status))
	}
	return template, nil
}

// publishSubmissionEvent is best effort: the response is already persisted,
// so a broker hiccup degrades downstream reporting instead of failing the
// submission.
func (uc *responseUsecase) publishSubmissionEvent(ctx context.Context, template *models.Template, response *models.Response) {
	event := &publisher.SubmissionCompletedEvent{
		ResponseID:   response.ID,
		TemplateID:   template.ID,
		TemplateName: template.Name,
		Score:        response.Score,
		Passed:       response.Passed,
		SubmittedAt:  response.Meta.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if err := uc.EventPublisher.PublishSubmissionCompleted(ctx, event); err != nil {
		uc.Log.Error("responseUsecase.publishSubmissionEvent failed",
			zap.String(constvars.LoggingResponseIDKey, response.ID),
			zap.Error(err),
		)
	}
}

// buildOrderedAnswers keeps the respondent's answer order but sources the
// descriptive fields from the template and keeps only answers that survived
// the settle.
func buildOrderedAnswers(template *models.Template, submitted []requests.AnswerPayload, final engine.Snapshot) []models.Answer {
	answers := make([]models.Answer, 0, len(submitted))
	seen := make(map[string]bool, len(submitted))
	for _, payload := range submitted {
		if seen[payload.QuestionID] {
			continue
		}
		value, held := final[payload.QuestionID]
		if !held {
			continue
		}
		question := template.QuestionByKey(payload.QuestionID)
		answers = append(answers, models.Answer{
			QuestionKey:  question.Key,
			QuestionText: question.Text,
			Section:      question.Section,
			Type:         question.Type,
			Value:        value,
		})
		seen[payload.QuestionID] = true
	}
	return answers
}
