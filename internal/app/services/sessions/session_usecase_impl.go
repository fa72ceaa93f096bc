package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"auditflow-service/internal/app/config"
	"auditflow-service/internal/app/models"
	"auditflow-service/internal/app/services/engine"
	"auditflow-service/internal/app/services/responses"
	"auditflow-service/internal/pkg/constvars"
	"auditflow-service/internal/pkg/dto/requests"
	dtoresponses "auditflow-service/internal/pkg/dto/responses"
	"auditflow-service/internal/pkg/exceptions"
	"auditflow-service/internal/pkg/metrics"
	"auditflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	SessionRepository SessionRepository
	TemplateFinder    TemplateFinder
	ResponseUsecase   responses.ResponseUsecase
	Metrics           *metrics.Metrics
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	sessionUsecaseInstance SessionUsecase
	onceSessionUsecase     sync.Once
)

func NewSessionUsecase(
	sessionRepository SessionRepository,
	templateFinder TemplateFinder,
	responseUsecase responses.ResponseUsecase,
	appMetrics *metrics.Metrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) SessionUsecase {
	onceSessionUsecase.Do(func() {
		instance := &sessionUsecase{
			SessionRepository: sessionRepository,
			TemplateFinder:    templateFinder,
			ResponseUsecase:   responseUsecase,
			Metrics:           appMetrics,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		sessionUsecaseInstance = instance
	})
	return sessionUsecaseInstance
}

func (uc *sessionUsecase) CreateSession(ctx context.Context, request *requests.CreateSessionRequest) (*dtoresponses.SessionStateResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionUsecase.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, request.TemplateID),
	)

	template, err := uc.loadPublishedTemplate(ctx, request.TemplateID)
	if err != nil {
		return nil, err
	}

	store := engine.NewAnswerStore(template)
	now := time.Now().UTC()
	session := &models.Session{
		ID:           utils.GenerateSessionID(),
		TemplateID:   template.ID,
		RespondentID: request.RespondentID,
		Answers:      store.Snapshot(),
		Visibility:   store.Visibility(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.saveSession(ctx, session); err != nil {
		return nil, err
	}

	uc.Metrics.RecordSessionOperation("create")
	uc.Log.Info("sessionUsecase.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return sessionState(session), nil
}

func (uc *sessionUsecase) FindSessionByID(ctx context.Context, sessionID string) (*dtoresponses.SessionStateResponse, error) {
	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sessionState(session), nil
}

func (uc *sessionUsecase) SetAnswer(ctx context.Context, sessionID string, request *requests.SetSessionAnswerRequest) (*dtoresponses.SessionStateResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionUsecase.SetAnswer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingQuestionKey, request.QuestionID),
	)

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	template, err := uc.loadTemplate(ctx, session.TemplateID)
	if err != nil {
		return nil, err
	}
	if template.QuestionByKey(request.QuestionID) == nil {
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("question %s does not exist in this template", request.QuestionID))
	}

	store := engine.RestoreAnswerStore(template, engine.Snapshot(session.Answers))
	snapshot, visibility := store.SetAnswer(request.QuestionID, request.Value)

	session.Answers = snapshot
	session.Visibility = visibility
	session.UpdatedAt = time.Now().UTC()

	if err := uc.saveSession(ctx, session); err != nil {
		return nil, err
	}

	uc.Metrics.RecordSessionOperation("set_answer")
	return sessionState(session), nil
}

func (uc *sessionUsecase) ResetSession(ctx context.Context, sessionID string) (*dtoresponses.SessionStateResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionUsecase.ResetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	template, err := uc.loadTemplate(ctx, session.TemplateID)
	if err != nil {
		return nil, err
	}

	store := engine.NewAnswerStore(template)
	session.Answers = store.Snapshot()
	session.Visibility = store.Visibility()
	session.UpdatedAt = time.Now().UTC()

	if err := uc.saveSession(ctx, session); err != nil {
		return nil, err
	}

	uc.Metrics.RecordSessionOperation("reset")
	return sessionState(session), nil
}

func (uc *sessionUsecase) SubmitSession(ctx context.Context, sessionID string, request *requests.SubmitSessionRequest) (*dtoresponses.SubmissionResultResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionUsecase.SubmitSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	template, err := uc.loadTemplate(ctx, session.TemplateID)
	if err != nil {
		return nil, err
	}

	userID := request.UserID
	if userID == "" {
		userID = session.RespondentID
	}

	submission := &requests.SubmitResponseRequest{
		TemplateID: session.TemplateID,
		Answers:    answerPayloads(template, session.Answers),
		UserID:     userID,
		Location:   request.Location,
	}

	result, err := uc.ResponseUsecase.SubmitResponse(ctx, submission)
	if err != nil {
		return nil, err
	}

	if err := uc.SessionRepository.DeleteByID(ctx, sessionID); err != nil {
		uc.Log.Error("sessionUsecase.SubmitSession error deleting submitted session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
	}

	uc.Metrics.RecordSessionOperation("submit")
	uc.Log.Info("sessionUsecase.SubmitSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingResponseIDKey, result.ResponseID),
	)
	return result, nil
}

func (uc *sessionUsecase) loadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrSessionNotFound(fmt.Errorf("session %s not found", sessionID))
	}
	return session, nil
}

func (uc *sessionUsecase) loadTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	template, err := uc.TemplateFinder.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrTemplateNotFound(fmt.Errorf("template %s not found", templateID))
	}
	return template, nil
}

func (uc *sessionUsecase) loadPublishedTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	template, err := uc.loadTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.Status != models.TemplateStatusPublished {
		return nil, exceptions.ErrTemplateNotPublished(fmt.Errorf("template %s has status %s", templateID, template.Status))
	}
	return template, nil
}

func (uc *sessionUsecase) saveSession(ctx context.Context, session *models.Session) error {
	ttl := time.Duration(uc.InternalConfig.Session.ExpiredTimeInHours) * time.Hour
	return uc.SessionRepository.SaveSession(ctx, session, ttl)
}

func sessionState(session *models.Session) *dtoresponses.SessionStateResponse {
	return &dtoresponses.SessionStateResponse{
		SessionID:  session.ID,
		TemplateID: session.TemplateID,
		Answers:    session.Answers,
		Visibility: session.Visibility,
		UpdatedAt:  session.UpdatedAt,
	}
}

// answerPayloads flattens the session snapshot into the submission wire
// shape, in template question order.
func answerPayloads(template *models.Template, answers map[string]interface{}) []requests.AnswerPayload {
	payloads := make([]requests.AnswerPayload, 0, len(answers))
	for _, q := range template.Questions {
		value, held := answers[q.Key]
		if !held {
			continue
		}
		payloads = append(payloads, requests.AnswerPayload{
			QuestionID:   q.Key,
			QuestionText: q.Text,
			Section:      q.Section,
			Type:         q.Type,
			Value:        value,
		})
	}
	return payloads
}
