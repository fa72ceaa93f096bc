package sessions

import (
	"context"
	"time"

	"auditflow-service/internal/app/models"
	"auditflow-service/internal/pkg/dto/requests"
	dtoresponses "auditflow-service/internal/pkg/dto/responses"
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, request *requests.CreateSessionRequest) (*dtoresponses.SessionStateResponse, error)
	FindSessionByID(ctx context.Context, sessionID string) (*dtoresponses.SessionStateResponse, error)
	SetAnswer(ctx context.Context, sessionID string, request *requests.SetSessionAnswerRequest) (*dtoresponses.SessionStateResponse, error)
	ResetSession(ctx context.Context, sessionID string) (*dtoresponses.SessionStateResponse, error)
	SubmitSession(ctx context.Context, sessionID string, request *requests.SubmitSessionRequest) (*dtoresponses.SubmissionResultResponse, error)
}

type SessionRepository interface {
	SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	FindByID(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

// TemplateFinder loads the template a session runs against. Satisfied by the
// templates repository.
type TemplateFinder interface {
	FindByID(ctx context.Context, templateID string) (*models.Template, error)
}
