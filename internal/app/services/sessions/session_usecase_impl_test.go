package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"auditflow-service/internal/app/config"
	"auditflow-service/internal/app/models"
	"auditflow-service/internal/pkg/dto/requests"
	dtoresponses "auditflow-service/internal/pkg/dto/responses"
	"auditflow-service/internal/pkg/exceptions"
	"auditflow-service/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var testMetrics = metrics.NewMetrics()

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if session := args.Get(0); session != nil {
		return session.(*models.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockTemplateFinder struct {
	mock.Mock
}

func (m *MockTemplateFinder) FindByID(ctx context.Context, templateID string) (*models.Template, error) {
	args := m.Called(ctx, templateID)
	if template := args.Get(0); template != nil {
		return template.(*models.Template), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockResponseUsecase struct {
	mock.Mock
}

func (m *MockResponseUsecase) SubmitResponse(ctx context.Context, request *requests.SubmitResponseRequest) (*dtoresponses.SubmissionResultResponse, error) {
	args := m.Called(ctx, request)
	if result := args.Get(0); result != nil {
		return result.(*dtoresponses.SubmissionResultResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockResponseUsecase) FindResponsesByTemplateID(ctx context.Context, templateID string, page, pageSize int) ([]models.Response, int, error) {
	args := m.Called(ctx, templateID, page, pageSize)
	if items := args.Get(0); items != nil {
		return items.([]models.Response), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

const sessionTemplateID = "64f0c0ffee0000000000b002"

func sessionTemplate() *models.Template {
	return &models.Template{
		ID:       sessionTemplateID,
		Name:     "Cold Chain Audit",
		Status:   models.TemplateStatusPublished,
		Sections: []models.Section{{Title: "Storage"}},
		Questions: []models.Question{
			{
				Key:       "q1",
				Section:   "Storage",
				Type:      models.QuestionTypeSingle,
				Text:      "Is the freezer operational?",
				Options:   []models.Option{{Value: "Yes"}, {Value: "No"}},
				Mandatory: true,
			},
			{
				Key:     "q2",
				Section: "Storage",
				Type:    models.QuestionTypeNumeric,
				Text:    "Freezer temperature?",
			},
		},
		LogicRules: []models.LogicRule{
			{
				Question:   "q1",
				Conditions: []models.Condition{{Question: "q1", Operator: models.OperatorEqual, Value: "Yes"}},
				Action:     models.Action{Type: models.ActionShow, Target: "q2"},
			},
		},
	}
}

func newSessionFixture() (*sessionUsecase, *MockSessionRepository, *MockTemplateFinder, *MockResponseUsecase) {
	mockRepository := new(MockSessionRepository)
	mockFinder := new(MockTemplateFinder)
	mockResponseUsecase := new(MockResponseUsecase)

	internalConfig := &config.InternalConfig{
		Session: config.AppSession{ExpiredTimeInHours: 24},
	}

	usecase := &sessionUsecase{
		SessionRepository: mockRepository,
		TemplateFinder:    mockFinder,
		ResponseUsecase:   mockResponseUsecase,
		Metrics:           testMetrics,
		InternalConfig:    internalConfig,
		Log:               zap.NewNop(),
	}
	return usecase, mockRepository, mockFinder, mockResponseUsecase
}

func TestCreateSession_Succeeds(t *testing.T) {
	usecase, mockRepository, mockFinder, _ := newSessionFixture()

	mockFinder.On("FindByID", mock.Anything, sessionTemplateID).Return(sessionTemplate(), nil)

	var saved *models.Session
	mockRepository.On("SaveSession", mock.Anything, mock.AnythingOfType("*models.Session"), 24*time.Hour).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Session)
		}).
		Return(nil)

	state, err := usecase.CreateSession(context.Background(), &requests.CreateSessionRequest{
		TemplateID:   sessionTemplateID,
		RespondentID: "auditor-3",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, sessionTemplateID, state.TemplateID)
	assert.False(t, state.Visibility["q2"], "conditional follow-up starts hidden")
	assert.Equal(t, "auditor-3", saved.RespondentID)
	mockRepository.AssertExpectations(t)
}

func TestCreateSession_DraftTemplateRejected(t *testing.T) {
	usecase, mockRepository, mockFinder, _ := newSessionFixture()

	draft := sessionTemplate()
	draft.Status = models.TemplateStatusDraft
	mockFinder.On("FindByID", mock.Anything, sessionTemplateID).Return(draft, nil)

	state, err := usecase.CreateSession(context.Background(), &requests.CreateSessionRequest{
		TemplateID: sessionTemplateID,
	})

	assert.Nil(t, state)
	var customErr *exceptions.CustomError
	if assert.ErrorAs(t, err, &customErr) {
		assert.Equal(t, 400, customErr.StatusCode)
	}
	mockRepository.AssertNotCalled(t, "SaveSession")
}

func TestFindSessionByID_NotFound(t *testing.T) {
	usecase, mockRepository, _, _ := newSessionFixture()

	mockRepository.On("FindByID", mock.Anything, "sess-missing").Return(nil, nil)

	state, err := usecase.FindSessionByID(context.Background(), "sess-missing")

	assert.Nil(t, state)
	var customErr *exceptions.CustomError
	if assert.ErrorAs(t, err, &customErr) {
		assert.Equal(t, 404, customErr.StatusCode)
	}
}

func TestSetAnswer_RevealsConditionalQuestion(t *testing.T) {
	usecase, mockRepository, mockFinder, _ := newSessionFixture()

	session := &models.Session{
		ID:         "sess-1",
		TemplateID: sessionTemplateID,
		Answers:    map[string]interface{}{},
		Visibility: map[string]bool{"q2": false},
	}
	mockRepository.On("FindByID", mock.Anything, "sess-1").Return(session, nil)
	mockFinder.On("FindByID", mock.Anything, sessionTemplateID).Return(sessionTemplate(), nil)
	mockRepository.On("SaveSession", mock.Anything, mock.AnythingOfType("*models.Session"), 24*time.Hour).Return(nil)

	state, err := usecase.SetAnswer(context.Background(), "sess-1", &requests.SetSessionAnswerRequest{
		QuestionID: "q1",
		Value:      "Yes",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Yes", state.Answers["q1"])
	assert.True(t, state.Visibility["q2"])
	mockRepository.AssertExpectations(t)
}

func TestSetAnswer_CascadePurgesHiddenAnswer(t *testing.T) {
	usecase, mockRepository, mockFinder, _ := newSessionFixture()

	session := &models.Session{
		ID:         "sess-2",
		TemplateID: sessionTemplateID,
		Answers:    map[string]interface{}{"q1": "Yes", "q2": float64(-18)},
		Visibility: map[string]bool{"q2": true},
	}
	mockRepository.On("FindByID", mock.Anything, "sess-2").Return(session, nil)
	mockFinder.On("FindByID", mock.Anything, sessionTemplateID).Return(sessionTemplate(), nil)
	mockRepository.On("SaveSession", mock.Anything, mock.AnythingOfType("*models.Session"), 24*time.Hour).Return(nil)

	state, err := usecase.SetAnswer(context.Background(), "sess-2", &requests.SetSessionAnswerRequest{
		QuestionID: "q1",
		Value:      "No",
	})

	assert.NoError(t, err)
	assert.False(t, state.Visibility["q2"])
	_, held := state.Answers["q2"]
	assert.False(t, held, "answer held by a hidden question must be dropped")
}

func TestSetAnswer_UnknownQuestionRejected(t *testing.T) {
	usecase, mockRepository, mockFinder, _ := newSessionFixture()

	session := &models.Session{
		ID:         "sess-3",
		TemplateID: sessionTemplateID,
		Answers:    map[string]interface{}{},
	}
	mockRepository.On("FindByID", mock.Anything, "sess-3").Return(session, nil)
	mockFinder.On("FindByID", mock.Anything, sessionTemplateID).Return(sessionTemplate(), nil)

	state, err := usecase.SetAnswer(context.Background(), "sess-3", &requests.SetSessionAnswerRequest{
		QuestionID: "q-unknown",
		Value:      "whatever",
	})

	assert.Nil(t, state)
	var customErr *exceptions.CustomError
	if assert.ErrorAs(t, err, &customErr) {
		assert.Equal(t, 400, customErr.StatusCode)
	}
	mockRepository.AssertNotCalled(t, "SaveSession")
}

func TestResetSession_ClearsAnswers(t *testing.T) {
	usecase, mockRepository, mockFinder, _ := newSessionFixture()

	session := &models.Session{
		ID:         "sess-4",
		TemplateID: sessionTemplateID,
		Answers:    map[string]interface{}{"q1": "Yes", "q2": float64(4)},
		Visibility: map[string]bool{"q2": true},
	}
	mockRepository.On("FindByID", mock.Anything, "sess-4").Return(session, nil)
	mockFinder.On("FindByID", mock.Anything, sessionTemplateID).Return(sessionTemplate(), nil)
	mockRepository.On("SaveSession", mock.Anything, mock.AnythingOfType("*models.Session"), 24*time.Hour).Return(nil)

	state, err := usecase.ResetSession(context.Background(), "sess-4")

	assert.NoError(t, err)
	assert.Nil(t, state.Answers["q1"])
	_, held := state.Answers["q2"]
	assert.False(t, held)
	assert.False(t, state.Visibility["q2"])
}

func TestSubmitSession_DelegatesAndDeletes(t *testing.T) {
	usecase, mockRepository, mockFinder, mockResponseUsecase := newSessionFixture()

	session := &models.Session{
		ID:           "sess-5",
		TemplateID:   sessionTemplateID,
		RespondentID: "auditor-3",
		Answers:      map[string]interface{}{"q2": float64(-18), "q1": "Yes"},
		Visibility:   map[string]bool{"q2": true},
	}
	mockRepository.On("FindByID", mock.Anything, "sess-5").Return(session, nil)
	mockFinder.On("FindByID", mock.Anything, sessionTemplateID).Return(sessionTemplate(), nil)
	mockRepository.On("DeleteByID", mock.Anything, "sess-5").Return(nil)

	var submission *requests.SubmitResponseRequest
	mockResponseUsecase.On("SubmitResponse", mock.Anything, mock.AnythingOfType("*requests.SubmitResponseRequest")).
		Run(func(args mock.Arguments) {
			submission = args.Get(1).(*requests.SubmitResponseRequest)
		}).
		Return(&dtoresponses.SubmissionResultResponse{ResponseID: "resp-9", TemplateID: sessionTemplateID}, nil)

	result, err := usecase.SubmitSession(context.Background(), "sess-5", &requests.SubmitSessionRequest{})

	assert.NoError(t, err)
	assert.Equal(t, "resp-9", result.ResponseID)
	assert.Equal(t, "auditor-3", submission.UserID, "user id falls back to the session respondent")
	if assert.Len(t, submission.Answers, 2) {
		assert.Equal(t, "q1", submission.Answers[0].QuestionID, "answers follow template question order")
		assert.Equal(t, "q2", submission.Answers[1].QuestionID)
	}
	mockRepository.AssertCalled(t, "DeleteByID", mock.Anything, "sess-5")
}

func TestSubmitSession_SubmissionErrorKeepsSession(t *testing.T) {
	usecase, mockRepository, mockFinder, mockResponseUsecase := newSessionFixture()

	session := &models.Session{
		ID:         "sess-6",
		TemplateID: sessionTemplateID,
		Answers:    map[string]interface{}{},
	}
	mockRepository.On("FindByID", mock.Anything, "sess-6").Return(session, nil)
	mockFinder.On("FindByID", mock.Anything, sessionTemplateID).Return(sessionTemplate(), nil)
	mockResponseUsecase.On("SubmitResponse", mock.Anything, mock.Anything).Return(nil, exceptions.ErrMissingMandatoryAnswers([]string{"Is the freezer operational?"}))

	result, err := usecase.SubmitSession(context.Background(), "sess-6", &requests.SubmitSessionRequest{})

	assert.Nil(t, result)
	assert.Error(t, err)
	mockRepository.AssertNotCalled(t, "DeleteByID")
}

func TestSubmitSession_DeleteFailureDoesNotFailSubmission(t *testing.T) {
	usecase, mockRepository, mockFinder, mockResponseUsecase := newSessionFixture()

	session := &models.Session{
		ID:         "sess-7",
		TemplateID: sessionTemplateID,
		Answers:    map[string]interface{}{"q1": "Yes"},
	}
	mockRepository.On("FindByID", mock.Anything, "sess-7").Return(session, nil)
	mockFinder.On("FindByID", mock.Anything, sessionTemplateID).Return(sessionTemplate(), nil)
	mockResponseUsecase.On("SubmitResponse", mock.Anything, mock.Anything).
		Return(&dtoresponses.SubmissionResultResponse{ResponseID: "resp-10"}, nil)
	mockRepository.On("DeleteByID", mock.Anything, "sess-7").Return(errors.New("redis down"))

	result, err := usecase.SubmitSession(context.Background(), "sess-7", &requests.SubmitSessionRequest{})

	assert.NoError(t, err)
	assert.Equal(t, "resp-10", result.ResponseID)
}
