package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"auditflow-service/internal/app/models"
	"auditflow-service/internal/app/services/templates"
	"auditflow-service/internal/pkg/dto/requests"
	"auditflow-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTemplateUsecase struct {
	mock.Mock
}

func (m *MockTemplateUsecase) CreateTemplate(ctx context.Context, request *requests.SaveTemplateRequest) (*models.Template, error) {
	args := m.Called(ctx, request)
	if template := args.Get(0); template != nil {
		return template.(*models.Template), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTemplateUsecase) FindAllTemplates(ctx context.Context, page, pageSize int) ([]models.Template, int, error) {
	args := m.Called(ctx, page, pageSize)
	if items := args.Get(0); items != nil {
		return items.([]models.Template), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *MockTemplateUsecase) FindTemplateByID(ctx context.Context, templateID string) (*models.Template, error) {
	args := m.Called(ctx, templateID)
	if template := args.Get(0); template != nil {
		return template.(*models.Template), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTemplateUsecase) UpdateTemplate(ctx context.Context, templateID string, request *requests.SaveTemplateRequest) (*models.Template, error) {
	args := m.Called(ctx, templateID, request)
	if template := args.Get(0); template != nil {
		return template.(*models.Template), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTemplateUsecase) DeleteTemplateByID(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

func (m *MockTemplateUsecase) PublishTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	args := m.Called(ctx, templateID)
	if template := args.Get(0); template != nil {
		return template.(*models.Template), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTemplateTestRouter(mockUsecase *MockTemplateUsecase) *chi.Mux {
	logger := zap.NewNop()
	templateController := templates.NewTemplateController(logger, mockUsecase)

	router := chi.NewRouter()
	attachTemplateRoutes(router, templateController)
	return router
}

func templateRequestBody() []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"name": "Warehouse Safety Audit",
		"questions": []map[string]interface{}{
			{"section": "General", "type": "single", "text": "Extinguishers present?", "options": []map[string]string{{"value": "Yes"}, {"value": "No"}}},
		},
	})
	return body
}

func TestTemplateRouter_CreateTemplate(t *testing.T) {
	mockUsecase := new(MockTemplateUsecase)
	router := newTemplateTestRouter(mockUsecase)

	t.Run("Valid Payload", func(t *testing.T) {
		mockUsecase.On("CreateTemplate", mock.Anything, mock.AnythingOfType("*requests.SaveTemplateRequest")).
			Return(&models.Template{ID: "64f0c0ffee0000000000a001", Name: "Warehouse Safety Audit", Status: models.TemplateStatusDraft}, nil)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(templateRequestBody()))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created for a valid template")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Invalid JSON Body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for invalid JSON")
	})

	t.Run("Missing Name Field", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"questions": []map[string]interface{}{{"type": "text", "text": "Notes"}},
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for missing name")
	})

	t.Run("Empty Questions Rejected", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"name":      "Empty Audit",
			"questions": []map[string]interface{}{},
		})

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for an empty question list")
	})
}

func TestTemplateRouter_FindTemplateByID(t *testing.T) {
	mockUsecase := new(MockTemplateUsecase)
	router := newTemplateTestRouter(mockUsecase)

	t.Run("Existing Template", func(t *testing.T) {
		mockUsecase.On("FindTemplateByID", mock.Anything, "64f0c0ffee0000000000a001").
			Return(&models.Template{ID: "64f0c0ffee0000000000a001", Name: "Warehouse Safety Audit"}, nil)

		req := httptest.NewRequest("GET", "/64f0c0ffee0000000000a001", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Warehouse Safety Audit")
	})

	t.Run("Unknown Template", func(t *testing.T) {
		mockUsecase.On("FindTemplateByID", mock.Anything, "64f0c0ffee0000000000dead").
			Return(nil, exceptions.ErrTemplateNotFound(fmt.Errorf("template not found")))

		req := httptest.NewRequest("GET", "/64f0c0ffee0000000000dead", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, "should return 404 Not Found for an unknown template")
	})
}

func TestTemplateRouter_PublishTemplate(t *testing.T) {
	mockUsecase := new(MockTemplateUsecase)
	router := newTemplateTestRouter(mockUsecase)

	mockUsecase.On("PublishTemplate", mock.Anything, "64f0c0ffee0000000000a001").
		Return(&models.Template{ID: "64f0c0ffee0000000000a001", Status: models.TemplateStatusPublished}, nil)

	req := httptest.NewRequest("POST", "/64f0c0ffee0000000000a001/publish", nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), models.TemplateStatusPublished)
	mockUsecase.AssertExpectations(t)
}

func TestTemplateRouter_DeleteTemplate(t *testing.T) {
	mockUsecase := new(MockTemplateUsecase)
	router := newTemplateTestRouter(mockUsecase)

	t.Run("Mutable Template", func(t *testing.T) {
		mockUsecase.On("DeleteTemplateByID", mock.Anything, "64f0c0ffee0000000000a001").Return(nil)

		req := httptest.NewRequest("DELETE", "/64f0c0ffee0000000000a001", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Template With Responses", func(t *testing.T) {
		mockUsecase.On("DeleteTemplateByID", mock.Anything, "64f0c0ffee0000000000b002").
			Return(exceptions.ErrTemplateImmutable(fmt.Errorf("template has stored responses")))

		req := httptest.NewRequest("DELETE", "/64f0c0ffee0000000000b002", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code, "should return 409 Conflict once responses exist")
	})
}
