package routers

import (
	"auditflow-service/internal/app/services/responses"

	"github.com/go-chi/chi/v5"
)

func attachResponseRoutes(router chi.Router, responseController *responses.ResponseController) {
	router.Post("/", responseController.SubmitResponse)
	router.Get("/{templateID}", responseController.FindResponsesByTemplateID)
}
