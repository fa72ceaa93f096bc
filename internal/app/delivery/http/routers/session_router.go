package routers

import (
	"auditflow-service/internal/app/services/sessions"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, sessionController *sessions.SessionController) {
	router.Post("/", sessionController.CreateSession)
	router.Get("/{sessionID}", sessionController.FindSessionByID)
	router.Put("/{sessionID}/answers", sessionController.SetAnswer)
	router.Post("/{sessionID}/reset", sessionController.ResetSession)
	router.Post("/{sessionID}/submit", sessionController.SubmitSession)
}
