package routers

import (
	"auditflow-service/internal/app/services/templates"

	"github.com/go-chi/chi/v5"
)

func attachTemplateRoutes(router chi.Router, templateController *templates.TemplateController) {
	router.Post("/", templateController.CreateTemplate)
	router.Get("/", templateController.FindAllTemplates)
	router.Get("/{templateID}", templateController.FindTemplateByID)
	router.Put("/{templateID}", templateController.UpdateTemplate)
	router.Delete("/{templateID}", templateController.DeleteTemplateByID)
	router.Post("/{templateID}/publish", templateController.PublishTemplate)
}
