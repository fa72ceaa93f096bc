package routers

import (
	"auditflow-service/internal/app/services/uploads"

	"github.com/go-chi/chi/v5"
)

func attachUploadRoutes(router chi.Router, uploadController *uploads.UploadController) {
	router.Post("/", uploadController.UploadAttachment)
}
