package routers

import (
	"time"

	"auditflow-service/internal/app/config"
	"auditflow-service/internal/app/delivery/http/middlewares"
	"auditflow-service/internal/app/services/responses"
	"auditflow-service/internal/app/services/sessions"
	"auditflow-service/internal/app/services/templates"
	"auditflow-service/internal/app/services/uploads"
	"auditflow-service/internal/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appMetrics *metrics.Metrics,
	templateController *templates.TemplateController,
	responseController *responses.ResponseController,
	sessionController *sessions.SessionController,
	uploadController *uploads.UploadController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestMetrics)
	router.Use(middlewares.ErrorHandler)

	router.Handle("/metrics", appMetrics.Handler())

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/templates", func(r chi.Router) {
			attachTemplateRoutes(r, templateController)
		})

		r.Route("/responses", func(r chi.Router) {
			attachResponseRoutes(r, responseController)
		})

		r.Route("/sessions", func(r chi.Router) {
			attachSessionRoutes(r, sessionController)
		})

		r.Route("/uploads", func(r chi.Router) {
			attachUploadRoutes(r, uploadController)
		})
	})
}
