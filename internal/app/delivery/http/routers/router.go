package routers

import (
	"fmt"
	"halo-optom-service/internal/app/config"
	"halo-optom-service/internal/app/delivery/http/controllers"
	"halo-optom-service/internal/app/delivery/http/middlewares"
	"halo-optom-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	paymentController *controllers.PaymentController,
	withdrawRequestController *controllers.WithdrawRequestController,
) {
	allowedOrigins := internalConfig.App.CorsAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
			constvars.HeaderAPIKey,
		},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging)
	router.Use(mw.Metrics)
	router.Use(mw.ErrorHandler)
	router.Use(mw.APIKeyAuth)

	normalLimiter, apiKeyLimiter := mw.CreateRateLimiters()
	router.Use(mw.ConditionalRateLimit(normalLimiter, apiKeyLimiter))
	router.Use(mw.BodyLimit)

	router.Method("GET", "/metrics", middlewares.PrometheusHandler())

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/payments", func(r chi.Router) {
				attachPaymentRouter(r, mw, paymentController)
			})

			r.Route("/withdraw-requests", func(r chi.Router) {
				attachWithdrawRequestRouter(r, mw, withdrawRequestController)
			})
		})
	})
}
