package routers

import (
	"fmt"
	"time"

	"railpay-service/internal/app/config"
	"railpay-service/internal/app/delivery/http/controllers"
	"railpay-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	paymentController *controllers.PaymentController,
	webhookController *controllers.WebhookController,
	merchantController *controllers.MerchantController,
	subscriptionController *controllers.SubscriptionController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Idempotency-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, middlewares, paymentController)
			})

			r.Route("/webhooks", func(r chi.Router) {
				attachWebhookRoutes(r, middlewares, webhookController)
			})

			r.Route("/merchants", func(r chi.Router) {
				attachMerchantRoutes(r, middlewares, merchantController)
			})

			r.Route("/subscriptions", func(r chi.Router) {
				attachSubscriptionRoutes(r, middlewares, subscriptionController)
			})

			r.Route("/audit", func(r chi.Router) {
				attachAuditRoutes(r, middlewares, merchantController)
			})
		})
	})
}
