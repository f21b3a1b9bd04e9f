package routers

import (
	"railpay-service/internal/app/delivery/http/controllers"
	"railpay-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachWebhookRoutes(router chi.Router, middlewares *middlewares.Middlewares, webhookController *controllers.WebhookController) {
	router.Post("/primer", webhookController.HandlePrimerWebhook)
	router.Post("/coinbase", webhookController.HandleCoinbaseWebhook)
}
