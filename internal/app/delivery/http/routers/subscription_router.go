package routers

import (
	"railpay-service/internal/app/delivery/http/controllers"
	"railpay-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSubscriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, subscriptionController *controllers.SubscriptionController) {
	router.Post("/demo-activate", subscriptionController.DemoActivate)
}
