package routers

import (
	"railpay-service/internal/app/delivery/http/controllers"
	"railpay-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Post("/compliance", paymentController.ProcessCompliancePayment)
	router.Post("/primer/client-session", paymentController.CreateClientSession)
	router.Post("/primer/create-payment", paymentController.CreateCardPayment)
	router.Post("/crypto/charge", paymentController.CreateCryptoCharge)
}
