package routers

import (
	"railpay-service/internal/app/delivery/http/controllers"
	"railpay-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMerchantRoutes(router chi.Router, middlewares *middlewares.Middlewares, merchantController *controllers.MerchantController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", merchantController.CreateMerchant)
	router.Post("/{merchantID}/documents", merchantController.UploadDocument)
	router.Get("/{merchantID}/risk", merchantController.GetRiskProfile)
}

func attachAuditRoutes(router chi.Router, middlewares *middlewares.Middlewares, merchantController *controllers.MerchantController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", merchantController.CreateAuditLog)
}
