package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/controller"
	service "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/service"
)

// PaymentRoutes binds the key-gated payment endpoints.
func PaymentRoutes(r fiber.Router, db *gorm.DB, engine *service.PaymentEngine) {
	ctrl := controller.NewPaymentController(db, engine)

	r.Get("/payments", ctrl.GetPayments)
	r.Get("/payments/via/application", ctrl.GetPaymentsViaApplication)
	r.Get("/payments/via/type", ctrl.GetPaymentsViaType)
	r.Get("/payments/via/gateway", ctrl.GetPaymentsViaGateway)
	r.Get("/payments/via/payment_status", ctrl.GetPaymentsViaPaymentStatus)
	r.Get("/payments/via/reference", ctrl.GetPaymentsViaReference)
	r.Get("/search/payments", ctrl.SearchPayments)
	r.Get("/payment", ctrl.GetPayment)

	r.Post("/add/payment", ctrl.AddPayment)
	r.Put("/complete/payment", ctrl.CompletePayment)
	r.Put("/cancel/payment", ctrl.CancelPayment)
	r.Put("/cancel/payment/via/reference", ctrl.CancelPaymentViaReference)
	r.Delete("/payment", ctrl.DeletePayment)
}
