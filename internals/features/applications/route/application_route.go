package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/Emmynem/alphaprimeclub-api/internals/features/applications/controller"
	"github.com/Emmynem/alphaprimeclub-api/internals/middlewares"
)

// PublicApplicationRoutes binds the open application endpoint. It sits in
// front of the API key gate but behind its own tighter rate limit.
func PublicApplicationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewApplicationController(db)

	r.Post("/application", middlewares.ApplicationRateLimiter(), ctrl.AddApplication)
}

// ApplicationRoutes binds the key-gated application endpoints.
func ApplicationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewApplicationController(db)

	r.Get("/applications", ctrl.GetApplications)
	r.Get("/application", ctrl.GetApplication)
	r.Put("/application/status", ctrl.UpdateApplicationStatus)
	r.Delete("/application", ctrl.DeleteApplication)
}
