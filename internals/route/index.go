package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Emmynem/alphaprimeclub-api/internals/configs"
	applicationRoute "github.com/Emmynem/alphaprimeclub-api/internals/features/applications/route"
	paymentRoute "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/route"
	service "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/service"
	"github.com/Emmynem/alphaprimeclub-api/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, engine *service.PaymentEngine) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	// Public intake stays outside the API key gate. It has to be bound
	// before the gate so the gate's Use does not swallow it.
	log.Println("[INFO] Setting up PUBLIC application routes...")
	applicationRoute.PublicApplicationRoutes(app, db)

	log.Println("[INFO] Setting up GATED group (API key)...")
	gated := app.Group("", middlewares.VerifyKey(cfg.APIKeys))

	log.Println("[INFO] Mounting Application routes...")
	applicationRoute.ApplicationRoutes(gated, db)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentRoutes(gated, db, engine)
}
