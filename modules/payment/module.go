package payment

import (
	"careconnect-api/core/config"
	"careconnect-api/core/database"
	"careconnect-api/core/middleware"
	authservice "careconnect-api/modules/auth/service"
	"careconnect-api/modules/payment/controller"
	"careconnect-api/modules/payment/repository"
	"careconnect-api/modules/payment/router"
	"careconnect-api/modules/payment/service"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v78"
)

// Init initializes the payment module and registers routes
func Init(e *echo.Echo, db database.IDatabase, authSvc authservice.AuthServiceInterface, mw *middleware.Middleware) {
	if cfg, ok := config.GetSafe(); ok {
		stripe.Key = cfg.Stripe.SecretKey
	}

	repo := repository.NewPaymentRepository(db)
	svc := service.NewPaymentService(repo, authSvc)
	ctrl := controller.NewPaymentController(svc)

	router.NewPaymentRouter(ctrl).Setup(e, mw)
}
