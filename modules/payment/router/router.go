package router

import (
	"careconnect-api/core/middleware"
	"careconnect-api/modules/payment/controller"

	"github.com/labstack/echo/v4"
)

type PaymentRouter struct {
	PaymentController *controller.PaymentController
}

func NewPaymentRouter(paymentController *controller.PaymentController) *PaymentRouter {
	return &PaymentRouter{
		PaymentController: paymentController,
	}
}

func (r *PaymentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	// Any authenticated user may manage saved cards.
	paymentRoutes := privateRoutes.Group("/payment", mw.AuthMiddleware())
	paymentRoutes.POST("/setup-intent", r.PaymentController.CreateSetupIntent)
	paymentRoutes.GET("/methods", r.PaymentController.ListPaymentMethods)
	paymentRoutes.DELETE("/methods/:id", r.PaymentController.DetachPaymentMethod)
}
