package router

import (
	"careconnect-api/core/constants"
	"careconnect-api/core/middleware"
	"careconnect-api/modules/verification/controller"

	"github.com/labstack/echo/v4"
)

type VerificationRouter struct {
	VerificationController *controller.VerificationController
}

func NewVerificationRouter(verificationController *controller.VerificationController) *VerificationRouter {
	return &VerificationRouter{
		VerificationController: verificationController,
	}
}

func (r *VerificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	pswRoutes := privateRoutes.Group("/verification", mw.AuthMiddleware(), mw.RequireRole(constants.RolePsw))
	pswRoutes.POST("/documents", r.VerificationController.SubmitDocument)
	pswRoutes.GET("/documents", r.VerificationController.ListMyDocuments)

	adminRoutes := privateRoutes.Group("/admin/verification", mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))
	adminRoutes.GET("/documents", r.VerificationController.ListPending)
	adminRoutes.PUT("/documents/:id", r.VerificationController.ReviewDocument)
}
