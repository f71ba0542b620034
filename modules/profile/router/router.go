package router

import (
	"careconnect-api/core/constants"
	"careconnect-api/core/middleware"
	"careconnect-api/modules/profile/controller"

	"github.com/labstack/echo/v4"
)

type ProfileRouter struct {
	ProfileController *controller.ProfileController
}

func NewProfileRouter(profileController *controller.ProfileController) *ProfileRouter {
	return &ProfileRouter{
		ProfileController: profileController,
	}
}

func (r *ProfileRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	profileRoutes := privateRoutes.Group("/profile", mw.AuthMiddleware(), mw.RequireRole(constants.RolePsw))
	profileRoutes.GET("", r.ProfileController.GetProfile)
	profileRoutes.PUT("", r.ProfileController.UpdateProfile)
}
