package router

import (
	"careconnect-api/core/constants"
	"careconnect-api/core/middleware"
	"careconnect-api/modules/category/controller"

	"github.com/labstack/echo/v4"
)

type CategoryRouter struct {
	CategoryController *controller.CategoryController
}

func NewCategoryRouter(categoryController *controller.CategoryController) *CategoryRouter {
	return &CategoryRouter{
		CategoryController: categoryController,
	}
}

func (r *CategoryRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.GET("/categories", r.CategoryController.List)

	adminRoutes := v1.Group("/private/admin/categories", mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))
	adminRoutes.GET("", r.CategoryController.ListAll)
	adminRoutes.POST("", r.CategoryController.Create)
	adminRoutes.PUT("/:id", r.CategoryController.Update)
	adminRoutes.DELETE("/:id", r.CategoryController.Delete)
}
