package category

import (
	"careconnect-api/core/database"
	"careconnect-api/core/middleware"
	"careconnect-api/modules/category/controller"
	"careconnect-api/modules/category/repository"
	"careconnect-api/modules/category/router"
	"careconnect-api/modules/category/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the category module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewCategoryRepository(db)
	svc := service.NewCategoryService(repo)
	ctrl := controller.NewCategoryController(svc)

	router.NewCategoryRouter(ctrl).Setup(e, mw)
}
