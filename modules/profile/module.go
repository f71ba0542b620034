package profile

import (
	"careconnect-api/core/database"
	"careconnect-api/core/middleware"
	"careconnect-api/modules/profile/controller"
	"careconnect-api/modules/profile/repository"
	"careconnect-api/modules/profile/router"
	"careconnect-api/modules/profile/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the profile module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewProfileRepository(db)
	svc := service.NewProfileService(repo)
	ctrl := controller.NewProfileController(svc)

	router.NewProfileRouter(ctrl).Setup(e, mw)
}

// GetService returns a ProfileService instance for use by other modules
func GetService(db database.IDatabase) service.ProfileServiceInterface {
	return service.NewProfileService(repository.NewProfileRepository(db))
}
