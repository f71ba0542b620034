package availability

import (
	"careconnect-api/core/database"
	"careconnect-api/core/middleware"
	"careconnect-api/modules/availability/controller"
	"careconnect-api/modules/availability/repository"
	"careconnect-api/modules/availability/router"
	"careconnect-api/modules/availability/service"
	profileservice "careconnect-api/modules/profile/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes
func Init(e *echo.Echo, db database.IDatabase, profileSvc profileservice.ProfileServiceInterface, mw *middleware.Middleware) {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(repo)
	ctrl := controller.NewAvailabilityController(svc, profileSvc)

	router.NewAvailabilityRouter(ctrl).Setup(e, mw)
}
