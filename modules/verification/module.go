package verification

import (
	"careconnect-api/core/database"
	"careconnect-api/core/middleware"
	profileservice "careconnect-api/modules/profile/service"
	"careconnect-api/modules/verification/controller"
	"careconnect-api/modules/verification/repository"
	"careconnect-api/modules/verification/router"
	"careconnect-api/modules/verification/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the verification module and registers routes
func Init(e *echo.Echo, db database.IDatabase, profileSvc profileservice.ProfileServiceInterface, mw *middleware.Middleware) service.VerificationServiceInterface {
	repo := repository.NewDocumentRepository(db)
	svc := service.NewVerificationService(repo, profileSvc)
	ctrl := controller.NewVerificationController(svc, profileSvc)

	router.NewVerificationRouter(ctrl).Setup(e, mw)
	return svc
}
