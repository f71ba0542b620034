package auth

import (
	"careconnect-api/core/cache"
	"careconnect-api/core/database"
	"careconnect-api/core/middleware"
	"careconnect-api/core/notify"
	"careconnect-api/modules/auth/controller"
	"careconnect-api/modules/auth/repository"
	"careconnect-api/modules/auth/router"
	"careconnect-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.IDatabase, cache cache.Cache, sender notify.Sender, mw *middleware.Middleware) {
	repo := repository.NewUserRepository(db)
	svc := service.NewAuthService(repo, cache, sender)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Setup(e, mw)
}

// GetService returns an AuthService instance for use by other modules
func GetService(db database.IDatabase, cache cache.Cache, sender notify.Sender) service.AuthServiceInterface {
	return service.NewAuthService(repository.NewUserRepository(db), cache, sender)
}
