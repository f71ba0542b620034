package address

import (
	"careconnect-api/core/database"
	"careconnect-api/core/middleware"
	"careconnect-api/modules/address/controller"
	"careconnect-api/modules/address/repository"
	"careconnect-api/modules/address/router"
	"careconnect-api/modules/address/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the address module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewAddressRepository(db)
	svc := service.NewAddressService(repo)
	ctrl := controller.NewAddressController(svc)

	router.NewAddressRouter(ctrl).Setup(e, mw)
}
