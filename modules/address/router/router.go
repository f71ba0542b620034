package router

import (
	"careconnect-api/core/middleware"
	"careconnect-api/modules/address/controller"

	"github.com/labstack/echo/v4"
)

type AddressRouter struct {
	AddressController *controller.AddressController
}

func NewAddressRouter(addressController *controller.AddressController) *AddressRouter {
	return &AddressRouter{
		AddressController: addressController,
	}
}

func (r *AddressRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	addressRoutes := privateRoutes.Group("/addresses", mw.AuthMiddleware())
	addressRoutes.GET("", r.AddressController.ListAddresses)
	addressRoutes.POST("", r.AddressController.CreateAddress)
	addressRoutes.PUT("/:id", r.AddressController.UpdateAddress)
	addressRoutes.PUT("/:id/default", r.AddressController.SetDefaultAddress)
	addressRoutes.DELETE("/:id", r.AddressController.DeleteAddress)
}
