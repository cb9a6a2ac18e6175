package routes

import (
	"github.com/gin-gonic/gin"

	"foodtruck/controllers"
	"foodtruck/middleware"
)

func OrderRoutes(incomingRoutes *gin.Engine, app *controllers.App) {
	// Websocket dials cannot set the token header, so the feed sits
	// outside the auth group and the handler validates the token from
	// the query string itself before upgrading.
	incomingRoutes.GET("/ws", app.HandleOrderFeed())

	auth := incomingRoutes.Group("/", middleware.Authentication())
	auth.GET("/cart", app.GetCart())
	auth.POST("/cart", app.AddToCart())
	auth.PATCH("/cart", app.UpdateCartItem())
	auth.DELETE("/cart/:item_name", app.RemoveFromCart())
	auth.POST("/orders", app.Checkout())

	auth.GET("/orders", middleware.StaffOnly(), app.GetOrders())
	auth.PATCH("/orders/:order_id/complete", middleware.StaffOnly(), app.CompleteOrder())
	auth.GET("/reports/orders.xlsx", middleware.StaffOnly(), app.OrdersReport())
}
