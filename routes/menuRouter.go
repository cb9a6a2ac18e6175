package routes

import (
	"github.com/gin-gonic/gin"

	"foodtruck/controllers"
	"foodtruck/middleware"
)

func MenuRoutes(incomingRoutes *gin.Engine, app *controllers.App) {
	incomingRoutes.GET("/menu", app.GetMenuItems())
	incomingRoutes.GET("/menu/:menu_id", app.GetMenuItem())

	staff := incomingRoutes.Group("/", middleware.Authentication(), middleware.StaffOnly())
	staff.POST("/menu", app.CreateMenuItem())
	staff.POST("/menu/import", app.ImportMenu())
	staff.PATCH("/menu/:menu_id", app.UpdateMenuItem())
	staff.DELETE("/menu/:menu_id", app.DeleteMenuItem())
}
