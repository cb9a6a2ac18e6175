package routes

import (
	"github.com/gin-gonic/gin"

	"foodtruck/controllers"
	"foodtruck/middleware"
)

func UserRoutes(incomingRoutes *gin.Engine, app *controllers.App) {
	incomingRoutes.POST("/users/signup", app.SignUp())
	incomingRoutes.POST("/users/login", app.Login())

	auth := incomingRoutes.Group("/", middleware.Authentication())
	auth.GET("/users/me", app.Me())
	auth.PATCH("/users/me", app.UpdateMe())
	auth.GET("/users", middleware.StaffOnly(), app.GetUsers())
	auth.POST("/users", middleware.StaffOnly(), app.AddStaff())
}
