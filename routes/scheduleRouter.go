package routes

import (
	"github.com/gin-gonic/gin"

	"foodtruck/controllers"
	"foodtruck/middleware"
)

func ScheduleRoutes(incomingRoutes *gin.Engine, app *controllers.App) {
	auth := incomingRoutes.Group("/", middleware.Authentication())
	auth.GET("/schedules/mine", app.GetMySchedules())

	staff := auth.Group("/", middleware.StaffOnly())
	staff.GET("/schedules", app.GetSchedules())
	staff.GET("/schedules/availability", app.GetAvailability())
	staff.POST("/schedules", app.BookSchedule())
}
