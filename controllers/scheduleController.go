package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodtruck/apperr"
)

func (a *App) GetSchedules() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": a.Schedules.All()})
	}
}

func (a *App) GetMySchedules() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": a.Schedules.ForStaff(c.GetString("email"))})
	}
}

// GetAvailability lists the open slots for ?staff_email=…&date=YYYY-MM-DD.
// Closed days and bad dates come back as an empty list, not an error.
func (a *App) GetAvailability() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffEmail := c.Query("staff_email")
		date := c.Query("date")
		if staffEmail == "" || date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "staff_email and date are required"})
			return
		}
		slots := a.Scheduler.AvailableSlots(staffEmail, date)
		if slots == nil {
			slots = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"staff_email": staffEmail, "date": date, "slots": slots})
	}
}

// BookSchedule books a shift. The acting manager's name comes from the
// authenticated claims, not the request body.
func (a *App) BookSchedule() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Date            string `json:"date" binding:"required"`
			TimeSlot        string `json:"time" binding:"required"`
			StaffEmail      string `json:"staff_email" binding:"required"`
			WorkDescription string `json:"work_description"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		manager := strings.TrimSpace(c.GetString("first_name") + " " + c.GetString("last_name"))
		entry, err := a.Scheduler.Book(manager, req.Date, req.TimeSlot, req.StaffEmail, req.WorkDescription)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "schedule booked", "data": entry})
	}
}
