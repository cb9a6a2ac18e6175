package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"foodtruck/ordering"
	"foodtruck/scheduling"
	"foodtruck/storage"
)

var validate = validator.New()

// App carries every store and service the handlers need. Handlers hang
// off it instead of package globals so tests can build isolated copies.
type App struct {
	Users     *storage.UserStore
	Menu      *storage.MenuStore
	Orders    *storage.OrderStore
	Schedules *storage.ScheduleStore
	Scheduler *scheduling.Service
	Carts     *ordering.Carts
	TruckName string
	Location  string

	hub *orderHub
}

func NewApp(dataDir string, truckName string, location string) *App {
	users := storage.NewUserStore(dataDir)
	schedules := storage.NewScheduleStore(dataDir)
	return &App{
		Users:     users,
		Menu:      storage.NewMenuStore(dataDir),
		Orders:    storage.NewOrderStore(dataDir),
		Schedules: schedules,
		Scheduler: scheduling.NewService(users, schedules),
		Carts:     ordering.NewCarts(),
		TruckName: truckName,
		Location:  location,
		hub:       newOrderHub(),
	}
}

func (a *App) Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":        fmt.Sprintf("%s is serving food at %s!", a.TruckName, a.Location),
			"staff_count":    len(a.Users.All()),
			"schedule_count": len(a.Schedules.All()),
		})
	}
}
