package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foodtruck/controllers"
	"foodtruck/routes"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using process environment")
	}

	port := envOr("PORT", "8000")
	dataDir := envOr("DATA_DIR", "data")
	app := controllers.NewApp(dataDir, envOr("TRUCK_NAME", "CS120 Food Truck"), envOr("TRUCK_LOCATION", "GSU Campus"))

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{envOr("FRONTEND_ORIGIN", "http://localhost:9000")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", app.Home())
	routes.UserRoutes(router, app)
	routes.MenuRoutes(router, app)
	routes.OrderRoutes(router, app)
	routes.ScheduleRoutes(router, app)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	log.Printf("listening on :%s (data dir %s)", port, dataDir)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
