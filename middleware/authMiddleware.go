package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodtruck/helpers"
	"foodtruck/models"
)

func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authentication token provided"})
			c.Abort()
			return
		}
		claims, err := helpers.ValidateToken(clientToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set("email", claims.Email)
		c.Set("first_name", claims.FirstName)
		c.Set("last_name", claims.LastName)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// StaffOnly gates management routes on the staff role claim. It must run
// after Authentication.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != string(models.RoleStaff) {
			c.JSON(http.StatusForbidden, gin.H{"error": "staff access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
