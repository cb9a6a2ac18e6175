package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodtruck/apperr"
	"foodtruck/helpers"
	"foodtruck/models"
)

// SignUp registers a customer account. Duplicate emails are rejected
// case-insensitively.
func (a *App) SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user.Role = models.RoleCustomer
		user.Verified = false
		if err := validate.Struct(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		digest, err := helpers.HashPassword(user.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}
		user.Password = digest
		if err := a.Users.Create(user); err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		user.Password = ""
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "registration complete", "data": user})
	}
}

// AddStaff creates a staff account. Only existing staff reach this
// handler; the route carries the staff gate.
func (a *App) AddStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user.Role = models.RoleStaff
		user.Verified = true
		if err := validate.Struct(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		digest, err := helpers.HashPassword(user.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}
		user.Password = digest
		if err := a.Users.Create(user); err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		user.Password = ""
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "staff member added", "data": user})
	}
}

func (a *App) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		found, err := a.Users.FindByEmail(req.Email)
		if err != nil || !helpers.VerifyPassword(found.Password, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "email or password is incorrect"})
			return
		}
		// Rows from the old data files store the password as plaintext.
		// After a successful match, replace it with a proper digest.
		if helpers.IsLegacyDigest(found.Password) {
			if digest, err := helpers.HashPassword(req.Password); err == nil {
				found.Password = digest
				if err := a.Users.Update(found); err != nil {
					log.Printf("login: password upgrade for %s: %v", found.Email, err)
				}
			}
		}
		token, refreshToken, err := helpers.GenerateAllTokens(found.Email, found.FirstName, found.LastName, string(found.Role))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate tokens"})
			return
		}
		found.Password = ""
		c.JSON(http.StatusOK, gin.H{"user": found, "token": token, "refresh_token": refreshToken})
	}
}

func (a *App) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		users := a.Users.All()
		for i := range users {
			users[i].Password = ""
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
	}
}

func (a *App) Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.Users.FindByEmail(c.GetString("email"))
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		user.Password = ""
		c.JSON(http.StatusOK, user)
	}
}

// UpdateMe rewrites the caller's profile. Empty fields keep their stored
// values; a new password is hashed before it lands in the store.
func (a *App) UpdateMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			FirstName   string `json:"first_name"`
			LastName    string `json:"last_name"`
			Phone       string `json:"phone"`
			Address     string `json:"address"`
			DateOfBirth string `json:"dob"`
			Sex         string `json:"sex"`
			Password    string `json:"password"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := a.Users.FindByEmail(c.GetString("email"))
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		if req.FirstName != "" {
			user.FirstName = req.FirstName
		}
		if req.LastName != "" {
			user.LastName = req.LastName
		}
		if req.Phone != "" {
			user.Phone = req.Phone
		}
		if req.Address != "" {
			user.Address = req.Address
		}
		if req.DateOfBirth != "" {
			user.DateOfBirth = req.DateOfBirth
		}
		if req.Sex != "" {
			user.Sex = req.Sex
		}
		if req.Password != "" {
			if len(req.Password) < 6 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 6 characters"})
				return
			}
			digest, err := helpers.HashPassword(req.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
				return
			}
			user.Password = digest
		}
		if err := a.Users.Update(user); err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		user.Password = ""
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "profile updated", "data": user})
	}
}
