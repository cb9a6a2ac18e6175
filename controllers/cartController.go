package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodtruck/apperr"
)

func (a *App) GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("email")
		c.JSON(http.StatusOK, gin.H{
			"items":    a.Carts.Get(owner),
			"subtotal": a.Carts.Subtotal(owner),
		})
	}
}

// AddToCart puts a menu item in the caller's cart by name. The item must
// exist and be marked available.
func (a *App) AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name" binding:"required"`
			Quantity int    `json:"quantity"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item, err := a.Menu.FindByName(req.Name)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		if !item.Available {
			err := apperr.Conflictf("%s is currently unavailable", item.Name)
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		owner := c.GetString("email")
		a.Carts.Add(owner, item.Name, item.Price, req.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "added to cart",
			"items":    a.Carts.Get(owner),
			"subtotal": a.Carts.Subtotal(owner),
		})
	}
}

func (a *App) UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name" binding:"required"`
			Quantity int    `json:"quantity"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		owner := c.GetString("email")
		if err := a.Carts.SetQuantity(owner, req.Name, req.Quantity); err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "cart updated",
			"items":    a.Carts.Get(owner),
			"subtotal": a.Carts.Subtotal(owner),
		})
	}
}

func (a *App) RemoveFromCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("email")
		if err := a.Carts.Remove(owner, c.Param("item_name")); err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "removed from cart",
			"items":    a.Carts.Get(owner),
			"subtotal": a.Carts.Subtotal(owner),
		})
	}
}
