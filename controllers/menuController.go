package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"foodtruck/apperr"
	"foodtruck/models"
)

func (a *App) GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "menu items fetched successfully",
			"data":    a.Menu.All(),
		})
	}
}

func (a *App) GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("menu_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "menu_id must be numeric"})
			return
		}
		item, err := a.Menu.FindByID(id)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

type menuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Vegan       bool     `json:"vegan"`
	Image       string   `json:"image"`
	Allergens   []string `json:"allergens"`
	Available   *bool    `json:"available"`
}

func (a *App) CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req menuItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a non-negative decimal"})
			return
		}
		item := models.MenuItem{
			Name:        req.Name,
			Description: req.Description,
			Price:       price,
			Category:    models.Category(req.Category),
			Vegan:       req.Vegan,
			Image:       req.Image,
			Allergens:   req.Allergens,
			Available:   req.Available == nil || *req.Available,
		}
		if err := validate.Struct(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		created, err := a.Menu.Create(item)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "menu item created", "data": created})
	}
}

// UpdateMenuItem applies the provided fields to an existing item; nil
// fields keep their stored values.
func (a *App) UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("menu_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "menu_id must be numeric"})
			return
		}
		var req struct {
			Name        *string   `json:"name"`
			Description *string   `json:"description"`
			Price       *string   `json:"price"`
			Category    *string   `json:"category"`
			Vegan       *bool     `json:"vegan"`
			Image       *string   `json:"image"`
			Allergens   *[]string `json:"allergens"`
			Available   *bool     `json:"available"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item, err := a.Menu.FindByID(id)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Price != nil {
			price, err := decimal.NewFromString(*req.Price)
			if err != nil || price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a non-negative decimal"})
				return
			}
			item.Price = price
		}
		if req.Category != nil {
			item.Category = models.Category(*req.Category)
		}
		if req.Vegan != nil {
			item.Vegan = *req.Vegan
		}
		if req.Image != nil {
			item.Image = *req.Image
		}
		if req.Allergens != nil {
			item.Allergens = *req.Allergens
		}
		if req.Available != nil {
			item.Available = *req.Available
		}
		if err := validate.Struct(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := a.Menu.Update(item); err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "menu item updated", "data": item})
	}
}

func (a *App) DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("menu_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "menu_id must be numeric"})
			return
		}
		if err := a.Menu.Delete(id); err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "menu item deleted"})
	}
}

// ImportMenu bulk-loads items from an uploaded spreadsheet. Expected
// columns: name, price, category, description, vegan, allergens
// (semicolon-separated), image. Malformed rows are skipped, not fatal.
func (a *App) ImportMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "spreadsheet file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to open uploaded file"})
			return
		}
		defer file.Close()

		xl, err := excelize.OpenReader(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse spreadsheet"})
			return
		}
		defer xl.Close()

		rows, err := xl.GetRows(xl.GetSheetName(0))
		if err != nil || len(rows) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "spreadsheet must have at least one data row"})
			return
		}

		imported := 0
		for _, row := range rows[1:] {
			if len(row) < 3 || row[0] == "" {
				continue
			}
			price, err := decimal.NewFromString(strings.TrimSpace(row[1]))
			if err != nil || price.IsNegative() {
				continue
			}
			item := models.MenuItem{
				Name:      strings.TrimSpace(row[0]),
				Price:     price,
				Category:  models.Category(strings.TrimSpace(row[2])),
				Available: true,
			}
			if len(row) > 3 {
				item.Description = row[3]
			}
			if len(row) > 4 {
				item.Vegan = strings.EqualFold(row[4], "true")
			}
			if len(row) > 5 && row[5] != "" {
				for _, tag := range strings.Split(row[5], ";") {
					if tag = strings.TrimSpace(tag); tag != "" {
						item.Allergens = append(item.Allergens, tag)
					}
				}
			}
			if len(row) > 6 {
				item.Image = row[6]
			}
			if err := validate.Struct(&item); err != nil {
				continue
			}
			if _, err := a.Menu.Create(item); err != nil {
				c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
				return
			}
			imported++
		}
		if imported == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no valid rows found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "menu import complete", "count": imported})
	}
}
