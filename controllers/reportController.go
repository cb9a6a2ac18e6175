package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// OrdersReport streams every order as a spreadsheet download.
func (a *App) OrdersReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)

		header := []interface{}{
			"ID", "Customer", "Email", "Type", "Items", "Status",
			"Completed By", "Subtotal", "Fee", "Tip", "Total", "Placed At",
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
			return
		}
		for i, o := range a.Orders.All() {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
				return
			}
			row := []interface{}{
				o.ID, o.CustomerName, o.CustomerEmail, string(o.Type), o.ItemSummary,
				string(o.Status), o.CompletedBy, o.Subtotal.String(), o.DeliveryFee.String(),
				o.Tip.String(), o.Total.String(), o.CreatedAt.Format(time.RFC3339),
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
				return
			}
		}

		c.Header("Content-Disposition", `attachment; filename="orders.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			log.Printf("reports: write orders.xlsx: %v", err)
		}
	}
}
