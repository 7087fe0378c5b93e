package ordercontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Oghenetega16/audiophile-api/orders"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportOrdersToExcel downloads every order as an .xlsx sheet (admin).
//
// GET /admin/orders/export
func ExportOrdersToExcel(svc *orders.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.GetAllOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderNumber", "CustomerName", "CustomerEmail", "CustomerPhone",
			"Address", "City", "Zip", "Country", "Items",
			"Subtotal", "Shipping", "VAT", "Total",
			"PaymentMethod", "Status", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range list {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.OrderNumber)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerEmail)
			row.AddCell().SetValue(o.CustomerPhone)
			row.AddCell().SetValue(o.ShippingAddress.Address)
			row.AddCell().SetValue(o.ShippingAddress.City)
			row.AddCell().SetValue(o.ShippingAddress.Zip)
			row.AddCell().SetValue(o.ShippingAddress.Country)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, item.ProductName+" x"+strconv.Itoa(item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.Shipping)
			row.AddCell().SetValue(o.VAT)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
