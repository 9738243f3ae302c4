package api

import (
	"net/http" // HTTP status codes

	"shop_system/internal/service" // Use cases

	"github.com/gin-gonic/gin" // Gin web framework
)

// SalesReportHandler aggregates sales per day between from_date and to_date
func SalesReportHandler(reports *service.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := reports.ParseRange(c.Query("from_date"), c.Query("to_date"))
		if err != nil {
			respondError(c, err, "Sales report")
			return
		}
		rows, err := reports.ByDate(c.Request.Context(), r)
		if err != nil {
			respondError(c, err, "Sales report")
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// SalesReportByBrandHandler aggregates sales per brand between from_date and to_date
func SalesReportByBrandHandler(reports *service.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := reports.ParseRange(c.Query("from_date"), c.Query("to_date"))
		if err != nil {
			respondError(c, err, "Sales report")
			return
		}
		rows, err := reports.ByBrand(c.Request.Context(), r)
		if err != nil {
			respondError(c, err, "Sales report")
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
