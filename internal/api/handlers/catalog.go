package handlers

import (
	"net/http"

	"solar-quote/internal/api/models"
	"solar-quote/internal/catalog"

	"github.com/gin-gonic/gin"
)

// ListManufacturers handles GET /api/v1/manufacturers
func ListManufacturers(c *gin.Context) {
	list := catalog.Manufacturers()
	out := make([]models.ManufacturerInfo, 0, len(list))
	for _, m := range list {
		out = append(out, models.ManufacturerInfo{
			Manufacturer:      m,
			UnitCostNISPerKWh: m.UnitCostUSDPerKWh * catalog.USDToNIS,
		})
	}
	c.JSON(http.StatusOK, gin.H{"manufacturers": out})
}

// ListSeasons handles GET /api/v1/seasons
func ListSeasons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"seasons":          catalog.Seasons(),
		"total_peak_hours": catalog.TotalPeakHours,
	})
}
