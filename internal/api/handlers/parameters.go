package handlers

import (
	"net/http"

	"solar-quote/internal/api/models"
	"solar-quote/internal/model"

	"github.com/gin-gonic/gin"
)

// ListParameters handles GET /api/v1/parameters
func ListParameters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"parameters": ParameterInfos()})
}

// ParameterInfos documents every quote parameter with its default.
func ParameterInfos() []models.ParameterInfo {
	d := model.DefaultParameters()
	return []models.ParameterInfo{
		{Name: "pv_dc", Type: "float", Unit: "kWp", Description: "Existing PV DC capacity", Default: d.PVDC},
		{Name: "pv_ac", Type: "float", Unit: "kW", Description: "Existing PV AC (inverter) capacity; caps storage discharge power", Default: d.PVAC},
		{Name: "pv_additional", Type: "float", Unit: "kWp", Description: "Additional PV DC capacity to install", Default: d.PVAdditional},
		{Name: "pv_yield", Type: "float", Unit: "kWh/kWp/year", Description: "Annual PV yield per installed kWp", Default: d.PVYield},
		{Name: "manufacturer", Type: "string", Description: "Storage manufacturer (see /api/v1/manufacturers)", Default: d.Manufacturer},
		{Name: "storage_kwh", Type: "float", Unit: "kWh", Description: "Requested storage capacity, rounded down to whole units", Default: d.StorageKWh},
		{Name: "pv_tariff", Type: "float", Unit: "NIS/kWh", Description: "Feed-in tariff for surplus PV", Default: d.PVTariff},
		{Name: "pv_install_cost_per_kwp", Type: "float", Unit: "NIS/kWp", Description: "Installation cost of additional PV", Default: d.PVInstallCostPerKWp},
		{Name: "pv_maintenance_per_kwp", Type: "float", Unit: "NIS/kWp/year", Description: "PV maintenance cost", Default: d.PVMaintenancePerKWp},
		{Name: "storage_maintenance_per_kwh", Type: "float", Unit: "NIS/kWh/year", Description: "Storage maintenance cost", Default: d.StorageMaintenancePerKWh},
		{Name: "period", Type: "int", Unit: "years", Description: "Projection horizon, capped at 25", Default: d.PeriodYears},
		{Name: "loan_pct", Type: "float", Unit: "%", Description: "Share of the install cost financed by a loan (0-100)", Default: d.LoanPct},
		{Name: "interest_rate", Type: "float", Unit: "%", Description: "Annual loan interest rate, compounded monthly", Default: d.InterestRatePct},
		{Name: "loan_period", Type: "int", Unit: "years", Description: "Loan term", Default: d.LoanPeriodYears},
	}
}
