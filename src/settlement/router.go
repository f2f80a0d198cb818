package settlement

import (
	"github.com/gin-gonic/gin"
)

func RegisterSettlementRoutes(rg *gin.RouterGroup, handler *Handler) {
	// POST /api/payroll/pay        (payEmployee)
	rg.POST("/pay", handler.PayEmployee)

	// POST /api/payroll/batch      (batchPayEmployees)
	rg.POST("/batch", handler.BatchPayEmployees)

	// PUT /api/payroll/stablecoin  (setStablecoin, owner-only)
	rg.PUT("/stablecoin", handler.SetStablecoin)

	// Mock-token faucet and balances
	rg.POST("/mint", handler.Mint)
	rg.GET("/balances/:address", handler.BalanceOf)
}
