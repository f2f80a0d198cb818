package ledger

import (
	"github.com/gin-gonic/gin"
)

func RegisterLedgerRoutes(rg *gin.RouterGroup, handler *Handler) {
	// POST /api/ledger/employees          (registerEmployee)
	rg.POST("/employees", handler.RegisterEmployee)

	// DELETE /api/ledger/employees        (removeEmployee)
	rg.DELETE("/employees", handler.RemoveEmployee)

	// POST /api/ledger/commitments        (commitPayroll / appendCommitment)
	rg.POST("/commitments", handler.CommitPayroll)

	// GET /api/ledger/employees/:employer (getEmployees)
	rg.GET("/employees/:employer", handler.GetEmployees)

	// GET /api/ledger/commitments/:subject
	rg.GET("/commitments/:subject", handler.GetCommitments)
	rg.GET("/commitments/:subject/latest", handler.GetLatestCommitment)
	rg.GET("/commitments/:subject/count", handler.GetCommitmentCount)

	// PUT /api/ledger/writers             (setAuthorizedWriter, owner-only)
	rg.PUT("/writers", handler.SetAuthorizedWriter)
}
