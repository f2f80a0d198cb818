package commitment

import (
	"github.com/gin-gonic/gin"
)

func RegisterCommitmentRoutes(rg *gin.RouterGroup, handler *Handler) {
	// POST /api/commitments/create
	rg.POST("/create", handler.CreateCommitment)

	// GET /api/commitments/employee/:address
	rg.GET("/employee/:address", handler.GetEmployee)

	// GET /api/commitments/all (debug)
	rg.GET("/all", handler.GetAll)
}
