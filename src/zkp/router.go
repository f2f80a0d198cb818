package zkp

import (
	"github.com/gin-gonic/gin"
)

func RegisterProofRoutes(rg *gin.RouterGroup, handler *Handler) {
	// POST /api/proofs/generate
	rg.POST("/generate", handler.GenerateProof)

	// POST /api/proofs/verify (off-chain convenience)
	rg.POST("/verify", handler.VerifyProof)

	// GET /api/proofs/status (prover artifact readiness)
	rg.GET("/status", handler.Status)
}
