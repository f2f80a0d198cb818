package verification

import (
	"github.com/gin-gonic/gin"
)

func RegisterVerificationRoutes(rg *gin.RouterGroup, handler *Handler) {
	// POST /api/verify                      (verifyIncomeProof, persists the credential)
	rg.POST("/verify", handler.VerifyIncomeProof)

	// GET /api/credentials/:subject         (all recorded credentials)
	rg.GET("/credentials/:subject", handler.GetCredentials)

	// GET /api/credentials/:subject/check   (checkIncomeCredential, ?threshold=)
	rg.GET("/credentials/:subject/check", handler.CheckIncomeCredential)

	// GET /api/credentials/:subject/count
	rg.GET("/credentials/:subject/count", handler.GetCredentialCount)
}
