package zkp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaushikKC/VeilPay/src/rest"
)

type Handler struct {
	Service  *Service
	Verifier Verifier
	Prover   Prover
}

func NewHandler(service *Service, prover Prover, verifier Verifier) *Handler {
	return &Handler{Service: service, Prover: prover, Verifier: verifier}
}

func (h *Handler) GenerateProof(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	artifact, err := h.Service.GenerateProof(req)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

// VerifyProof is the off-chain convenience check. The verification of
// record happens at the gate endpoint, which also persists the result.
func (h *Handler) VerifyProof(c *gin.Context) {
	var req struct {
		ProofBytes    []byte   `json:"proofBytes" binding:"required"`
		PublicSignals []string `json:"publicSignals" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	proofValid, err := h.Verifier.Verify(req.ProofBytes, req.PublicSignals)
	if err != nil {
		rest.RespondError(c, err)
		return
	}

	aboveThreshold := req.PublicSignals[SignalValid] == "1"
	c.JSON(http.StatusOK, gin.H{
		"valid":                proofValid && aboveThreshold,
		"proofValid":           proofValid,
		"incomeAboveThreshold": aboveThreshold,
		"threshold":            req.PublicSignals[SignalThreshold],
	})
}

func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"provisioned": h.Prover.Ready()})
}
