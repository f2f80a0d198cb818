package proofstore

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaushikKC/VeilPay/src/rest"
	"github.com/KaushikKC/VeilPay/src/zkp"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// StoreProof caches a generated artifact and returns a short opaque id
// for out-of-band handoff.
func (h *Handler) StoreProof(c *gin.Context) {
	var req struct {
		Proof           zkp.ProofPoints `json:"proof" binding:"required"`
		ProofBytes      []byte          `json:"proofBytes" binding:"required"`
		PublicSignals   []string        `json:"publicSignals" binding:"required"`
		LedgerEncoding  string          `json:"ledgerEncoding" binding:"required"`
		Threshold       string          `json:"threshold" binding:"required"`
		EmployeeAddress string          `json:"employeeAddress" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	id, err := h.Store.Store(StoredProof{
		Artifact: zkp.ProofArtifact{
			Proof:          req.Proof,
			ProofBytes:     req.ProofBytes,
			PublicSignals:  req.PublicSignals,
			LedgerEncoding: req.LedgerEncoding,
		},
		Threshold:       req.Threshold,
		EmployeeAddress: req.EmployeeAddress,
	})
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proofId": id})
}

func (h *Handler) RetrieveProof(c *gin.Context) {
	record, err := h.Store.Retrieve(c.Param("proofId"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"proof":           record.Artifact.Proof,
		"proofBytes":      record.Artifact.ProofBytes,
		"publicSignals":   record.Artifact.PublicSignals,
		"ledgerEncoding":  record.Artifact.LedgerEncoding,
		"threshold":       record.Threshold,
		"employeeAddress": record.EmployeeAddress,
	})
}

func RegisterProofStoreRoutes(rg *gin.RouterGroup, handler *Handler) {
	// POST /api/proofs/store
	rg.POST("/store", handler.StoreProof)

	// GET /api/proofs/retrieve/:proofId
	rg.GET("/retrieve/:proofId", handler.RetrieveProof)
}
