package verification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KaushikKC/VeilPay/src/rest"
)

type Handler struct {
	Gate *Gate
}

func NewHandler(gate *Gate) *Handler {
	return &Handler{Gate: gate}
}

// VerifyIncomeProof accepts either the raw proof plus public signals or
// the ledger encoding produced at generation time.
func (h *Handler) VerifyIncomeProof(c *gin.Context) {
	var req struct {
		Subject        string   `json:"subject" binding:"required"`
		ProofBytes     []byte   `json:"proofBytes"`
		PublicSignals  []string `json:"publicSignals"`
		LedgerEncoding string   `json:"ledgerEncoding"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var err error
	switch {
	case req.LedgerEncoding != "":
		err = h.Gate.VerifyEncoded(req.Subject, req.LedgerEncoding)
	case len(req.ProofBytes) > 0 && len(req.PublicSignals) > 0:
		err = h.Gate.VerifyIncomeProof(req.Subject, req.ProofBytes, req.PublicSignals)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide ledgerEncoding or proofBytes with publicSignals"})
		return
	}
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}

func (h *Handler) GetCredentials(c *gin.Context) {
	records, err := h.Gate.GetCredentials(c.Param("subject"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subject": c.Param("subject"), "credentials": records})
}

func (h *Handler) CheckIncomeCredential(c *gin.Context) {
	threshold, err := strconv.ParseUint(c.Query("threshold"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be a decimal integer"})
		return
	}
	ok, err := h.Gate.CheckIncomeCredential(c.Param("subject"), threshold)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"subject":   c.Param("subject"),
		"threshold": threshold,
		"verified":  ok,
	})
}

func (h *Handler) GetCredentialCount(c *gin.Context) {
	count, err := h.Gate.GetCredentialCount(c.Param("subject"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subject": c.Param("subject"), "count": count})
}
