package settlement

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaushikKC/VeilPay/src/rest"
)

type Handler struct {
	Executor *Executor
}

func NewHandler(executor *Executor) *Handler {
	return &Handler{Executor: executor}
}

func (h *Handler) PayEmployee(c *gin.Context) {
	var req struct {
		Employer   string `json:"employer" binding:"required"`
		Subject    string `json:"subject" binding:"required"`
		Amount     uint64 `json:"amount" binding:"required"`
		Commitment string `json:"commitment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.Executor.Pay(req.Employer, req.Subject, req.Amount, req.Commitment); err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "settled"})
}

func (h *Handler) BatchPayEmployees(c *gin.Context) {
	var req struct {
		Employer    string   `json:"employer" binding:"required"`
		Subjects    []string `json:"subjects" binding:"required"`
		Amounts     []uint64 `json:"amounts" binding:"required"`
		Commitments []string `json:"commitments" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.Executor.BatchPay(req.Employer, req.Subjects, req.Amounts, req.Commitments); err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "settled", "count": len(req.Subjects)})
}

func (h *Handler) SetStablecoin(c *gin.Context) {
	var req struct {
		Caller string `json:"caller" binding:"required"`
		Token  string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.Executor.SetStablecoin(req.Caller, req.Token); err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) Mint(c *gin.Context) {
	var req struct {
		Address string `json:"address" binding:"required"`
		Amount  uint64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.Executor.Mint(req.Address, req.Amount); err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "minted"})
}

func (h *Handler) BalanceOf(c *gin.Context) {
	amount, err := h.Executor.BalanceOf(c.Param("address"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": c.Param("address"), "balance": amount})
}
