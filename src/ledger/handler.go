package ledger

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaushikKC/VeilPay/src/rest"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterEmployee(c *gin.Context) {
	var req struct {
		Employer string `json:"employer" binding:"required"`
		Subject  string `json:"subject" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.Service.RegisterEmployee(req.Employer, req.Subject); err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "registered"})
}

func (h *Handler) RemoveEmployee(c *gin.Context) {
	var req struct {
		Employer string `json:"employer" binding:"required"`
		Subject  string `json:"subject" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.Service.RemoveEmployee(req.Employer, req.Subject); err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (h *Handler) CommitPayroll(c *gin.Context) {
	var req struct {
		Caller     string `json:"caller" binding:"required"`
		Employer   string `json:"employer" binding:"required"`
		Subject    string `json:"subject" binding:"required"`
		Commitment string `json:"commitment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.Service.AppendCommitment(req.Caller, req.Employer, req.Subject, req.Commitment); err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "committed"})
}

func (h *Handler) GetEmployees(c *gin.Context) {
	employees, err := h.Service.GetEmployees(c.Param("employer"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (h *Handler) GetCommitments(c *gin.Context) {
	entries, err := h.Service.All(c.Param("subject"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commitments": entries})
}

func (h *Handler) GetLatestCommitment(c *gin.Context) {
	entry, err := h.Service.Latest(c.Param("subject"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No commitments for subject"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handler) GetCommitmentCount(c *gin.Context) {
	count, err := h.Service.Count(c.Param("subject"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) SetAuthorizedWriter(c *gin.Context) {
	var req struct {
		Caller  string `json:"caller" binding:"required"`
		Address string `json:"address" binding:"required"`
		Enabled *bool  `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := h.Service.SetAuthorizedWriter(req.Caller, req.Address, *req.Enabled); err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
