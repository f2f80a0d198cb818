package commitment

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

func (h *Handler) CreateCommitment(c *gin.Context) {
	var req struct {
		EmployeeAddress string `json:"employeeAddress" binding:"required"`
		Salary          uint64 `json:"salary" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	created, err := h.Service.CreateCommitment(req.EmployeeAddress, req.Salary)
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) GetEmployee(c *gin.Context) {
	secret, err := h.Service.GetEmployee(c.Param("address"))
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"employeeAddress": secret.Subject,
		"salary":          secret.Salary,
		"nonce":           secret.Nonce,
		"commitment":      secret.Commitment,
		"timestamp":       secret.Timestamp,
	})
}

func (h *Handler) GetAll(c *gin.Context) {
	secrets, err := h.Service.GetAll()
	if err != nil {
		rest.RespondError(c, err)
		return
	}
	out := make(map[string]gin.H, len(secrets))
	for _, s := range secrets {
		out[s.Subject] = gin.H{
			"salary":     s.Salary,
			"nonce":      s.Nonce,
			"commitment": s.Commitment,
			"timestamp":  s.Timestamp,
		}
	}
	c.JSON(http.StatusOK, out)
}
