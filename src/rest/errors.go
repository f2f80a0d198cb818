package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaushikKC/VeilPay/src/reasoncodes"
)

var statusByCode = map[reasoncodes.ReasonCode]int{
	reasoncodes.ErrInvalidInput:        http.StatusBadRequest,
	reasoncodes.ErrZeroAddress:         http.StatusBadRequest,
	reasoncodes.ErrZeroAmount:          http.StatusBadRequest,
	reasoncodes.ErrArrayLengthMismatch: http.StatusBadRequest,
	reasoncodes.ErrNotEmployer:         http.StatusForbidden,
	reasoncodes.ErrUnauthorized:        http.StatusForbidden,
	reasoncodes.ErrAlreadyRegistered:   http.StatusConflict,
	reasoncodes.ErrNotRegistered:       http.StatusNotFound,
	reasoncodes.ErrNotFound:            http.StatusNotFound,
	reasoncodes.ErrProverUnavailable:   http.StatusServiceUnavailable,
	reasoncodes.ErrWitnessInvalid:      http.StatusUnprocessableEntity,
	reasoncodes.ErrInvalidProof:        http.StatusUnprocessableEntity,
	reasoncodes.ErrProofOutputInvalid:  http.StatusUnprocessableEntity,
	reasoncodes.ErrInsufficientFunds:   http.StatusUnprocessableEntity,
}

// RespondError maps a domain error onto the HTTP surface. Unknown errors
// become 500s with no internal detail leaked.
func RespondError(c *gin.Context, err error) {
	code := reasoncodes.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(status, gin.H{
		"error":       http.StatusText(status),
		"reason_code": code,
		"detail":      err.Error(),
	})
}
