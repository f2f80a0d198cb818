package reasoncodes

import (
	"errors"
	"fmt"
)

// DomainError carries a ReasonCode through the service layers so HTTP
// handlers and queue workers can map failures without string matching.
type DomainError struct {
	Code   ReasonCode
	Detail string
}

func (e *DomainError) Error() string {
	if e.Detail == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func NewError(code ReasonCode, detail string) *DomainError {
	return &DomainError{Code: code, Detail: detail}
}

func NewErrorf(code ReasonCode, format string, v ...interface{}) *DomainError {
	return &DomainError{Code: code, Detail: fmt.Sprintf(format, v...)}
}

// CodeOf extracts the ReasonCode from err, unwrapping as needed.
// Returns an empty code when err is not a DomainError.
func CodeOf(err error) ReasonCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func Is(err error, code ReasonCode) bool {
	return CodeOf(err) == code
}
