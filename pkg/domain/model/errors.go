package model

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Error tags used to classify failures at the service boundary
var (
	ErrTagHeaderNotFound = goerr.NewTag("header_not_found")
	ErrTagInvalidInput   = goerr.NewTag("invalid_input")
	ErrTagUserNotFound   = goerr.NewTag("user_not_found")
)

// Sentinel errors for domain operations
var (
	ErrUserNotFound = goerr.New("user not found", goerr.T(ErrTagUserNotFound))
)

// HeaderNotFoundError is returned when no row within the scan window carries
// every required column label.
type HeaderNotFoundError struct {
	Required []string
	Window   int
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("header row with columns [%s] not found in first %d rows",
		strings.Join(e.Required, ", "), e.Window)
}
