package types

import (
	"strconv"

	"github.com/google/uuid"
)

// UserID represents a user identifier
type UserID int

// String returns the string representation
func (id UserID) String() string {
	return strconv.Itoa(int(id))
}

// Int returns the int representation
func (id UserID) Int() int {
	return int(id)
}

// ParseUserID parses a decimal user ID
func ParseUserID(s string) (UserID, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return UserID(v), nil
}

// InputName identifies one of the two pipeline inputs
type InputName string

const (
	InputRoster   InputName = "roster"
	InputRawHours InputName = "raw_hours"
)

// String returns the string representation
func (n InputName) String() string {
	return string(n)
}

// RequestID represents an upload request identifier
type RequestID string

// String returns the string representation
func (id RequestID) String() string {
	return string(id)
}

// NewRequestID creates a new RequestID
func NewRequestID() RequestID {
	return RequestID(uuid.New().String())
}
