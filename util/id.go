package util

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a prefixed short identifier such as "risk-1a2b3c4d".
// Eight hex chars is plenty for a single portfolio's worth of records.
func NewID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s-%x", prefix, u[:4])
}
