package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewCalculationID returns an opaque identifier combining the current
// millisecond timestamp with 8 random bytes, so that concurrent calls
// within the same millisecond still produce distinct tokens. Safe for
// concurrent use; there is no shared counter.
func NewCalculationID() (string, error) {
	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate random suffix: %w", err)
	}
	return fmt.Sprintf("calc_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(suffix)), nil
}
