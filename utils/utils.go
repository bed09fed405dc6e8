package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateResetToken returns an opaque token for a password reset link.
func GenerateResetToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
