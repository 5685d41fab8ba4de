package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionID creates a human-readable tracking-session ID.
// Format: {source}-{8charHexUUID}, e.g. "replay-a3f8e2b1".
func GenerateSessionID(source string) string {
	return source + "-" + generateShortUUID()
}

// generateShortUUID returns the first 8 hex characters of a random UUID,
// enough uniqueness for session correlation without unwieldy IDs
func generateShortUUID() string {
	id := uuid.New().String()
	return strings.ReplaceAll(id, "-", "")[:8]
}
