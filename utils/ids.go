package utils

import (
	"strings"

	"github.com/google/uuid"
)

// idSuffixLen is the number of hex characters kept from a random UUID.
// 48 bits keeps collisions out of reach for a single shop's volume.
const idSuffixLen = 12

// NewID returns "<prefix>-<12 hex>" built from a random (v4) UUID.
func NewID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	// Version and variant nibbles come earlier; the tail is fully random.
	suffix := hex[len(hex)-idSuffixLen:]
	if prefix == "" {
		return suffix
	}
	return prefix + "-" + suffix
}
