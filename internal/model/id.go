package model

import (
	"encoding/hex"
	"regexp"

	"github.com/google/uuid"
)

// idPattern matches the canonical record id: 32 lowercase hex characters.
var idPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// NewID returns a fresh 32-character hex record id.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// ValidID reports whether s is a syntactically valid record id.
func ValidID(s string) bool {
	return idPattern.MatchString(s)
}
