package utils

import (
	"strings"

	"github.com/google/uuid"
)

// APITokenLength is the length of every generated API token.
const APITokenLength = 32

// APITokenGenerator produces opaque bearer tokens for user accounts.
// Generation alone does not guarantee uniqueness; callers must check
// the candidate against the user store before persisting it.
type APITokenGenerator struct{}

// NewAPITokenGenerator creates a new APITokenGenerator
func NewAPITokenGenerator() *APITokenGenerator {
	return &APITokenGenerator{}
}

// Generate returns a random 32-character hex token. UUIDv4 is backed by
// crypto/rand, so the token carries ~122 bits of entropy.
func (g *APITokenGenerator) Generate() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
