// Package token generates the app's request correlation token.
//
// The token is the prefix followed by the current Unix time in seconds.
// It's predictable by construction, so it's only good as a nonce for cache busting or request correlation, never as a credential.
package token

import (
	"strconv"
	"time"
)

// DefaultPrefix is used when a Generator has no prefix.
const DefaultPrefix = "BANCO_SECURE_TOKEN_"

// Generator creates tokens. The zero value is ready to use.
type Generator struct {
	Prefix string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Generate returns a new token.
func (g Generator) Generate() string {
	prefix := g.Prefix
	if len(prefix) == 0 {
		prefix = DefaultPrefix
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return prefix + strconv.FormatInt(now().Unix(), 10)
}

// GenerateSecurityToken returns a token with DefaultPrefix and the current time.
func GenerateSecurityToken() string {
	return Generator{}.Generate()
}
