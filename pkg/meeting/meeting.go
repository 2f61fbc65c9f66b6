// Package meeting provides the opaque meeting-link collaborator used by the
// booking flow. The core never validates links; whatever the provider
// returns is stored on the session as-is.
package meeting

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// LinkProvider generates a meeting link for a newly booked session.
type LinkProvider interface {
	GenerateLink() string
}

// TokenLinkProvider builds links from a base URL and an opaque random token.
type TokenLinkProvider struct {
	baseURL string
}

// NewTokenLinkProvider creates a provider rooted at baseURL,
// e.g. "https://meet.mentorhub.dev".
func NewTokenLinkProvider(baseURL string) *TokenLinkProvider {
	return &TokenLinkProvider{baseURL: strings.TrimRight(baseURL, "/")}
}

// GenerateLink returns a fresh opaque meeting URL.
func (p *TokenLinkProvider) GenerateLink() string {
	return fmt.Sprintf("%s/%s", p.baseURL, uuid.NewString())
}

var _ LinkProvider = (*TokenLinkProvider)(nil)
