package googleauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Identity is the subset of a verified Google ID token the application needs.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Verifier validates an externally-issued Google ID token and extracts the
// holder's identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// ClientVerifier verifies tokens against Google's public verification
// endpoint for the configured OAuth client id (audience).
type ClientVerifier struct {
	clientID string
}

// NewClientVerifier creates a verifier bound to the given OAuth client id.
func NewClientVerifier(clientID string) *ClientVerifier {
	return &ClientVerifier{clientID: clientID}
}

// Verify validates the token's signature, expiry and audience.
func (v *ClientVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("google token verification failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)

	return &Identity{
		Subject: payload.Subject,
		Email:   email,
		Name:    name,
	}, nil
}
