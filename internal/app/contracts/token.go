package contracts

import "context"

// TokenService issues and verifies the signed session token. The token
// binds a subject id to an expiry and nothing else; role is re-derived on
// every request by the session resolver.
type TokenService interface {
	Issue(ctx context.Context, subjectID string) (string, error)

	// Verify returns the subject id for a well-formed, correctly signed,
	// unexpired token and a single invalid-token failure otherwise.
	Verify(ctx context.Context, token string) (string, error)

	// Revoke denylists a still-valid token until its natural expiry. A
	// no-op when server-side revocation is disabled.
	Revoke(ctx context.Context, token string) error
}
