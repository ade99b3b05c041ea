package contracts

import (
	"context"
	"neuroshield-service/internal/app/models"
)

type SignupAccountInput struct {
	Name          string
	Email         string
	Password      string
	RequestedRole string
	Metadata      map[string]interface{}
}

// IdentityProvider verifies credentials and owns the durable subject id.
// It knows nothing about roles beyond the signup-time hint stored as
// metadata; effective role always comes from the profile tables.
type IdentityProvider interface {
	Signup(ctx context.Context, input *SignupAccountInput) (*models.Account, error)
	VerifyCredentials(ctx context.Context, email, password string) (*models.Account, error)
	LookupSubject(ctx context.Context, subjectID string) (*models.Account, error)
}
