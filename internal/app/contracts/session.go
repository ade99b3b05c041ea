package contracts

import (
	"context"
	"neuroshield-service/internal/app/models"
)

// SessionResolver turns a verified subject id into the Principal for the
// current request.
type SessionResolver interface {
	Resolve(ctx context.Context, subjectID string) (*models.Principal, error)
}
