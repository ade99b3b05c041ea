package contracts

import (
	"context"
	"neuroshield-service/internal/app/models"
)

// AccessGate decides whether a principal may perform an action on a target.
// A nil return allows the operation; every denial is ErrAccessDenied with
// no detail about why, or whether the target exists. The gate holds no
// state and never caches relationship lookups.
type AccessGate interface {
	Authorize(ctx context.Context, principal *models.Principal, action models.Action, target models.Target) error
}
