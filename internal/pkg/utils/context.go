package utils

import (
	"context"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/constvars"
)

// PrincipalFromContext returns the Principal placed on the context by the
// authentication middleware.
func PrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	return principal, ok
}
