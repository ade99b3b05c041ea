package auth

import (
	"context"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	// Signup provisions the account and its role profile and returns the
	// session token alongside the response payload.
	Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, string, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, string, error)
	Logout(ctx context.Context, token string) error
	Dashboard(ctx context.Context, principal *models.Principal) (*responses.Dashboard, error)
}
