package recommendations

import (
	"context"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/dto/responses"
)

type RecommendationUsecase interface {
	ListRecommendations(ctx context.Context, principal *models.Principal, patientProfileID, recommendationType string, activeOnly bool) ([]responses.Recommendation, error)
	CreateRecommendation(ctx context.Context, principal *models.Principal, patientProfileID string, request *requests.CreateRecommendation) (*responses.Recommendation, error)

	// GenerateBaseline writes the rule-derived system recommendations for a
	// patient. Generated rows carry no author.
	GenerateBaseline(ctx context.Context, principal *models.Principal, patientProfileID string) ([]responses.Recommendation, error)
	Deactivate(ctx context.Context, principal *models.Principal, recommendationID string) error
}
