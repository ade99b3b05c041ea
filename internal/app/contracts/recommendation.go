package contracts

import (
	"context"
	"neuroshield-service/internal/app/models"
)

type RecommendationFilter struct {
	Type       string
	ActiveOnly bool
}

type RecommendationStore interface {
	FindByID(ctx context.Context, recommendationID string) (*models.Recommendation, error)
	ListByPatient(ctx context.Context, patientProfileID string, filter RecommendationFilter) ([]models.Recommendation, error)
	Insert(ctx context.Context, recommendation *models.Recommendation) error
	Deactivate(ctx context.Context, recommendationID string) error
}
