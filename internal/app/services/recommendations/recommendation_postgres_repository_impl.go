package recommendations

import (
	"context"
	"database/sql"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/exceptions"
	"neuroshield-service/internal/pkg/queries"
	"sync"

	"go.uber.org/zap"
)

type recommendationPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	recommendationPostgresRepositoryInstance contracts.RecommendationStore
	onceRecommendationPostgresRepository     sync.Once
)

func NewRecommendationPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.RecommendationStore {
	onceRecommendationPostgresRepository.Do(func() {
		instance := &recommendationPostgresRepository{
			DB:  db,
			Log: logger,
		}
		recommendationPostgresRepositoryInstance = instance
	})
	return recommendationPostgresRepositoryInstance
}

func (r *recommendationPostgresRepository) FindByID(ctx context.Context, recommendationID string) (*models.Recommendation, error) {
	var recommendation models.Recommendation
	err := r.DB.QueryRowContext(ctx, queries.GetRecommendationByID, recommendationID).Scan(
		&recommendation.ID,
		&recommendation.PatientProfileID,
		&recommendation.CreatedBy,
		&recommendation.Type,
		&recommendation.Content,
		&recommendation.Priority,
		&recommendation.Active,
		&recommendation.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &recommendation, nil
}

func (r *recommendationPostgresRepository) ListByPatient(ctx context.Context, patientProfileID string, filter contracts.RecommendationFilter) ([]models.Recommendation, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetRecommendationsByPatient, patientProfileID, filter.Type, filter.ActiveOnly)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var results []models.Recommendation
	for rows.Next() {
		var recommendation models.Recommendation
		if err := rows.Scan(
			&recommendation.ID,
			&recommendation.PatientProfileID,
			&recommendation.CreatedBy,
			&recommendation.Type,
			&recommendation.Content,
			&recommendation.Priority,
			&recommendation.Active,
			&recommendation.CreatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		results = append(results, recommendation)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return results, nil
}

func (r *recommendationPostgresRepository) Insert(ctx context.Context, recommendation *models.Recommendation) error {
	_, err := r.DB.ExecContext(ctx, queries.InsertRecommendation,
		recommendation.ID,
		recommendation.PatientProfileID,
		recommendation.CreatedBy,
		recommendation.Type,
		recommendation.Content,
		recommendation.Priority,
		recommendation.Active,
		recommendation.CreatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *recommendationPostgresRepository) Deactivate(ctx context.Context, recommendationID string) error {
	_, err := r.DB.ExecContext(ctx, queries.DeactivateRecommendation, recommendationID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
