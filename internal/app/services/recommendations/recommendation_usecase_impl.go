package recommendations

import (
	"context"
	"errors"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/dto/responses"
	"neuroshield-service/internal/pkg/exceptions"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type recommendationUsecase struct {
	RecommendationStore contracts.RecommendationStore
	ProfileStore        contracts.ProfileStore
	AccessGate          contracts.AccessGate
	Log                 *zap.Logger
}

var (
	recommendationUsecaseInstance RecommendationUsecase
	onceRecommendationUsecase     sync.Once
)

func NewRecommendationUsecase(
	recommendationStore contracts.RecommendationStore,
	profileStore contracts.ProfileStore,
	accessGate contracts.AccessGate,
	logger *zap.Logger,
) RecommendationUsecase {
	onceRecommendationUsecase.Do(func() {
		recommendationUsecaseInstance = &recommendationUsecase{
			RecommendationStore: recommendationStore,
			ProfileStore:        profileStore,
			AccessGate:          accessGate,
			Log:                 logger,
		}
	})
	return recommendationUsecaseInstance
}

func (uc *recommendationUsecase) ListRecommendations(ctx context.Context, principal *models.Principal, patientProfileID, recommendationType string, activeOnly bool) ([]responses.Recommendation, error) {
	target := models.Target{PatientProfileID: patientProfileID}
	if err := uc.AccessGate.Authorize(ctx, principal, models.ActionReadPatient, target); err != nil {
		return nil, err
	}

	results, err := uc.RecommendationStore.ListByPatient(ctx, patientProfileID, contracts.RecommendationFilter{
		Type:       recommendationType,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return nil, err
	}

	payload := make([]responses.Recommendation, 0, len(results))
	for i := range results {
		payload = append(payload, *buildRecommendationResponse(&results[i]))
	}
	return payload, nil
}

func (uc *recommendationUsecase) CreateRecommendation(ctx context.Context, principal *models.Principal, patientProfileID string, request *requests.CreateRecommendation) (*responses.Recommendation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recommendationUsecase.CreateRecommendation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Doctors author in their own name; an admin-created row carries no
	// author, same as a system-generated one.
	createdBy := ""
	if principal.Role == models.RoleDoctor {
		createdBy = principal.ProfileID
	}

	target := models.Target{PatientProfileID: patientProfileID, CreatorProfileID: createdBy}
	if err := uc.AccessGate.Authorize(ctx, principal, models.ActionCreateRecommendation, target); err != nil {
		return nil, err
	}

	priority := request.Priority
	if priority == 0 {
		priority = constvars.RecommendationPriorityMedium
	}

	recommendation := &models.Recommendation{
		ID:               uuid.NewString(),
		PatientProfileID: patientProfileID,
		CreatedBy:        createdBy,
		Type:             request.Type,
		Content:          request.Content,
		Priority:         priority,
		Active:           true,
		CreatedAt:        time.Now().UTC(),
	}

	if err := uc.RecommendationStore.Insert(ctx, recommendation); err != nil {
		return nil, err
	}

	return buildRecommendationResponse(recommendation), nil
}

func (uc *recommendationUsecase) GenerateBaseline(ctx context.Context, principal *models.Principal, patientProfileID string) ([]responses.Recommendation, error) {
	target := models.Target{PatientProfileID: patientProfileID}
	if err := uc.AccessGate.Authorize(ctx, principal, models.ActionCreateRecommendation, target); err != nil {
		return nil, err
	}

	patient, err := uc.ProfileStore.FindPatientByID(ctx, patientProfileID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrAccessDenied(errors.New("patient profile does not exist"))
	}

	now := time.Now().UTC()
	generated := generateFromProfile(patient)

	payload := make([]responses.Recommendation, 0, len(generated))
	for i := range generated {
		generated[i].ID = uuid.NewString()
		generated[i].PatientProfileID = patientProfileID
		generated[i].Active = true
		generated[i].CreatedAt = now
		if err := uc.RecommendationStore.Insert(ctx, &generated[i]); err != nil {
			return nil, err
		}
		payload = append(payload, *buildRecommendationResponse(&generated[i]))
	}
	return payload, nil
}

func (uc *recommendationUsecase) Deactivate(ctx context.Context, principal *models.Principal, recommendationID string) error {
	recommendation, err := uc.RecommendationStore.FindByID(ctx, recommendationID)
	if err != nil {
		return err
	}
	if recommendation == nil {
		// Uniform with an authorization failure so ids cannot be probed.
		return exceptions.ErrAccessDenied(errors.New("recommendation does not exist"))
	}

	// A doctor may retract their own advice; the patient may dismiss
	// unattributed ones.
	target := models.Target{
		PatientProfileID: recommendation.PatientProfileID,
		CreatorProfileID: recommendation.CreatedBy,
	}
	action := models.ActionCreateRecommendation
	if recommendation.CreatedBy == "" {
		action = models.ActionWritePatient
	}
	if err := uc.AccessGate.Authorize(ctx, principal, action, target); err != nil {
		return err
	}

	return uc.RecommendationStore.Deactivate(ctx, recommendationID)
}

// generateFromProfile derives baseline advice from the profile fields. The
// rule set mirrors what the care team hands every new patient: targeted
// entries for known conditions, then general daily-habit guidance.
func generateFromProfile(patient *models.PatientProfile) []models.Recommendation {
	var results []models.Recommendation
	history := strings.ToLower(patient.MedicalHistory)

	if strings.Contains(history, "stroke") {
		results = append(results, models.Recommendation{
			Type:     "lifestyle",
			Content:  "Reduce salt intake to less than 2g per day, avoid processed foods, maintain regular exercise, and monitor blood pressure daily.",
			Priority: constvars.RecommendationPriorityHigh,
		})
	}
	if strings.Contains(history, "hypertension") || strings.Contains(history, "blood pressure") {
		results = append(results, models.Recommendation{
			Type:     "diet",
			Content:  "Your blood pressure needs attention. Reduce sodium intake, increase potassium-rich foods (bananas, spinach), and limit alcohol consumption.",
			Priority: constvars.RecommendationPriorityHigh,
		})
	}
	if strings.Contains(history, "diabetes") || strings.Contains(history, "blood sugar") {
		results = append(results, models.Recommendation{
			Type:     "diet",
			Content:  "Limit refined sugars, eat smaller frequent meals, and include fiber-rich foods in your diet.",
			Priority: constvars.RecommendationPriorityHigh,
		})
	}
	if patient.Age >= 60 {
		results = append(results, models.Recommendation{
			Type:     "checkup",
			Content:  "Schedule a routine health screening at least twice a year and review your medication list with your doctor.",
			Priority: constvars.RecommendationPriorityMedium,
		})
	}

	results = append(results,
		models.Recommendation{
			Type:     "hydration",
			Content:  "Drink at least 8 glasses (2 liters) of water daily. Limit caffeinated and sugary beverages.",
			Priority: constvars.RecommendationPriorityMedium,
		},
		models.Recommendation{
			Type:     "sleep",
			Content:  "Aim for 7-9 hours of quality sleep each night. Keep a consistent sleep schedule.",
			Priority: constvars.RecommendationPriorityMedium,
		},
	)
	return results
}

func buildRecommendationResponse(recommendation *models.Recommendation) *responses.Recommendation {
	return &responses.Recommendation{
		ID:               recommendation.ID,
		PatientProfileID: recommendation.PatientProfileID,
		CreatedBy:        recommendation.CreatedBy,
		Type:             recommendation.Type,
		Content:          recommendation.Content,
		Priority:         recommendation.Priority,
		Active:           recommendation.Active,
	}
}
