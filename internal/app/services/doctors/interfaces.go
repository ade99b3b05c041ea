package doctors

import (
	"context"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	GetMyProfile(ctx context.Context, principal *models.Principal) (*responses.DoctorProfile, error)
	UpdateMyProfile(ctx context.Context, principal *models.Principal, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error)
	ListMyPatients(ctx context.Context, principal *models.Principal) ([]responses.PatientProfile, error)
}
