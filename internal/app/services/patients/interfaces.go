package patients

import (
	"context"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	GetMyProfile(ctx context.Context, principal *models.Principal) (*responses.PatientProfile, error)
	UpdateMyProfile(ctx context.Context, principal *models.Principal, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error)
	GetPatient(ctx context.Context, principal *models.Principal, patientProfileID string) (*responses.PatientProfile, error)
	ListMyDoctors(ctx context.Context, principal *models.Principal) ([]responses.DoctorProfile, error)
	AddDoctor(ctx context.Context, principal *models.Principal, request *requests.AddDoctor) error
	RemoveDoctor(ctx context.Context, principal *models.Principal, doctorProfileID string) error
}
