package doctors

import (
	"context"
	"errors"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/dto/responses"
	"neuroshield-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	ProfileStore      contracts.ProfileStore
	RelationshipStore contracts.RelationshipStore
	Log               *zap.Logger
}

var (
	doctorUsecaseInstance DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	profileStore contracts.ProfileStore,
	relationshipStore contracts.RelationshipStore,
	logger *zap.Logger,
) DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			ProfileStore:      profileStore,
			RelationshipStore: relationshipStore,
			Log:               logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) GetMyProfile(ctx context.Context, principal *models.Principal) (*responses.DoctorProfile, error) {
	doctor, err := uc.requireDoctor(ctx, principal)
	if err != nil {
		return nil, err
	}
	return buildDoctorProfileResponse(doctor), nil
}

func (uc *doctorUsecase) UpdateMyProfile(ctx context.Context, principal *models.Principal, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error) {
	doctor, err := uc.requireDoctor(ctx, principal)
	if err != nil {
		return nil, err
	}

	if request.FullName != "" {
		doctor.FullName = request.FullName
	}
	if request.Specialization != "" {
		doctor.Specialization = request.Specialization
	}
	if request.Hospital != "" {
		doctor.Hospital = request.Hospital
	}

	if err := uc.ProfileStore.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}

	return buildDoctorProfileResponse(doctor), nil
}

func (uc *doctorUsecase) ListMyPatients(ctx context.Context, principal *models.Principal) ([]responses.PatientProfile, error) {
	if _, err := uc.requireDoctor(ctx, principal); err != nil {
		return nil, err
	}

	patients, err := uc.RelationshipStore.ListPatientsForDoctor(ctx, principal.ProfileID)
	if err != nil {
		return nil, err
	}

	results := make([]responses.PatientProfile, 0, len(patients))
	for i := range patients {
		results = append(results, responses.PatientProfile{
			ID:             patients[i].ID,
			FullName:       patients[i].FullName,
			Email:          patients[i].Email,
			Age:            patients[i].Age,
			Gender:         patients[i].Gender,
			BloodGroup:     patients[i].BloodGroup,
			MedicalHistory: patients[i].MedicalHistory,
		})
	}
	return results, nil
}

func (uc *doctorUsecase) requireDoctor(ctx context.Context, principal *models.Principal) (*models.DoctorProfile, error) {
	if principal.Role != models.RoleDoctor {
		return nil, exceptions.ErrAccessDenied(errors.New("principal is not a doctor"))
	}
	doctor, err := uc.ProfileStore.FindDoctorByID(ctx, principal.ProfileID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrAccessDenied(errors.New("doctor profile not found for principal"))
	}
	return doctor, nil
}

func buildDoctorProfileResponse(doctor *models.DoctorProfile) *responses.DoctorProfile {
	return &responses.DoctorProfile{
		ID:             doctor.ID,
		FullName:       doctor.FullName,
		Email:          doctor.Email,
		Specialization: doctor.Specialization,
		Hospital:       doctor.Hospital,
	}
}
