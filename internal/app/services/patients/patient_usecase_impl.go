package patients

import (
	"context"
	"errors"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/dto/responses"
	"neuroshield-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type patientUsecase struct {
	ProfileStore      contracts.ProfileStore
	RelationshipStore contracts.RelationshipStore
	AccessGate        contracts.AccessGate
	Log               *zap.Logger
}

var (
	patientUsecaseInstance PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	profileStore contracts.ProfileStore,
	relationshipStore contracts.RelationshipStore,
	accessGate contracts.AccessGate,
	logger *zap.Logger,
) PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			ProfileStore:      profileStore,
			RelationshipStore: relationshipStore,
			AccessGate:        accessGate,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) GetMyProfile(ctx context.Context, principal *models.Principal) (*responses.PatientProfile, error) {
	return uc.GetPatient(ctx, principal, principal.ProfileID)
}

func (uc *patientUsecase) UpdateMyProfile(ctx context.Context, principal *models.Principal, request *requests.UpdatePatientProfile) (*responses.PatientProfile, error) {
	target := models.Target{PatientProfileID: principal.ProfileID}
	if err := uc.AccessGate.Authorize(ctx, principal, models.ActionWritePatient, target); err != nil {
		return nil, err
	}

	patient, err := uc.ProfileStore.FindPatientByID(ctx, principal.ProfileID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrAccessDenied(errors.New("patient profile not found for principal"))
	}

	if request.FullName != "" {
		patient.FullName = request.FullName
	}
	if request.Age != 0 {
		patient.Age = request.Age
	}
	if request.Gender != "" {
		patient.Gender = request.Gender
	}
	if request.BloodGroup != "" {
		patient.BloodGroup = request.BloodGroup
	}
	if request.MedicalHistory != "" {
		patient.MedicalHistory = request.MedicalHistory
	}

	if err := uc.ProfileStore.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	return buildPatientProfileResponse(patient), nil
}

func (uc *patientUsecase) GetPatient(ctx context.Context, principal *models.Principal, patientProfileID string) (*responses.PatientProfile, error) {
	target := models.Target{PatientProfileID: patientProfileID}
	if err := uc.AccessGate.Authorize(ctx, principal, models.ActionReadPatient, target); err != nil {
		return nil, err
	}

	patient, err := uc.ProfileStore.FindPatientByID(ctx, patientProfileID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		// Same denial as an unauthorized read so callers cannot probe ids.
		return nil, exceptions.ErrAccessDenied(errors.New("patient profile does not exist"))
	}

	return buildPatientProfileResponse(patient), nil
}

func (uc *patientUsecase) ListMyDoctors(ctx context.Context, principal *models.Principal) ([]responses.DoctorProfile, error) {
	target := models.Target{PatientProfileID: principal.ProfileID}
	if err := uc.AccessGate.Authorize(ctx, principal, models.ActionReadPatient, target); err != nil {
		return nil, err
	}

	doctors, err := uc.RelationshipStore.ListDoctorsForPatient(ctx, principal.ProfileID)
	if err != nil {
		return nil, err
	}

	results := make([]responses.DoctorProfile, 0, len(doctors))
	for i := range doctors {
		results = append(results, *buildDoctorProfileResponse(&doctors[i]))
	}
	return results, nil
}

func (uc *patientUsecase) AddDoctor(ctx context.Context, principal *models.Principal, request *requests.AddDoctor) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.AddDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	target := models.Target{PatientProfileID: principal.ProfileID}
	if err := uc.AccessGate.Authorize(ctx, principal, models.ActionCreateRelationship, target); err != nil {
		return err
	}

	doctor, err := uc.ProfileStore.FindDoctorByEmail(ctx, request.DoctorEmail)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(errors.New("no doctor profile for email"))
	}

	return uc.RelationshipStore.Insert(ctx, principal.ProfileID, doctor.ID)
}

func (uc *patientUsecase) RemoveDoctor(ctx context.Context, principal *models.Principal, doctorProfileID string) error {
	target := models.Target{PatientProfileID: principal.ProfileID}
	if err := uc.AccessGate.Authorize(ctx, principal, models.ActionDeleteRelationship, target); err != nil {
		return err
	}

	return uc.RelationshipStore.Revoke(ctx, principal.ProfileID, doctorProfileID)
}

func buildPatientProfileResponse(patient *models.PatientProfile) *responses.PatientProfile {
	return &responses.PatientProfile{
		ID:             patient.ID,
		FullName:       patient.FullName,
		Email:          patient.Email,
		Age:            patient.Age,
		Gender:         patient.Gender,
		BloodGroup:     patient.BloodGroup,
		MedicalHistory: patient.MedicalHistory,
	}
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
