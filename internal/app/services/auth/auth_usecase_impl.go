package auth

import (
	"context"
	"errors"
	"fmt"
	"neuroshield-service/internal/app/config"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/dto/responses"
	"neuroshield-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	IdentityProvider contracts.IdentityProvider
	ProfileStore     contracts.ProfileStore
	TokenService     contracts.TokenService
	SessionResolver  contracts.SessionResolver
	MailQueue        contracts.MailQueue
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	authUsecaseInstance AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	identityProvider contracts.IdentityProvider,
	profileStore contracts.ProfileStore,
	tokenService contracts.TokenService,
	sessionResolver contracts.SessionResolver,
	mailQueue contracts.MailQueue,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			IdentityProvider: identityProvider,
			ProfileStore:     profileStore,
			TokenService:     tokenService,
			SessionResolver:  sessionResolver,
			MailQueue:        mailQueue,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	role := request.Role
	if role == "" {
		role = constvars.RolePatient
	}
	if role != constvars.RolePatient && role != constvars.RoleDoctor && role != constvars.RoleAdmin {
		return nil, "", exceptions.ErrInvalidRoleType(errors.New("role is not available for signup"))
	}

	account, err := uc.IdentityProvider.Signup(ctx, &contracts.SignupAccountInput{
		Name:          request.Name,
		Email:         request.Email,
		Password:      request.Password,
		RequestedRole: role,
	})
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	var profile interface{}
	var profileID string
	switch role {
	case constvars.RoleDoctor:
		doctor := &models.DoctorProfile{
			ID:             uuid.NewString(),
			SubjectID:      account.SubjectID,
			FullName:       request.Name,
			Email:          account.Email,
			Specialization: request.Specialization,
			Hospital:       request.Hospital,
			CreatedAt:      now,
		}
		if err := uc.ProfileStore.CreateDoctor(ctx, doctor); err != nil {
			return nil, "", err
		}
		profileID = doctor.ID
		profile = buildDoctorProfileResponse(doctor)
	case constvars.RoleAdmin:
		admin := &models.AdminProfile{
			ID:        uuid.NewString(),
			SubjectID: account.SubjectID,
			FullName:  request.Name,
			Email:     account.Email,
			CreatedAt: now,
		}
		if err := uc.ProfileStore.CreateAdmin(ctx, admin); err != nil {
			return nil, "", err
		}
		profileID = admin.ID
		profile = buildAdminProfileResponse(admin)
	default:
		patient := &models.PatientProfile{
			ID:         uuid.NewString(),
			SubjectID:  account.SubjectID,
			FullName:   request.Name,
			Email:      account.Email,
			Age:        request.Age,
			Gender:     request.Gender,
			BloodGroup: request.BloodGroup,
			CreatedAt:  now,
		}
		if err := uc.ProfileStore.CreatePatient(ctx, patient); err != nil {
			return nil, "", err
		}
		profileID = patient.ID
		profile = buildPatientProfileResponse(patient)
	}

	token, err := uc.TokenService.Issue(ctx, account.SubjectID)
	if err != nil {
		return nil, "", err
	}

	uc.queueWelcomeEmail(ctx, account.Email, account.Name)

	response := &responses.Signup{
		User: &responses.UserContext{
			ID:      profileID,
			Email:   account.Email,
			Name:    account.Name,
			Role:    role,
			Profile: profile,
		},
	}
	return response, token, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	account, err := uc.IdentityProvider.VerifyCredentials(ctx, request.Email, request.Password)
	if err != nil {
		return nil, "", err
	}

	principal, err := uc.SessionResolver.Resolve(ctx, account.SubjectID)
	if err != nil {
		return nil, "", err
	}

	token, err := uc.TokenService.Issue(ctx, account.SubjectID)
	if err != nil {
		return nil, "", err
	}

	user, err := uc.buildUserContext(ctx, principal)
	if err != nil {
		return nil, "", err
	}

	return &responses.Login{User: user}, token, nil
}

func (uc *authUsecase) Logout(ctx context.Context, token string) error {
	return uc.TokenService.Revoke(ctx, token)
}

func (uc *authUsecase) Dashboard(ctx context.Context, principal *models.Principal) (*responses.Dashboard, error) {
	user, err := uc.buildUserContext(ctx, principal)
	if err != nil {
		return nil, err
	}
	return &responses.Dashboard{User: user}, nil
}

// buildUserContext attaches the role-specific profile payload. A missing
// profile row here means the subject lost its role between resolution and
// now; treat it as the uniform denial.
func (uc *authUsecase) buildUserContext(ctx context.Context, principal *models.Principal) (*responses.UserContext, error) {
	user := &responses.UserContext{
		ID:    principal.ProfileID,
		Email: principal.Email,
		Name:  principal.DisplayName,
		Role:  string(principal.Role),
	}

	switch principal.Role {
	case models.RolePatient:
		patient, err := uc.ProfileStore.FindPatientByID(ctx, principal.ProfileID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, exceptions.ErrProfileNotFound(errors.New("patient profile row disappeared"))
		}
		user.Profile = buildPatientProfileResponse(patient)
	case models.RoleDoctor:
		doctor, err := uc.ProfileStore.FindDoctorByID(ctx, principal.ProfileID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, exceptions.ErrProfileNotFound(errors.New("doctor profile row disappeared"))
		}
		user.Profile = buildDoctorProfileResponse(doctor)
	case models.RoleAdmin:
		admin, err := uc.ProfileStore.FindAdminBySubject(ctx, principal.SubjectID)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, exceptions.ErrProfileNotFound(errors.New("admin profile row disappeared"))
		}
		user.Profile = buildAdminProfileResponse(admin)
	}

	return user, nil
}

func (uc *authUsecase) queueWelcomeEmail(ctx context.Context, email, name string) {
	if !uc.InternalConfig.Mailer.PublishEmails {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	payload := &requests.EmailPayload{
		To:      email,
		Subject: "Welcome to NeuroShield",
		Body:    fmt.Sprintf("Hi %s, your account is ready.", name),
	}
	if err := uc.MailQueue.Publish(ctx, payload); err != nil {
		// Signup still succeeds when the welcome mail cannot be queued.
		uc.Log.Error("authUsecase.Signup failed to queue welcome email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
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

func buildAdminProfileResponse(admin *models.AdminProfile) *responses.AdminProfile {
	return &responses.AdminProfile{
		ID:       admin.ID,
		FullName: admin.FullName,
		Email:    admin.Email,
	}
}
