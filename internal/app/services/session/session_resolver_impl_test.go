package session

import (
	"context"
	"errors"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfileStore struct {
	profiles map[string]*models.SubjectProfile
	err      error
}

func (f *fakeProfileStore) ResolveSubject(ctx context.Context, subjectID string) (*models.SubjectProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[subjectID], nil
}

func (f *fakeProfileStore) CreatePatient(ctx context.Context, patient *models.PatientProfile) error {
	return nil
}
func (f *fakeProfileStore) CreateDoctor(ctx context.Context, doctor *models.DoctorProfile) error {
	return nil
}
func (f *fakeProfileStore) CreateAdmin(ctx context.Context, admin *models.AdminProfile) error {
	return nil
}
func (f *fakeProfileStore) FindPatientByID(ctx context.Context, patientProfileID string) (*models.PatientProfile, error) {
	return nil, nil
}
func (f *fakeProfileStore) FindDoctorByID(ctx context.Context, doctorProfileID string) (*models.DoctorProfile, error) {
	return nil, nil
}
func (f *fakeProfileStore) FindDoctorByEmail(ctx context.Context, email string) (*models.DoctorProfile, error) {
	return nil, nil
}
func (f *fakeProfileStore) FindAdminBySubject(ctx context.Context, subjectID string) (*models.AdminProfile, error) {
	return nil, nil
}
func (f *fakeProfileStore) UpdatePatient(ctx context.Context, patient *models.PatientProfile) error {
	return nil
}
func (f *fakeProfileStore) UpdateDoctor(ctx context.Context, doctor *models.DoctorProfile) error {
	return nil
}

func TestSessionResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Builds Principal From Profile Row", func(t *testing.T) {
		store := &fakeProfileStore{profiles: map[string]*models.SubjectProfile{
			"sub-1": {
				Role:        models.RoleDoctor,
				ProfileID:   "doctor-1",
				DisplayName: "Dr. Sarah Chen",
				Email:       "sarah@example.com",
			},
		}}
		resolver := NewSessionResolver(store, zap.NewNop())

		principal, err := resolver.Resolve(ctx, "sub-1")
		require.NoError(t, err)
		require.NotNil(t, principal)
		assert.Equal(t, "sub-1", principal.SubjectID)
		assert.Equal(t, models.RoleDoctor, principal.Role)
		assert.Equal(t, "doctor-1", principal.ProfileID)
		assert.Equal(t, "Dr. Sarah Chen", principal.DisplayName)
		assert.Equal(t, "sarah@example.com", principal.Email)
	})

	t.Run("Subject Without Profile Is Rejected", func(t *testing.T) {
		store := &fakeProfileStore{profiles: map[string]*models.SubjectProfile{}}
		resolver := NewSessionResolver(store, zap.NewNop())

		principal, err := resolver.Resolve(ctx, "sub-orphan")
		require.Error(t, err)
		assert.Nil(t, principal)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientNotAuthorized, customErr.ClientMessage)
	})

	t.Run("Ambiguous Subject Fails Closed", func(t *testing.T) {
		ambiguous := exceptions.ErrAmbiguousSubject(errors.New("two rows matched"))
		store := &fakeProfileStore{err: ambiguous}
		resolver := NewSessionResolver(store, zap.NewNop())

		principal, err := resolver.Resolve(ctx, "sub-dup")
		assert.Nil(t, principal)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}
