package accessgate

import (
	"context"
	"errors"
	"fmt"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRelationshipStore struct {
	active map[string]bool
	calls  int
	err    error
}

func newFakeRelationshipStore() *fakeRelationshipStore {
	return &fakeRelationshipStore{active: make(map[string]bool)}
}

func (f *fakeRelationshipStore) link(patientProfileID, doctorProfileID string) {
	f.active[patientProfileID+"|"+doctorProfileID] = true
}

func (f *fakeRelationshipStore) unlink(patientProfileID, doctorProfileID string) {
	delete(f.active, patientProfileID+"|"+doctorProfileID)
}

func (f *fakeRelationshipStore) ExistsActive(ctx context.Context, patientProfileID, doctorProfileID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.active[patientProfileID+"|"+doctorProfileID], nil
}

func (f *fakeRelationshipStore) Insert(ctx context.Context, patientProfileID, doctorProfileID string) error {
	f.link(patientProfileID, doctorProfileID)
	return nil
}

func (f *fakeRelationshipStore) Revoke(ctx context.Context, patientProfileID, doctorProfileID string) error {
	f.unlink(patientProfileID, doctorProfileID)
	return nil
}

func (f *fakeRelationshipStore) ListDoctorsForPatient(ctx context.Context, patientProfileID string) ([]models.DoctorProfile, error) {
	return nil, nil
}

func (f *fakeRelationshipStore) ListPatientsForDoctor(ctx context.Context, doctorProfileID string) ([]models.PatientProfile, error) {
	return nil, nil
}

func assertDenied(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "denial should be a CustomError")
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientNotAuthorized, customErr.ClientMessage)
}

func TestAccessGate_Authorize(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	store.link("patient-1", "doctor-1")
	gate := NewAccessGate(store, zap.NewNop())

	patient := &models.Principal{SubjectID: "sub-p1", Role: models.RolePatient, ProfileID: "patient-1"}
	otherPatient := &models.Principal{SubjectID: "sub-p2", Role: models.RolePatient, ProfileID: "patient-2"}
	doctor := &models.Principal{SubjectID: "sub-d1", Role: models.RoleDoctor, ProfileID: "doctor-1"}
	strangerDoctor := &models.Principal{SubjectID: "sub-d2", Role: models.RoleDoctor, ProfileID: "doctor-2"}
	admin := &models.Principal{SubjectID: "sub-a1", Role: models.RoleAdmin, ProfileID: "admin-1"}

	ownData := models.Target{PatientProfileID: "patient-1"}

	t.Run("Missing Principal", func(t *testing.T) {
		assertDenied(t, gate.Authorize(ctx, nil, models.ActionReadPatient, ownData))
	})

	t.Run("Unknown Role", func(t *testing.T) {
		bogus := &models.Principal{SubjectID: "sub-x", Role: models.Role("superuser"), ProfileID: "x-1"}
		assertDenied(t, gate.Authorize(ctx, bogus, models.ActionReadPatient, ownData))
	})

	t.Run("Admin Allowed Everywhere", func(t *testing.T) {
		actions := []models.Action{
			models.ActionReadPatient,
			models.ActionWritePatient,
			models.ActionReadMedicalRecord,
			models.ActionWriteMedicalRecord,
			models.ActionVerifyMedicalRecord,
			models.ActionCreateRelationship,
			models.ActionDeleteRelationship,
			models.ActionCreateRecommendation,
		}
		for _, action := range actions {
			assert.NoError(t, gate.Authorize(ctx, admin, action, ownData), "admin should pass %s", action)
		}
	})

	t.Run("Patient Reads Own Data", func(t *testing.T) {
		assert.NoError(t, gate.Authorize(ctx, patient, models.ActionReadPatient, ownData))
		assert.NoError(t, gate.Authorize(ctx, patient, models.ActionReadMedicalRecord, ownData))
	})

	t.Run("Patient Denied Other Patient Data", func(t *testing.T) {
		assertDenied(t, gate.Authorize(ctx, otherPatient, models.ActionReadPatient, ownData))
		assertDenied(t, gate.Authorize(ctx, otherPatient, models.ActionReadMedicalRecord, ownData))
		assertDenied(t, gate.Authorize(ctx, otherPatient, models.ActionWritePatient, ownData))
	})

	t.Run("Patient Writes Own Data Only", func(t *testing.T) {
		assert.NoError(t, gate.Authorize(ctx, patient, models.ActionWritePatient, ownData))
		assert.NoError(t, gate.Authorize(ctx, patient, models.ActionWriteMedicalRecord, ownData))
	})

	t.Run("Doctor Reads Linked Patient", func(t *testing.T) {
		assert.NoError(t, gate.Authorize(ctx, doctor, models.ActionReadPatient, ownData))
		assert.NoError(t, gate.Authorize(ctx, doctor, models.ActionReadMedicalRecord, ownData))
	})

	t.Run("Doctor Denied Unlinked Patient", func(t *testing.T) {
		assertDenied(t, gate.Authorize(ctx, strangerDoctor, models.ActionReadPatient, ownData))
		assertDenied(t, gate.Authorize(ctx, strangerDoctor, models.ActionReadMedicalRecord, ownData))
	})

	t.Run("Doctor Never Edits Patient Profile", func(t *testing.T) {
		assertDenied(t, gate.Authorize(ctx, doctor, models.ActionWritePatient, ownData))
	})

	t.Run("Linked Doctor Writes Medical Records", func(t *testing.T) {
		assert.NoError(t, gate.Authorize(ctx, doctor, models.ActionWriteMedicalRecord, ownData))
		assertDenied(t, gate.Authorize(ctx, strangerDoctor, models.ActionWriteMedicalRecord, ownData))
	})

	t.Run("Verify Record Requires Linked Doctor", func(t *testing.T) {
		assert.NoError(t, gate.Authorize(ctx, doctor, models.ActionVerifyMedicalRecord, ownData))
		assertDenied(t, gate.Authorize(ctx, strangerDoctor, models.ActionVerifyMedicalRecord, ownData))
		assertDenied(t, gate.Authorize(ctx, patient, models.ActionVerifyMedicalRecord, ownData))
	})

	t.Run("Relationship Managed By Owning Patient", func(t *testing.T) {
		assert.NoError(t, gate.Authorize(ctx, patient, models.ActionCreateRelationship, ownData))
		assert.NoError(t, gate.Authorize(ctx, patient, models.ActionDeleteRelationship, ownData))
		assertDenied(t, gate.Authorize(ctx, otherPatient, models.ActionCreateRelationship, ownData))
		assertDenied(t, gate.Authorize(ctx, doctor, models.ActionCreateRelationship, ownData))
		assertDenied(t, gate.Authorize(ctx, doctor, models.ActionDeleteRelationship, ownData))
	})
}

func TestAccessGate_CreateRecommendation(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	store.link("patient-1", "doctor-1")
	gate := NewAccessGate(store, zap.NewNop())

	patient := &models.Principal{SubjectID: "sub-p1", Role: models.RolePatient, ProfileID: "patient-1"}
	doctor := &models.Principal{SubjectID: "sub-d1", Role: models.RoleDoctor, ProfileID: "doctor-1"}
	strangerDoctor := &models.Principal{SubjectID: "sub-d2", Role: models.RoleDoctor, ProfileID: "doctor-2"}

	t.Run("Linked Doctor Authors For Their Patient", func(t *testing.T) {
		target := models.Target{PatientProfileID: "patient-1", CreatorProfileID: "doctor-1"}
		assert.NoError(t, gate.Authorize(ctx, doctor, models.ActionCreateRecommendation, target))
	})

	t.Run("Doctor Cannot Author As Someone Else", func(t *testing.T) {
		target := models.Target{PatientProfileID: "patient-1", CreatorProfileID: "doctor-2"}
		assertDenied(t, gate.Authorize(ctx, doctor, models.ActionCreateRecommendation, target))
	})

	t.Run("Unlinked Doctor Denied", func(t *testing.T) {
		target := models.Target{PatientProfileID: "patient-1", CreatorProfileID: "doctor-2"}
		assertDenied(t, gate.Authorize(ctx, strangerDoctor, models.ActionCreateRecommendation, target))
	})

	t.Run("Patient Denied Attributed Recommendation", func(t *testing.T) {
		target := models.Target{PatientProfileID: "patient-1", CreatorProfileID: "doctor-1"}
		assertDenied(t, gate.Authorize(ctx, patient, models.ActionCreateRecommendation, target))
	})

	t.Run("Unattributed Falls Back To Read Visibility", func(t *testing.T) {
		target := models.Target{PatientProfileID: "patient-1"}
		assert.NoError(t, gate.Authorize(ctx, patient, models.ActionCreateRecommendation, target))
		assert.NoError(t, gate.Authorize(ctx, doctor, models.ActionCreateRecommendation, target))
		assertDenied(t, gate.Authorize(ctx, strangerDoctor, models.ActionCreateRecommendation, target))
	})
}

func TestAccessGate_RevocationVisibleImmediately(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	store.link("patient-1", "doctor-1")
	gate := NewAccessGate(store, zap.NewNop())

	doctor := &models.Principal{SubjectID: "sub-d1", Role: models.RoleDoctor, ProfileID: "doctor-1"}
	target := models.Target{PatientProfileID: "patient-1"}

	require.NoError(t, gate.Authorize(ctx, doctor, models.ActionReadMedicalRecord, target))

	store.unlink("patient-1", "doctor-1")
	assertDenied(t, gate.Authorize(ctx, doctor, models.ActionReadMedicalRecord, target))

	// Both decisions must have consulted the store; nothing is cached.
	assert.Equal(t, 2, store.calls)
}

func TestAccessGate_StoreErrorPropagates(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	store.err = fmt.Errorf("connection refused")
	gate := NewAccessGate(store, zap.NewNop())

	doctor := &models.Principal{SubjectID: "sub-d1", Role: models.RoleDoctor, ProfileID: "doctor-1"}
	err := gate.Authorize(ctx, doctor, models.ActionReadPatient, models.Target{PatientProfileID: "patient-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
