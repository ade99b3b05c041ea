package records

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"neuroshield-service/internal/app/config"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/app/services/accessgate"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRecordStore struct {
	records       map[string]*models.MedicalRecord
	verifications map[string]*models.RecordVerification
}

func newMemoryRecordStore() *memoryRecordStore {
	return &memoryRecordStore{
		records:       make(map[string]*models.MedicalRecord),
		verifications: make(map[string]*models.RecordVerification),
	}
}

func (s *memoryRecordStore) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	return s.records[recordID], nil
}

func (s *memoryRecordStore) ListByPatient(ctx context.Context, patientProfileID string) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	for _, r := range s.records {
		if r.PatientProfileID == patientProfileID {
			records = append(records, *r)
		}
	}
	return records, nil
}

func (s *memoryRecordStore) Insert(ctx context.Context, record *models.MedicalRecord) error {
	s.records[record.ID] = record
	return nil
}

func (s *memoryRecordStore) Update(ctx context.Context, record *models.MedicalRecord) error {
	s.records[record.ID] = record
	return nil
}

func (s *memoryRecordStore) Delete(ctx context.Context, recordID string) error {
	delete(s.records, recordID)
	return nil
}

func (s *memoryRecordStore) UpsertVerification(ctx context.Context, verification *models.RecordVerification) error {
	s.verifications[verification.MedicalRecordID+"|"+verification.DoctorProfileID] = verification
	return nil
}

func (s *memoryRecordStore) SetVerificationStatus(ctx context.Context, recordID, status, verifiedBy, notes string) error {
	record := s.records[recordID]
	if record == nil {
		return nil
	}
	record.VerificationStatus = status
	record.VerifiedBy = verifiedBy
	record.DoctorNotes = notes
	return nil
}

type memoryObjectStorage struct {
	objects   map[string][]byte
	removeErr error
}

func newMemoryObjectStorage() *memoryObjectStorage {
	return &memoryObjectStorage{objects: make(map[string][]byte)}
}

func (s *memoryObjectStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	content, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectName] = content
	return nil
}

func (s *memoryObjectStorage) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	return "https://storage.test/" + objectName, nil
}

func (s *memoryObjectStorage) Remove(ctx context.Context, objectName string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.objects, objectName)
	return nil
}

type relationshipSet struct {
	active map[string]bool
}

func (s *relationshipSet) ExistsActive(ctx context.Context, patientProfileID, doctorProfileID string) (bool, error) {
	return s.active[patientProfileID+"|"+doctorProfileID], nil
}

func (s *relationshipSet) Insert(ctx context.Context, patientProfileID, doctorProfileID string) error {
	s.active[patientProfileID+"|"+doctorProfileID] = true
	return nil
}

func (s *relationshipSet) Revoke(ctx context.Context, patientProfileID, doctorProfileID string) error {
	delete(s.active, patientProfileID+"|"+doctorProfileID)
	return nil
}

func (s *relationshipSet) ListDoctorsForPatient(ctx context.Context, patientProfileID string) ([]models.DoctorProfile, error) {
	return nil, nil
}

func (s *relationshipSet) ListPatientsForDoctor(ctx context.Context, doctorProfileID string) ([]models.PatientProfile, error) {
	return nil, nil
}

type recordFixture struct {
	usecase       *recordUsecase
	recordStore   *memoryRecordStore
	storage       *memoryObjectStorage
	relationships *relationshipSet
}

func newRecordFixture() *recordFixture {
	recordStore := newMemoryRecordStore()
	storage := newMemoryObjectStorage()
	relationships := &relationshipSet{active: make(map[string]bool)}
	logger := zap.NewNop()

	return &recordFixture{
		usecase: &recordUsecase{
			RecordStore:   recordStore,
			ObjectStorage: storage,
			AccessGate:    accessgate.NewAccessGate(relationships, logger),
			InternalConfig: &config.InternalConfig{
				Minio: config.Minio{BucketName: "neuroshield-records", PresignedExpiryInHours: 1},
			},
			Log: logger,
		},
		recordStore:   recordStore,
		storage:       storage,
		relationships: relationships,
	}
}

func ownerPrincipal() *models.Principal {
	return &models.Principal{SubjectID: "sub-p1", Role: models.RolePatient, ProfileID: "patient-1"}
}

func doctorPrincipal() *models.Principal {
	return &models.Principal{SubjectID: "sub-d1", Role: models.RoleDoctor, ProfileID: "doctor-1"}
}

func requireDenied(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientNotAuthorized, customErr.ClientMessage)
}

func TestRecordUsecase_UploadRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores Record With Pending Status", func(t *testing.T) {
		fx := newRecordFixture()
		response, err := fx.usecase.UploadRecord(ctx, ownerPrincipal(), "patient-1", &requests.UploadRecord{
			Title:             "MRI scan",
			RecordType:        "imaging",
			FileName:          "scan.pdf",
			FileType:          "application/pdf",
			FileContentBase64: base64.StdEncoding.EncodeToString([]byte("pdf-bytes")),
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.VerificationStatusPending, response.VerificationStatus)
		assert.NotEmpty(t, response.FileURL)
		assert.Len(t, fx.storage.objects, 1)
		assert.Len(t, fx.recordStore.records, 1)
	})

	t.Run("Record Without File Skips Storage", func(t *testing.T) {
		fx := newRecordFixture()
		response, err := fx.usecase.UploadRecord(ctx, ownerPrincipal(), "patient-1", &requests.UploadRecord{Title: "Blood pressure log"})
		require.NoError(t, err)
		assert.Empty(t, response.FileURL)
		assert.Empty(t, fx.storage.objects)
	})

	t.Run("Bad Base64 Is Rejected", func(t *testing.T) {
		fx := newRecordFixture()
		_, err := fx.usecase.UploadRecord(ctx, ownerPrincipal(), "patient-1", &requests.UploadRecord{
			Title:             "MRI scan",
			FileName:          "scan.pdf",
			FileContentBase64: "%%%not-base64%%%",
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, fx.recordStore.records)
	})

	t.Run("Other Patient Denied", func(t *testing.T) {
		fx := newRecordFixture()
		other := &models.Principal{SubjectID: "sub-p2", Role: models.RolePatient, ProfileID: "patient-2"}
		_, err := fx.usecase.UploadRecord(ctx, other, "patient-1", &requests.UploadRecord{Title: "MRI scan"})
		requireDenied(t, err)
	})

	t.Run("Linked Doctor Uploads For Their Patient", func(t *testing.T) {
		fx := newRecordFixture()
		fx.relationships.active["patient-1|doctor-1"] = true
		response, err := fx.usecase.UploadRecord(ctx, doctorPrincipal(), "patient-1", &requests.UploadRecord{Title: "MRI scan"})
		require.NoError(t, err)
		assert.Equal(t, "patient-1", response.PatientProfileID)
		assert.Len(t, fx.recordStore.records, 1)
	})

	t.Run("Unlinked Doctor Cannot Upload", func(t *testing.T) {
		fx := newRecordFixture()
		_, err := fx.usecase.UploadRecord(ctx, doctorPrincipal(), "patient-1", &requests.UploadRecord{Title: "MRI scan"})
		requireDenied(t, err)
	})
}

func TestRecordUsecase_VerifyRecord(t *testing.T) {
	ctx := context.Background()

	seed := func(fx *recordFixture) *models.MedicalRecord {
		record := &models.MedicalRecord{
			ID:                 "record-1",
			PatientProfileID:   "patient-1",
			Title:              "MRI scan",
			VerificationStatus: constvars.VerificationStatusPending,
		}
		fx.recordStore.records[record.ID] = record
		return record
	}

	t.Run("Linked Doctor Verifies", func(t *testing.T) {
		fx := newRecordFixture()
		record := seed(fx)
		fx.relationships.active["patient-1|doctor-1"] = true

		response, err := fx.usecase.VerifyRecord(ctx, doctorPrincipal(), record.ID, &requests.VerifyRecord{
			Status: constvars.VerificationStatusVerified,
			Notes:  "Readings look consistent",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.VerificationStatusVerified, response.Status)
		assert.Equal(t, constvars.VerificationStatusVerified, record.VerificationStatus)
		assert.Equal(t, "doctor-1", record.VerifiedBy)
	})

	t.Run("Admin Verifies Without Doctor Attribution", func(t *testing.T) {
		fx := newRecordFixture()
		record := seed(fx)
		admin := &models.Principal{SubjectID: "sub-a1", Role: models.RoleAdmin, ProfileID: "admin-1"}

		response, err := fx.usecase.VerifyRecord(ctx, admin, record.ID, &requests.VerifyRecord{
			Status: constvars.VerificationStatusRejected,
			Notes:  "Document is illegible",
		})
		require.NoError(t, err)
		assert.Empty(t, response.DoctorProfileID, "admins must not land in the doctor column")
		assert.Equal(t, constvars.VerificationStatusRejected, record.VerificationStatus)
		assert.Equal(t, "admin-1", record.VerifiedBy)

		stored := fx.recordStore.verifications[record.ID+"|"]
		require.NotNil(t, stored)
		assert.Empty(t, stored.DoctorProfileID)
	})

	t.Run("Unlinked Doctor Denied", func(t *testing.T) {
		fx := newRecordFixture()
		record := seed(fx)
		_, err := fx.usecase.VerifyRecord(ctx, doctorPrincipal(), record.ID, &requests.VerifyRecord{Status: constvars.VerificationStatusVerified})
		requireDenied(t, err)
		assert.Equal(t, constvars.VerificationStatusPending, record.VerificationStatus)
	})

	t.Run("Patient Cannot Verify Own Record", func(t *testing.T) {
		fx := newRecordFixture()
		record := seed(fx)
		_, err := fx.usecase.VerifyRecord(ctx, ownerPrincipal(), record.ID, &requests.VerifyRecord{Status: constvars.VerificationStatusVerified})
		requireDenied(t, err)
	})

	t.Run("Unknown Status Rejected", func(t *testing.T) {
		fx := newRecordFixture()
		record := seed(fx)
		fx.relationships.active["patient-1|doctor-1"] = true

		_, err := fx.usecase.VerifyRecord(ctx, doctorPrincipal(), record.ID, &requests.VerifyRecord{Status: "approved"})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Missing Record Looks Like A Denial", func(t *testing.T) {
		fx := newRecordFixture()
		fx.relationships.active["patient-1|doctor-1"] = true
		_, err := fx.usecase.VerifyRecord(ctx, doctorPrincipal(), "record-unknown", &requests.VerifyRecord{Status: constvars.VerificationStatusVerified})
		requireDenied(t, err)
	})

	t.Run("Revoked Relationship Blocks Verification", func(t *testing.T) {
		fx := newRecordFixture()
		record := seed(fx)
		fx.relationships.active["patient-1|doctor-1"] = true

		_, err := fx.usecase.VerifyRecord(ctx, doctorPrincipal(), record.ID, &requests.VerifyRecord{Status: constvars.VerificationStatusVerified})
		require.NoError(t, err)

		delete(fx.relationships.active, "patient-1|doctor-1")
		_, err = fx.usecase.VerifyRecord(ctx, doctorPrincipal(), record.ID, &requests.VerifyRecord{Status: constvars.VerificationStatusRejected})
		requireDenied(t, err)
	})
}

func TestRecordUsecase_DeleteRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes Row And Object", func(t *testing.T) {
		fx := newRecordFixture()
		fx.recordStore.records["record-1"] = &models.MedicalRecord{
			ID:               "record-1",
			PatientProfileID: "patient-1",
			ObjectName:       "patient-1/record-1/scan.pdf",
		}
		fx.storage.objects["patient-1/record-1/scan.pdf"] = []byte("pdf-bytes")

		require.NoError(t, fx.usecase.DeleteRecord(ctx, ownerPrincipal(), "record-1"))
		assert.Empty(t, fx.recordStore.records)
		assert.Empty(t, fx.storage.objects)
	})

	t.Run("Storage Failure Still Deletes Row", func(t *testing.T) {
		fx := newRecordFixture()
		fx.recordStore.records["record-1"] = &models.MedicalRecord{
			ID:               "record-1",
			PatientProfileID: "patient-1",
			ObjectName:       "patient-1/record-1/scan.pdf",
		}
		fx.storage.removeErr = errors.New("bucket unreachable")

		require.NoError(t, fx.usecase.DeleteRecord(ctx, ownerPrincipal(), "record-1"))
		assert.Empty(t, fx.recordStore.records)
	})
}
