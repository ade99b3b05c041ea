package records

import (
	"bytes"
	"context"
	"encoding/base64"
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

type recordUsecase struct {
	RecordStore    contracts.MedicalRecordStore
	ObjectStorage  contracts.ObjectStorage
	AccessGate     contracts.AccessGate
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	recordUsecaseInstance RecordUsecase
	onceRecordUsecase     sync.Once
)

func NewRecordUsecase(
	recordStore contracts.MedicalRecordStore,
	objectStorage contracts.ObjectStorage,
	accessGate contracts.AccessGate,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) RecordUsecase {
	onceRecordUsecase.Do(func() {
		recordUsecaseInstance = &recordUsecase{
			RecordStore:    recordStore,
			ObjectStorage:  objectStorage,
			AccessGate:     accessGate,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return recordUsecaseInstance
}

func (uc *recordUsecase) ListRecords(ctx context.Context, principal *models.Principal, patientProfileID string) ([]responses.MedicalRecord, error) {
	target := models.Target{PatientProfileID: patientProfileID}
	if err := uc.AccessGate.Authorize(ctx, principal, models.ActionReadMedicalRecord, target); err != nil {
		return nil, err
	}

	records, err := uc.RecordStore.ListByPatient(ctx, patientProfileID)
	if err != nil {
		return nil, err
	}

	results := make([]responses.MedicalRecord, 0, len(records))
	for i := range records {
		results = append(results, *uc.buildRecordResponse(ctx, &records[i]))
	}
	return results, nil
}

func (uc *recordUsecase) UploadRecord(ctx context.Context, principal *models.Principal, patientProfileID string, request *requests.UploadRecord) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordUsecase.UploadRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	target := models.Target{PatientProfileID: patientProfileID}
	if err := uc.AccessGate.Authorize(ctx, principal, models.ActionWriteMedicalRecord, target); err != nil {
		return nil, err
	}

	record := &models.MedicalRecord{
		ID:                 uuid.NewString(),
		PatientProfileID:   patientProfileID,
		RecordType:         request.RecordType,
		Title:              request.Title,
		Description:        request.Description,
		RecordDate:         request.RecordDate,
		VerificationStatus: constvars.VerificationStatusPending,
		CreatedAt:          time.Now().UTC(),
	}

	if request.FileContentBase64 != "" {
		content, err := base64.StdEncoding.DecodeString(request.FileContentBase64)
		if err != nil {
			return nil, exceptions.ErrInputValidation(errors.New("file content is not valid base64"))
		}

		contentType := request.FileType
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}

		objectName := fmt.Sprintf("%s/%s/%s", patientProfileID, record.ID, request.FileName)
		err = uc.ObjectStorage.Upload(ctx, objectName, bytes.NewReader(content), int64(len(content)), contentType)
		if err != nil {
			return nil, err
		}

		record.ObjectName = objectName
		record.FileType = contentType
		record.FileSize = int64(len(content))
	}

	if err := uc.RecordStore.Insert(ctx, record); err != nil {
		return nil, err
	}

	return uc.buildRecordResponse(ctx, record), nil
}

func (uc *recordUsecase) UpdateRecord(ctx context.Context, principal *models.Principal, recordID string, request *requests.UpdateRecord) (*responses.MedicalRecord, error) {
	record, err := uc.loadGatedRecord(ctx, principal, recordID, models.ActionWriteMedicalRecord)
	if err != nil {
		return nil, err
	}

	if request.RecordType != "" {
		record.RecordType = request.RecordType
	}
	if request.Title != "" {
		record.Title = request.Title
	}
	if request.Description != "" {
		record.Description = request.Description
	}
	if request.RecordDate != "" {
		record.RecordDate = request.RecordDate
	}

	if err := uc.RecordStore.Update(ctx, record); err != nil {
		return nil, err
	}

	return uc.buildRecordResponse(ctx, record), nil
}

func (uc *recordUsecase) DeleteRecord(ctx context.Context, principal *models.Principal, recordID string) error {
	record, err := uc.loadGatedRecord(ctx, principal, recordID, models.ActionWriteMedicalRecord)
	if err != nil {
		return err
	}

	if record.ObjectName != "" {
		if err := uc.ObjectStorage.Remove(ctx, record.ObjectName); err != nil {
			// The row is the source of truth; an orphaned object is cleaned
			// up separately.
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			uc.Log.Error("recordUsecase.DeleteRecord failed to remove stored object",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	return uc.RecordStore.Delete(ctx, recordID)
}

func (uc *recordUsecase) VerifyRecord(ctx context.Context, principal *models.Principal, recordID string, request *requests.VerifyRecord) (*responses.RecordVerification, error) {
	switch request.Status {
	case constvars.VerificationStatusVerified,
		constvars.VerificationStatusRejected,
		constvars.VerificationStatusNeedsMoreInfo:
	default:
		return nil, exceptions.ErrInputValidation(errors.New("unknown verification status"))
	}

	record, err := uc.loadGatedRecord(ctx, principal, recordID, models.ActionVerifyMedicalRecord)
	if err != nil {
		return nil, err
	}

	// Admin verifications carry no doctor attribution; only doctor profile
	// ids may land in the doctor_profile_id column.
	doctorProfileID := ""
	if principal.Role == models.RoleDoctor {
		doctorProfileID = principal.ProfileID
	}

	verification := &models.RecordVerification{
		ID:              uuid.NewString(),
		MedicalRecordID: record.ID,
		DoctorProfileID: doctorProfileID,
		Status:          request.Status,
		Notes:           request.Notes,
		RequestedInfo:   request.RequestedInfo,
		VerifiedAt:      time.Now().UTC(),
	}

	if err := uc.RecordStore.UpsertVerification(ctx, verification); err != nil {
		return nil, err
	}
	if err := uc.RecordStore.SetVerificationStatus(ctx, record.ID, request.Status, principal.ProfileID, request.Notes); err != nil {
		return nil, err
	}

	return &responses.RecordVerification{
		ID:              verification.ID,
		MedicalRecordID: verification.MedicalRecordID,
		DoctorProfileID: verification.DoctorProfileID,
		Status:          verification.Status,
		Notes:           verification.Notes,
		RequestedInfo:   verification.RequestedInfo,
	}, nil
}

// loadGatedRecord fetches a record and authorizes the action against its
// owning patient. A missing record produces the same denial as a failed
// authorization so record ids cannot be probed.
func (uc *recordUsecase) loadGatedRecord(ctx context.Context, principal *models.Principal, recordID string, action models.Action) (*models.MedicalRecord, error) {
	record, err := uc.RecordStore.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrAccessDenied(errors.New("medical record does not exist"))
	}

	target := models.Target{PatientProfileID: record.PatientProfileID}
	if err := uc.AccessGate.Authorize(ctx, principal, action, target); err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *recordUsecase) buildRecordResponse(ctx context.Context, record *models.MedicalRecord) *responses.MedicalRecord {
	response := &responses.MedicalRecord{
		ID:                 record.ID,
		PatientProfileID:   record.PatientProfileID,
		RecordType:         record.RecordType,
		Title:              record.Title,
		Description:        record.Description,
		FileType:           record.FileType,
		FileSize:           record.FileSize,
		RecordDate:         record.RecordDate,
		VerificationStatus: record.VerificationStatus,
		VerifiedBy:         record.VerifiedBy,
		DoctorNotes:        record.DoctorNotes,
	}

	if record.ObjectName != "" {
		expiry := time.Duration(uc.InternalConfig.Minio.PresignedExpiryInHours) * time.Hour
		fileURL, err := uc.ObjectStorage.PresignedURL(ctx, record.ObjectName, expiry)
		if err != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			uc.Log.Error("recordUsecase failed to presign record object",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else {
			response.FileURL = fileURL
		}
	}

	return response
}
