package records

import (
	"context"
	"database/sql"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/exceptions"
	"neuroshield-service/internal/pkg/queries"
	"sync"

	"go.uber.org/zap"
)

type recordPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	recordPostgresRepositoryInstance contracts.MedicalRecordStore
	onceRecordPostgresRepository     sync.Once
)

func NewRecordPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.MedicalRecordStore {
	onceRecordPostgresRepository.Do(func() {
		instance := &recordPostgresRepository{
			DB:  db,
			Log: logger,
		}
		recordPostgresRepositoryInstance = instance
	})
	return recordPostgresRepositoryInstance
}

func (r *recordPostgresRepository) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.DB.QueryRowContext(ctx, queries.GetMedicalRecordByID, recordID).Scan(
		&record.ID,
		&record.PatientProfileID,
		&record.RecordType,
		&record.Title,
		&record.Description,
		&record.ObjectName,
		&record.FileType,
		&record.FileSize,
		&record.RecordDate,
		&record.VerificationStatus,
		&record.VerifiedBy,
		&record.DoctorNotes,
		&record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &record, nil
}

func (r *recordPostgresRepository) ListByPatient(ctx context.Context, patientProfileID string) ([]models.MedicalRecord, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetMedicalRecordsByPatient, patientProfileID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var results []models.MedicalRecord
	for rows.Next() {
		var record models.MedicalRecord
		if err := rows.Scan(
			&record.ID,
			&record.PatientProfileID,
			&record.RecordType,
			&record.Title,
			&record.Description,
			&record.ObjectName,
			&record.FileType,
			&record.FileSize,
			&record.RecordDate,
			&record.VerificationStatus,
			&record.VerifiedBy,
			&record.DoctorNotes,
			&record.CreatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return results, nil
}

func (r *recordPostgresRepository) Insert(ctx context.Context, record *models.MedicalRecord) error {
	_, err := r.DB.ExecContext(ctx, queries.InsertMedicalRecord,
		record.ID,
		record.PatientProfileID,
		record.RecordType,
		record.Title,
		record.Description,
		record.ObjectName,
		record.FileType,
		record.FileSize,
		record.RecordDate,
		record.VerificationStatus,
		record.CreatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *recordPostgresRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateMedicalRecord,
		record.RecordType,
		record.Title,
		record.Description,
		record.RecordDate,
		record.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *recordPostgresRepository) Delete(ctx context.Context, recordID string) error {
	_, err := r.DB.ExecContext(ctx, queries.DeleteMedicalRecord, recordID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func (r *recordPostgresRepository) UpsertVerification(ctx context.Context, verification *models.RecordVerification) error {
	_, err := r.DB.ExecContext(ctx, queries.UpsertRecordVerification,
		verification.ID,
		verification.MedicalRecordID,
		verification.DoctorProfileID,
		verification.Status,
		verification.Notes,
		verification.RequestedInfo,
		verification.VerifiedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *recordPostgresRepository) SetVerificationStatus(ctx context.Context, recordID, status, verifiedBy, notes string) error {
	_, err := r.DB.ExecContext(ctx, queries.SetMedicalRecordVerification, status, verifiedBy, notes, recordID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
