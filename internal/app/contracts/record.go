package contracts

import (
	"context"
	"neuroshield-service/internal/app/models"
)

type MedicalRecordStore interface {
	FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientProfileID string) ([]models.MedicalRecord, error)
	Insert(ctx context.Context, record *models.MedicalRecord) error
	Update(ctx context.Context, record *models.MedicalRecord) error
	Delete(ctx context.Context, recordID string) error

	// UpsertVerification writes one doctor's review of a record, replacing
	// any previous review by the same doctor.
	UpsertVerification(ctx context.Context, verification *models.RecordVerification) error
	SetVerificationStatus(ctx context.Context, recordID, status, verifiedBy, notes string) error
}
