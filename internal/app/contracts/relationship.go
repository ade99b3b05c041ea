package contracts

import (
	"context"
	"neuroshield-service/internal/app/models"
)

// RelationshipStore owns the patient_doctors association. ExistsActive is
// the single lookup the access gate depends on; it must hit the store on
// every call so a revocation is visible on the very next request.
type RelationshipStore interface {
	ExistsActive(ctx context.Context, patientProfileID, doctorProfileID string) (bool, error)

	// Insert creates an active link, reactivating a previously revoked row.
	// An already-active link fails with ErrRelationshipAlreadyExists.
	Insert(ctx context.Context, patientProfileID, doctorProfileID string) error

	// Revoke flips an active link to revoked. A missing or already revoked
	// link fails with ErrDoctorNotLinked.
	Revoke(ctx context.Context, patientProfileID, doctorProfileID string) error

	ListDoctorsForPatient(ctx context.Context, patientProfileID string) ([]models.DoctorProfile, error)
	ListPatientsForDoctor(ctx context.Context, doctorProfileID string) ([]models.PatientProfile, error)
}
