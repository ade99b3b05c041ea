package contracts

import (
	"context"
	"neuroshield-service/internal/app/models"
)

// ProfileStore reads and writes the three role-specific profile tables.
// Find* methods return (nil, nil) when no row matches.
type ProfileStore interface {
	// ResolveSubject maps a subject id to its single profile row across all
	// three tables in one query. Returns (nil, nil) when no table matches
	// and ErrAmbiguousSubject when more than one does.
	ResolveSubject(ctx context.Context, subjectID string) (*models.SubjectProfile, error)

	CreatePatient(ctx context.Context, patient *models.PatientProfile) error
	CreateDoctor(ctx context.Context, doctor *models.DoctorProfile) error
	CreateAdmin(ctx context.Context, admin *models.AdminProfile) error

	FindPatientByID(ctx context.Context, patientProfileID string) (*models.PatientProfile, error)
	FindDoctorByID(ctx context.Context, doctorProfileID string) (*models.DoctorProfile, error)
	FindDoctorByEmail(ctx context.Context, email string) (*models.DoctorProfile, error)
	FindAdminBySubject(ctx context.Context, subjectID string) (*models.AdminProfile, error)

	UpdatePatient(ctx context.Context, patient *models.PatientProfile) error
	UpdateDoctor(ctx context.Context, doctor *models.DoctorProfile) error
}
