package profiles

import (
	"context"
	"database/sql"
	"errors"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/exceptions"
	"neuroshield-service/internal/pkg/queries"
	"sync"

	"go.uber.org/zap"
)

type profilePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	profilePostgresRepositoryInstance contracts.ProfileStore
	onceProfilePostgresRepository     sync.Once
)

func NewProfilePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ProfileStore {
	onceProfilePostgresRepository.Do(func() {
		instance := &profilePostgresRepository{
			DB:  db,
			Log: logger,
		}
		profilePostgresRepositoryInstance = instance
	})
	return profilePostgresRepositoryInstance
}

func (r *profilePostgresRepository) ResolveSubject(ctx context.Context, subjectID string) (*models.SubjectProfile, error) {
	rows, err := r.DB.QueryContext(ctx, queries.ResolveSubject, subjectID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var matches []models.SubjectProfile
	for rows.Next() {
		var roleName string
		var match models.SubjectProfile
		if err := rows.Scan(&roleName, &match.ProfileID, &match.DisplayName, &match.Email); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		match.Role = models.Role(roleName)
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return &matches[0], nil
	default:
		return nil, exceptions.ErrAmbiguousSubject(errors.New("subject id matches more than one profile table"))
	}
}

func (r *profilePostgresRepository) CreatePatient(ctx context.Context, patient *models.PatientProfile) error {
	_, err := r.DB.ExecContext(ctx, queries.InsertPatient,
		patient.ID,
		patient.SubjectID,
		patient.FullName,
		patient.Email,
		patient.Age,
		patient.Gender,
		patient.BloodGroup,
		patient.MedicalHistory,
		patient.CreatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *profilePostgresRepository) CreateDoctor(ctx context.Context, doctor *models.DoctorProfile) error {
	_, err := r.DB.ExecContext(ctx, queries.InsertDoctor,
		doctor.ID,
		doctor.SubjectID,
		doctor.FullName,
		doctor.Email,
		doctor.Specialization,
		doctor.Hospital,
		doctor.CreatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *profilePostgresRepository) CreateAdmin(ctx context.Context, admin *models.AdminProfile) error {
	_, err := r.DB.ExecContext(ctx, queries.InsertAdmin,
		admin.ID,
		admin.SubjectID,
		admin.FullName,
		admin.Email,
		admin.CreatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *profilePostgresRepository) FindPatientByID(ctx context.Context, patientProfileID string) (*models.PatientProfile, error) {
	return r.scanPatient(r.DB.QueryRowContext(ctx, queries.GetPatientByID, patientProfileID))
}

func (r *profilePostgresRepository) FindDoctorByID(ctx context.Context, doctorProfileID string) (*models.DoctorProfile, error) {
	return r.scanDoctor(r.DB.QueryRowContext(ctx, queries.GetDoctorByID, doctorProfileID))
}

func (r *profilePostgresRepository) FindDoctorByEmail(ctx context.Context, email string) (*models.DoctorProfile, error) {
	return r.scanDoctor(r.DB.QueryRowContext(ctx, queries.GetDoctorByEmail, email))
}

func (r *profilePostgresRepository) FindAdminBySubject(ctx context.Context, subjectID string) (*models.AdminProfile, error) {
	var admin models.AdminProfile
	err := r.DB.QueryRowContext(ctx, queries.GetAdminBySubjectID, subjectID).Scan(
		&admin.ID,
		&admin.SubjectID,
		&admin.FullName,
		&admin.Email,
		&admin.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &admin, nil
}

func (r *profilePostgresRepository) UpdatePatient(ctx context.Context, patient *models.PatientProfile) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdatePatient,
		patient.FullName,
		patient.Age,
		patient.Gender,
		patient.BloodGroup,
		patient.MedicalHistory,
		patient.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *profilePostgresRepository) UpdateDoctor(ctx context.Context, doctor *models.DoctorProfile) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateDoctor,
		doctor.FullName,
		doctor.Specialization,
		doctor.Hospital,
		doctor.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *profilePostgresRepository) scanPatient(row *sql.Row) (*models.PatientProfile, error) {
	var patient models.PatientProfile
	err := row.Scan(
		&patient.ID,
		&patient.SubjectID,
		&patient.FullName,
		&patient.Email,
		&patient.Age,
		&patient.Gender,
		&patient.BloodGroup,
		&patient.MedicalHistory,
		&patient.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &patient, nil
}

func (r *profilePostgresRepository) scanDoctor(row *sql.Row) (*models.DoctorProfile, error) {
	var doctor models.DoctorProfile
	err := row.Scan(
		&doctor.ID,
		&doctor.SubjectID,
		&doctor.FullName,
		&doctor.Email,
		&doctor.Specialization,
		&doctor.Hospital,
		&doctor.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &doctor, nil
}
