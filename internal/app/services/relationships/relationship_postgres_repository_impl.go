package relationships

import (
	"context"
	"database/sql"
	"errors"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/exceptions"
	"neuroshield-service/internal/pkg/queries"
	"sync"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pqUniqueViolation = "23505"

type relationshipPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	relationshipPostgresRepositoryInstance contracts.RelationshipStore
	onceRelationshipPostgresRepository     sync.Once
)

func NewRelationshipPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.RelationshipStore {
	onceRelationshipPostgresRepository.Do(func() {
		instance := &relationshipPostgresRepository{
			DB:  db,
			Log: logger,
		}
		relationshipPostgresRepositoryInstance = instance
	})
	return relationshipPostgresRepositoryInstance
}

func (r *relationshipPostgresRepository) ExistsActive(ctx context.Context, patientProfileID, doctorProfileID string) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, queries.CountActiveRelationship, patientProfileID, doctorProfileID).Scan(&count)
	if err != nil {
		return false, exceptions.ErrPostgresDBFindData(err)
	}
	return count > 0, nil
}

func (r *relationshipPostgresRepository) Insert(ctx context.Context, patientProfileID, doctorProfileID string) error {
	result, err := r.DB.ExecContext(ctx, queries.ReactivateRelationship, patientProfileID, doctorProfileID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	reactivated, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if reactivated > 0 {
		return nil
	}

	_, err = r.DB.ExecContext(ctx, queries.InsertRelationship, patientProfileID, doctorProfileID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return exceptions.ErrRelationshipAlreadyExists(err)
		}
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *relationshipPostgresRepository) Revoke(ctx context.Context, patientProfileID, doctorProfileID string) error {
	result, err := r.DB.ExecContext(ctx, queries.RevokeRelationship, patientProfileID, doctorProfileID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	revoked, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if revoked == 0 {
		return exceptions.ErrDoctorNotLinked(errors.New("no active relationship to revoke"))
	}
	return nil
}

func (r *relationshipPostgresRepository) ListDoctorsForPatient(ctx context.Context, patientProfileID string) ([]models.DoctorProfile, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetDoctorsForPatient, patientProfileID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var doctors []models.DoctorProfile
	for rows.Next() {
		var doctor models.DoctorProfile
		if err := rows.Scan(
			&doctor.ID,
			&doctor.SubjectID,
			&doctor.FullName,
			&doctor.Email,
			&doctor.Specialization,
			&doctor.Hospital,
			&doctor.CreatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		doctors = append(doctors, doctor)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return doctors, nil
}

func (r *relationshipPostgresRepository) ListPatientsForDoctor(ctx context.Context, doctorProfileID string) ([]models.PatientProfile, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetPatientsForDoctor, doctorProfileID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var patients []models.PatientProfile
	for rows.Next() {
		var patient models.PatientProfile
		if err := rows.Scan(
			&patient.ID,
			&patient.SubjectID,
			&patient.FullName,
			&patient.Email,
			&patient.Age,
			&patient.Gender,
			&patient.BloodGroup,
			&patient.MedicalHistory,
			&patient.CreatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return patients, nil
}
