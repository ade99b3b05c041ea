package queries

const (
	CountActiveRelationship = `
		SELECT COUNT(1)
		FROM patient_doctors
		WHERE patient_profile_id = $1 AND doctor_profile_id = $2 AND status = 'active'
	`

	ReactivateRelationship = `
		UPDATE patient_doctors
		SET status = 'active', created_at = NOW()
		WHERE patient_profile_id = $1 AND doctor_profile_id = $2 AND status = 'revoked'
	`

	InsertRelationship = `
		INSERT INTO patient_doctors (patient_profile_id, doctor_profile_id, status, created_at)
		VALUES ($1, $2, 'active', NOW())
	`

	RevokeRelationship = `
		UPDATE patient_doctors
		SET status = 'revoked'
		WHERE patient_profile_id = $1 AND doctor_profile_id = $2 AND status = 'active'
	`

	GetDoctorsForPatient = `
		SELECT d.id, d.subject_id, d.full_name, d.email, d.specialization, d.hospital, d.created_at
		FROM doctors d
		JOIN patient_doctors pd ON pd.doctor_profile_id = d.id
		WHERE pd.patient_profile_id = $1 AND pd.status = 'active'
		ORDER BY d.full_name
	`

	GetPatientsForDoctor = `
		SELECT p.id, p.subject_id, p.full_name, p.email, p.age, p.gender, p.blood_group, p.medical_history, p.created_at
		FROM patients p
		JOIN patient_doctors pd ON pd.patient_profile_id = p.id
		WHERE pd.doctor_profile_id = $1 AND pd.status = 'active'
		ORDER BY p.full_name
	`
)
