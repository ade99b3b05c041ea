package queries

const (
	// ResolveSubject tags each profile table so the caller can tell which
	// one matched. A subject present in more than one table yields more
	// than one row; resolution must treat that as a hard failure.
	ResolveSubject = `
		SELECT 'patient' AS role, id, full_name, email FROM patients WHERE subject_id = $1
		UNION ALL
		SELECT 'doctor' AS role, id, full_name, email FROM doctors WHERE subject_id = $1
		UNION ALL
		SELECT 'admin' AS role, id, full_name, email FROM admins WHERE subject_id = $1
	`

	InsertPatient = `
		INSERT INTO patients (id, subject_id, full_name, email, age, gender, blood_group, medical_history, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	InsertDoctor = `
		INSERT INTO doctors (id, subject_id, full_name, email, specialization, hospital, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	InsertAdmin = `
		INSERT INTO admins (id, subject_id, full_name, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	GetPatientByID = `
		SELECT id, subject_id, full_name, email, age, gender, blood_group, medical_history, created_at
		FROM patients
		WHERE id = $1
	`

	GetDoctorByID = `
		SELECT id, subject_id, full_name, email, specialization, hospital, created_at
		FROM doctors
		WHERE id = $1
	`

	GetDoctorByEmail = `
		SELECT id, subject_id, full_name, email, specialization, hospital, created_at
		FROM doctors
		WHERE LOWER(email) = LOWER($1)
	`

	GetAdminBySubjectID = `
		SELECT id, subject_id, full_name, email, created_at
		FROM admins
		WHERE subject_id = $1
	`

	UpdatePatient = `
		UPDATE patients
		SET full_name = $1, age = $2, gender = $3, blood_group = $4, medical_history = $5
		WHERE id = $6
	`

	UpdateDoctor = `
		UPDATE doctors
		SET full_name = $1, specialization = $2, hospital = $3
		WHERE id = $4
	`
)
