package queries

const (
	GetMedicalRecordByID = `
		SELECT id, patient_profile_id, record_type, title, description, object_name, file_type, file_size,
			record_date, verification_status, COALESCE(verified_by::text, ''), COALESCE(doctor_notes, ''), created_at
		FROM medical_records
		WHERE id = $1
	`

	GetMedicalRecordsByPatient = `
		SELECT id, patient_profile_id, record_type, title, description, object_name, file_type, file_size,
			record_date, verification_status, COALESCE(verified_by::text, ''), COALESCE(doctor_notes, ''), created_at
		FROM medical_records
		WHERE patient_profile_id = $1
		ORDER BY created_at DESC
	`

	InsertMedicalRecord = `
		INSERT INTO medical_records (id, patient_profile_id, record_type, title, description, object_name,
			file_type, file_size, record_date, verification_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	UpdateMedicalRecord = `
		UPDATE medical_records
		SET record_type = $1, title = $2, description = $3, record_date = $4
		WHERE id = $5
	`

	DeleteMedicalRecord = `
		DELETE FROM medical_records
		WHERE id = $1
	`

	SetMedicalRecordVerification = `
		UPDATE medical_records
		SET verification_status = $1, verified_by = $2, doctor_notes = $3
		WHERE id = $4
	`

	UpsertRecordVerification = `
		INSERT INTO record_verifications (id, medical_record_id, doctor_profile_id, status, notes, requested_info, verified_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		ON CONFLICT (medical_record_id, doctor_profile_id)
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes,
			requested_info = EXCLUDED.requested_info, verified_at = EXCLUDED.verified_at
	`
)
