package responses

type MedicalRecord struct {
	ID                 string `json:"id"`
	PatientProfileID   string `json:"patient_id"`
	RecordType         string `json:"record_type"`
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	FileURL            string `json:"file_url,omitempty"`
	FileType           string `json:"file_type,omitempty"`
	FileSize           int64  `json:"file_size,omitempty"`
	RecordDate         string `json:"record_date,omitempty"`
	VerificationStatus string `json:"verification_status"`
	VerifiedBy         string `json:"verified_by,omitempty"`
	DoctorNotes        string `json:"doctor_notes,omitempty"`
}

type RecordVerification struct {
	ID              string `json:"id"`
	MedicalRecordID string `json:"medical_record_id"`
	DoctorProfileID string `json:"doctor_id"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
	RequestedInfo   string `json:"requested_info,omitempty"`
}

type Recommendation struct {
	ID               string `json:"id"`
	PatientProfileID string `json:"patient_id"`
	CreatedBy        string `json:"created_by,omitempty"`
	Type             string `json:"recommendation_type"`
	Content          string `json:"content"`
	Priority         int    `json:"priority"`
	Active           bool   `json:"is_active"`
}
