package models

import "time"

type MedicalRecord struct {
	ID                 string
	PatientProfileID   string
	RecordType         string
	Title              string
	Description        string
	ObjectName         string
	FileType           string
	FileSize           int64
	RecordDate         string
	VerificationStatus string
	VerifiedBy         string
	DoctorNotes        string
	CreatedAt          time.Time
}

// RecordVerification is a doctor's review of one medical record, unique on
// (MedicalRecordID, DoctorProfileID).
type RecordVerification struct {
	ID              string
	MedicalRecordID string
	DoctorProfileID string
	Status          string
	Notes           string
	RequestedInfo   string
	VerifiedAt      time.Time
}
