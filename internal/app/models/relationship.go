package models

import "time"

// Relationship is a patient-granted visibility link from a doctor to the
// patient's data. Unique on (PatientProfileID, DoctorProfileID); only an
// active row grants visibility.
type Relationship struct {
	PatientProfileID string
	DoctorProfileID  string
	Status           string
	CreatedAt        time.Time
}
