package models

import "time"

type PatientProfile struct {
	ID             string
	SubjectID      string
	FullName       string
	Email          string
	Age            int
	Gender         string
	BloodGroup     string
	MedicalHistory string
	CreatedAt      time.Time
}

type DoctorProfile struct {
	ID             string
	SubjectID      string
	FullName       string
	Email          string
	Specialization string
	Hospital       string
	CreatedAt      time.Time
}

type AdminProfile struct {
	ID        string
	SubjectID string
	FullName  string
	Email     string
	CreatedAt time.Time
}
