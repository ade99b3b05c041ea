package responses

type PatientProfile struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Age            int    `json:"age,omitempty"`
	Gender         string `json:"gender,omitempty"`
	BloodGroup     string `json:"blood_group,omitempty"`
	MedicalHistory string `json:"medical_history,omitempty"`
}

type AdminProfile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type DoctorProfile struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization,omitempty"`
	Hospital       string `json:"hospital,omitempty"`
}
