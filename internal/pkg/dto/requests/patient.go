package requests

type UpdatePatientProfile struct {
	FullName       string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Age            int    `json:"age" validate:"omitempty,min=0,max=150"`
	Gender         string `json:"gender" validate:"omitempty,max=20"`
	BloodGroup     string `json:"blood_group" validate:"omitempty,max=5"`
	MedicalHistory string `json:"medical_history" validate:"omitempty,max=5000"`
}

type AddDoctor struct {
	DoctorEmail string `json:"doctor_email" validate:"required,email"`
}
