package requests

type UpdateDoctorProfile struct {
	FullName       string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Hospital       string `json:"hospital" validate:"omitempty,max=200"`
}
