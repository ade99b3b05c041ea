package requests

type Signup struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,password"`
	RetypePassword string `json:"retype_password" validate:"required,eqfield=Password"`
	Role           string `json:"role" validate:"omitempty,role"`

	// Role-specific signup attributes.
	Age            int    `json:"age" validate:"omitempty,min=0,max=150"`
	Gender         string `json:"gender" validate:"omitempty,max=20"`
	BloodGroup     string `json:"blood_group" validate:"omitempty,max=5"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Hospital       string `json:"hospital" validate:"omitempty,max=200"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
