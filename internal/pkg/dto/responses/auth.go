package responses

// UserContext is the principal-shaped payload returned by login and
// dashboard. Profile is role-specific.
type UserContext struct {
	ID      string      `json:"id"`
	Email   string      `json:"email"`
	Name    string      `json:"name"`
	Role    string      `json:"role"`
	Profile interface{} `json:"profile,omitempty"`
}

type Signup struct {
	User *UserContext `json:"user"`
}

type Login struct {
	User *UserContext `json:"user"`
}

type Dashboard struct {
	User *UserContext `json:"user"`
}
