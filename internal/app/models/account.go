package models

import "time"

// Account is the identity-provider record backing a subject id. The
// password hash never leaves the identity package.
type Account struct {
	SubjectID      string                 `bson:"subject_id"`
	Email          string                 `bson:"email"`
	PasswordHash   string                 `bson:"password_hash"`
	EmailConfirmed bool                   `bson:"email_confirmed"`
	Name           string                 `bson:"name"`
	RequestedRole  string                 `bson:"requested_role"`
	Metadata       map[string]interface{} `bson:"metadata,omitempty"`
	CreatedAt      time.Time              `bson:"created_at"`
}
