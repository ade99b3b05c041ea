package models

// Principal is the resolved identity for a single request. Role and
// ProfileID always come from the same profile row; a Principal is never
// built from client-supplied role claims and is never persisted.
type Principal struct {
	SubjectID   string
	Role        Role
	ProfileID   string
	DisplayName string
	Email       string
}

// SubjectProfile is the tagged result of resolving a subject id against the
// three profile tables in a single query.
type SubjectProfile struct {
	Role        Role
	ProfileID   string
	DisplayName string
	Email       string
}
