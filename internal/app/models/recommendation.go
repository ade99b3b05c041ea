package models

import "time"

// Recommendation is health advice attached to a patient. CreatedBy holds
// the authoring doctor's profile id; an empty CreatedBy marks a
// system-generated recommendation that is not attributable to any doctor.
type Recommendation struct {
	ID               string
	PatientProfileID string
	CreatedBy        string
	Type             string
	Content          string
	Priority         int
	Active           bool
	CreatedAt        time.Time
}
