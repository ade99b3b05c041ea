package models

// Action is one of the operations the access gate decides on.
type Action string

const (
	ActionReadPatient          Action = "read-patient"
	ActionWritePatient         Action = "write-patient"
	ActionReadMedicalRecord    Action = "read-medical-record"
	ActionWriteMedicalRecord   Action = "write-medical-record"
	ActionVerifyMedicalRecord  Action = "verify-medical-record"
	ActionCreateRelationship   Action = "create-relationship"
	ActionDeleteRelationship   Action = "delete-relationship"
	ActionCreateRecommendation Action = "create-recommendation"
)

// Target identifies the resource an action operates on. PatientProfileID is
// the owning patient. CreatorProfileID is only meaningful for
// create-recommendation: the authoring doctor's profile id, or empty for a
// system-generated recommendation.
type Target struct {
	PatientProfileID string
	CreatorProfileID string
}
