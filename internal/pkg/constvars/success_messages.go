package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	SignupSuccess    = "account created successfully"
	LoginSuccess     = "successfully login"
	LogoutSuccess    = "successfully logout"
	DashboardSuccess = "dashboard loaded successfully"

	// Profile messages
	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"

	// Relationship messages
	DoctorAddedSuccess   = "doctor added to your care team"
	DoctorRemovedSuccess = "doctor removed from your care team"
	DoctorListSuccess    = "doctors fetched successfully"
	PatientListSuccess   = "patients fetched successfully"
	PatientGetSuccess    = "patient fetched successfully"

	// Medical record messages
	RecordListSuccess     = "medical records fetched successfully"
	RecordCreatedSuccess  = "medical record uploaded successfully"
	RecordUpdatedSuccess  = "medical record updated successfully"
	RecordDeletedSuccess  = "medical record deleted successfully"
	RecordVerifiedSuccess = "medical record verification saved"

	// Recommendation messages
	RecommendationListSuccess        = "recommendations fetched successfully"
	RecommendationCreatedSuccess     = "recommendation created successfully"
	RecommendationDeactivatedSuccess = "recommendation deactivated successfully"
)
