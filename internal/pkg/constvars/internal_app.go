package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_PRINCIPAL_KEY  ContextKey = "principal"
)

const (
	REQUEST_ID_PREFIX = "NRSHLD_SVC_"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	SessionCookieName = "neuroShieldToken"
)

const (
	MongoCollectionAccounts = "accounts"
)

const (
	RelationshipStatusActive  = "active"
	RelationshipStatusRevoked = "revoked"
)

const (
	VerificationStatusPending       = "pending"
	VerificationStatusVerified      = "verified"
	VerificationStatusRejected      = "rejected"
	VerificationStatusNeedsMoreInfo = "needs_more_info"
)

const (
	RecommendationPriorityLow    = 1
	RecommendationPriorityMedium = 2
	RecommendationPriorityHigh   = 3
)

// Redis key formats
const (
	RedisRevokedTokenKeyFormat = "revoked_token:%s:%d"
)
