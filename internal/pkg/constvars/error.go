package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"role":     "must be one of patient, doctor, or admin",
}

// Error messages for clients
const (
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientDoctorAlreadyAdded            = "this doctor is already on your care team"
	ErrClientDoctorNotFound                = "no doctor found with that email"
	ErrClientDoctorNotLinked               = "this doctor is not on your care team"
	ErrClientInvalidVerificationStatus     = "invalid verification status"
)

// Error messages for developers
const (
	ErrDevInvalidInput         = "invalid input"
	ErrDevCannotParseJSON      = "cannot parse JSON"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevValidationFailed     = "validation failed"

	ErrDevURLParamIDValidationFailed = "URL parameter %s failed validation"

	// Usecase messages
	ErrDevPasswordsDoNotMatch = "passwords do not match"
	ErrDevEmailAlreadyExists  = "email already exists"
	ErrDevInvalidRoleType     = "requested role is not patient, doctor, or admin"
	ErrDevDoctorNotFound      = "doctor profile not found by email"
	ErrDevDoctorNotLinked     = "no active relationship between patient and doctor"
	ErrDevRelationshipExists  = "relationship already exists for patient and doctor"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthTokenMissing          = "session cookie missing"
	ErrDevAuthTokenRevoked          = "token has been revoked"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthProfileNotFound       = "no profile row matches the subject id"
	ErrDevAuthAmbiguousSubject      = "subject id matches more than one profile table"
	ErrDevAuthAccessDenied          = "access gate denied the requested action"

	// Server messages
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "server process exceeded its deadline"

	// Postgres messages
	ErrDevDBFailedToFindData       = "failed when finding data on database"
	ErrDevDBFailedToInsertData     = "failed to insert data into database"
	ErrDevDBFailedToUpdateData     = "failed to update data on database"
	ErrDevDBFailedToDeleteData     = "failed to delete data from database"
	ErrDevDBFailedToIterateDataset = "failed to iterate dataset from database"

	// Mongo messages
	ErrDevDBFailedToFindDocument   = "failed when finding document on database"
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"

	// Redis messages
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevMinioFailedToRemoveObject  = "failed to remove object from bucket %s"
)
