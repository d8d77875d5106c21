package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"numeric":    "must be a number",
	"oneof":      "must be one of [%s]",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
	"url":        "must be a valid URL",
	"uuid":       "must be a valid UUID",
	"not_blank":  "must not be blank",
	"amount":     "must be a positive amount with at most 2 decimal places",
	"future_ttl": "must be in the future",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientTooManyRequests               = "too many requests, please try again later"

	ErrClientPaymentNotFound              = "payment not found"
	ErrClientPaymentInvalidState          = "payment cannot be %s while its status is %s"
	ErrClientPaymentDeadlinePassed        = "payment deadline has passed"
	ErrClientPaymentProofRequired         = "payment proof is required"
	ErrClientPaymentProofInvalidFormat    = "payment proof must be a JPEG, PNG or PDF file"
	ErrClientPaymentProofTooLarge         = "payment proof exceeds the maximum size of %d MB"
	ErrClientWithdrawRequestNotFound      = "withdraw request not found"
	ErrClientWithdrawRequestInvalidState  = "withdraw request cannot be %s while its status is %s"
	ErrClientRejectionReasonRequired      = "rejection reason is required"
	ErrClientStatusFilterInvalid          = "status filter is invalid"
	ErrClientWithdrawAmountMustBePositive = "withdraw amount must be greater than zero"
)

// Error messages for developers
const (
	ErrDevInvalidInput            = "invalid input"
	ErrDevValidationFailed        = "validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON"
	ErrDevCannotParseMultipart    = "cannot parse multipart form"
	ErrDevCannotMarshalJSON       = "cannot marshal JSON"
	ErrDevServerProcess           = "server failed to process the request"
	ErrDevServerDeadlineExceeded  = "server deadline exceeded"
	ErrDevMissingRequestID        = "request id missing from context"
	ErrDevURLParamIDValidation    = "url param %s failed validation"
	ErrDevInvalidStateTransition  = "invalid state transition"
	ErrDevRejectionReasonRequired = "rejection reason is blank"

	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthSessionNotFound       = "session not found"
	ErrDevAuthRoleNotAllowed        = "role is not allowed for this route"
	ErrDevInvalidAPIKey             = "invalid API key"

	ErrDevPaymentNotFound         = "payment %s not found"
	ErrDevWithdrawRequestNotFound = "withdraw request %s not found"
	ErrDevPaymentDeadlinePassed   = "payment %s deadline passed"
	ErrDevPaymentProofType        = "unsupported payment proof content type %s"
	ErrDevPaymentProofSize        = "payment proof size %d exceeds limit %d"

	ErrDevDBFailedToFindData    = "failed to find data in postgres"
	ErrDevDBFailedToInsertData  = "failed to insert data into postgres"
	ErrDevDBFailedToUpdateData  = "failed to update data in postgres"
	ErrDevDBFailedToIterateData = "failed to iterate postgres dataset"

	ErrDevMongoDBInsertDocument = "failed to insert document into mongo collection %s"
	ErrDevMongoDBFindDocument   = "failed to find documents in mongo collection %s"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisGetNoData  = "no data in redis for key %s"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSetNX      = "failed to set-if-not-exists data into redis"
	ErrDevRedisExpire     = "failed to extend redis key expiration"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevMinioFailedToCreateObject = "failed to create object in minio bucket %s"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to rabbitmq queue %s"
)
