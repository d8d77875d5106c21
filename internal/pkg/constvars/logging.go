package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingEndpointKey     = "endpoint"
	LoggingMethodKey       = "method"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingErrorTypeKey    = "error_type"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"
	LoggingOperationKey    = "operation"

	LoggingPaymentIDKey         = "payment_id"
	LoggingPaymentStatusKey     = "payment_status"
	LoggingWithdrawRequestIDKey = "withdraw_request_id"
	LoggingWithdrawStatusKey    = "withdraw_status"
	LoggingActorIDKey           = "actor_id"
	LoggingFromStatusKey        = "from_status"
	LoggingToStatusKey          = "to_status"
	LoggingCountKey             = "count"
	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingQueueNameKey         = "queue_name"
	LoggingBucketNameKey        = "bucket_name"
	LoggingObjectNameKey        = "object_name"
	LoggingCollectionNameKey    = "collection_name"
	LoggingSessionIDKey         = "session_id"
	LoggingCronSpecKey          = "cron_spec"
)
