package constvars

import "math"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "HALO_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DefaultPage            = 1
	DefaultPageSize        = 20
	MaxPageSize            = 100
	MaxPage                = math.MaxInt32 / MaxPageSize
)

const (
	HaloRoleAdmin       = "Admin"
	HaloRoleSuperadmin  = "Superadmin"
	HaloRoleOptometrist = "Optometrist"
	HaloRolePatient     = "Patient"
)

const (
	APIKeySuperadminUserID = "api-key-superadmin"
)

const (
	ResourcePayments         = "payments"
	ResourceWithdrawRequests = "withdraw-requests"
)

const (
	EntityTypePayment         = "payment"
	EntityTypeWithdrawRequest = "withdraw_request"
)

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)
