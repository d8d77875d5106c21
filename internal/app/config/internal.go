package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Payment  AppPayment
	Withdraw AppWithdraw
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	MongoDB  AppMongoDB
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	CorsAllowedOrigins         []string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
	SuperadminAPIKeyHash       string
	SuperadminAPIKeyRateLimit  int
}

type AppJWT struct {
	Secret string
}

type AppPayment struct {
	ManualTransferDeadlineInHours int
	ProofMaxUploadSizeInMB        int64
	// ExpirySweepCronSpec enables the background expiry sweep when non-empty (e.g. "@every 5m").
	ExpirySweepCronSpec      string
	ExpirySweepBatchSize     int
	ExpirySweepRatePerSecond int
	ExpirySweepLockTTL       int
}

type AppWithdraw struct {
	DefaultListPageSize int
}

type AppMinio struct {
	PaymentProofBucketName string
	PublicBaseUrl          string
}

type AppRabbitMQ struct {
	StatusEventQueue string
}

type AppMongoDB struct {
	AuditLogCollection string
}
