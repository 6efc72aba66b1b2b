package config

type InternalConfig struct {
	App       App
	ClinicAPI AppClinicAPI
	JWT       AppJWT
	Slot      AppSlot
	Booking   AppBooking
	RabbitMQ  AppRabbitMQ
	Minio     AppMinio
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	CorsAllowedOrigins         []string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

// AppClinicAPI points at the clinic admin REST API that owns schedules and
// appointments.
type AppClinicAPI struct {
	BaseUrl            string
	APIKey             string
	TimeoutInSeconds   int
	RateLimitPerSecond float64
	RateLimitBurst     int
}

type AppJWT struct {
	Secret string
}

type AppSlot struct {
	// CacheTTLInSeconds bounds how long a computed slot list is reused.
	CacheTTLInSeconds int
	// WarmUpDays is how many days ahead the worker pre-computes, today included.
	WarmUpDays int
	// WorkerCronSpec defines the cron expression for the warm-up worker (e.g., "@every 15m")
	WorkerCronSpec string
	WorkerEnabled  bool
}

type AppBooking struct {
	LockTTLInSeconds int
}

type AppRabbitMQ struct {
	AppointmentEventsQueue string
}

type AppMinio struct {
	DiagnosisBucketName string
}
