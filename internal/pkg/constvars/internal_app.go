package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_UID_KEY                  ContextKey = "uid"
	CONTEXT_ROLES_KEY                ContextKey = "roles"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	DateLayout          = "2006-01-02"
	AppointmentEventSrc = "clinic-booking-service"
)

const (
	RoleClinicAdmin  = "clinic_admin"
	RoleReceptionist = "receptionist"
	RoleDoctor       = "doctor"
)

// Redis key prefixes
const (
	RedisKeySlotList      = "slots:list"
	RedisKeySlotIndex     = "slots:index"
	RedisKeyBookingLock   = "booking:lock"
	RedisKeySlotWorkerRun = "slots:warmup:leader"
)

const (
	MongoCollectionBookingAttempts = "booking_attempts"
)

const (
	EventAppointmentBooked        = "appointment.booked"
	EventAppointmentStatusChanged = "appointment.status_changed"
)
