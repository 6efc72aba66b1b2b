package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingDateKey           = "date"
	LoggingTimeKey           = "time"
	LoggingDurationKey       = "duration"
	LoggingCacheHitKey       = "cache_hit"
	LoggingReasonCodeKey     = "reason_code"
	LoggingStatusKey         = "status"
	LoggingStatusCodeKey     = "status_code"
	LoggingSlotCountKey      = "slot_count"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingSuccessKey        = "success"
	LoggingResponseLengthKey = "response_length"
	LoggingEventTypeKey      = "event_type"
	LoggingObjectKey         = "object_key"
	LoggingURLKey            = "url"
	LoggingDeliveryTagKey    = "delivery_tag"
)
