package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"oneof":    "must be one of [%s]",
	"clock":    "must be a wall-clock time in HH:mm or HH:mm:ss format",
	"date":     "must be a calendar date in YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResourceNotFound              = "the requested resource was not found"
	ErrClientClinicAPIUnavailable          = "the clinic records service is not reachable, please try again"
	ErrClientBookingInProgress             = "another booking for this doctor and date is being submitted, please retry"
	ErrClientTransitionNotAllowed          = "the appointment cannot be moved to the requested status"
	ErrClientDiagnosisRequired             = "a diagnosis is required to complete the appointment"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseDate            = "cannot parse date %q"
	ErrDevURLParamMissing            = "url param %s is missing"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevTooManyRequests            = "inbound rate limit exceeded"
	ErrDevAuthTokenMissing           = "auth token missing"
	ErrDevAuthTokenInvalidOrExpired  = "auth token invalid or expired"
	ErrDevRoleNotAllowed             = "role not allowed for this operation"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevDecodeResponse             = "failed to decode %s response"
	ErrDevClinicAPIStatus            = "clinic API returned status %d for %s: %s"
	ErrDevClinicAPINotFound          = "clinic API %s not found"
	ErrDevClinicAPIConflict          = "clinic API rejected %s with conflict"
	ErrDevClinicAPIRateLimited       = "outbound clinic API limiter wait failed"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisSAdd                  = "failed to add members to redis set"
	ErrDevRedisSMembers              = "failed to get redis set members"
	ErrDevRedisSetNX                 = "failed to set-if-absent redis key"
	ErrDevRedisExpire                = "failed to refresh redis key expiry"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevRedisLockNotOwned          = "lock not owned by this client"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevBookingLockNotAcquired     = "booking lock %s not acquired"
	ErrDevTransitionNotAllowed       = "transition %s -> %s not allowed"
	ErrDevDiagnosisRequired          = "diagnosis payload missing for completion"
)
