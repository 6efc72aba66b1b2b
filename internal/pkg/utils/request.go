package utils

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// RequestIDFromContext returns the request id placed by the request-id middleware.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// DecodeAndValidate parses a JSON body into dst and runs struct validation on it.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date as a facility-local midnight.
func ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(constvars.DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err, value)
	}
	return date, nil
}
