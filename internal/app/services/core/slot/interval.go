package slot

import (
	"fmt"
	"strings"
)

// MinutesPerDay is the exclusive upper bound of a wall-clock day.
const MinutesPerDay = 24 * 60

// TimeInterval is a half-open [Start, End) range expressed in minutes since
// facility-local midnight. End may equal MinutesPerDay.
type TimeInterval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParseClock converts an HH:mm or HH:mm:ss wall-clock value into minutes since
// midnight. Seconds are validated and then truncated.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock %q: want HH:mm or HH:mm:ss", s)
	}
	limits := []int{23, 59, 59}
	values := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 || !isDigit(p[0]) || !isDigit(p[1]) {
			return 0, fmt.Errorf("invalid clock %q: each field needs two digits", s)
		}
		v := int(p[0]-'0')*10 + int(p[1]-'0')
		if v > limits[i] {
			return 0, fmt.Errorf("invalid clock %q", s)
		}
		values[i] = v
	}
	return values[0]*60 + values[1], nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatClock renders minutes since midnight as HH:mm.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatClockSeconds renders minutes since midnight as HH:mm:ss.
func FormatClockSeconds(minutes int) string {
	return FormatClock(minutes) + ":00"
}

// NewTimeInterval builds the interval starting at clock and lasting
// durationMinutes.
func NewTimeInterval(clock string, durationMinutes int) (TimeInterval, error) {
	start, err := ParseClock(clock)
	if err != nil {
		return TimeInterval{}, err
	}
	if durationMinutes <= 0 {
		return TimeInterval{}, fmt.Errorf("invalid duration %d: must be positive", durationMinutes)
	}
	iv := TimeInterval{Start: start, End: start + durationMinutes}
	if iv.End > MinutesPerDay {
		return TimeInterval{}, fmt.Errorf("interval %s+%dm runs past midnight", FormatClock(start), durationMinutes)
	}
	return iv, nil
}

// IntervalBetween builds the interval between two wall-clock values.
func IntervalBetween(startClock, endClock string) (TimeInterval, error) {
	start, err := ParseClock(startClock)
	if err != nil {
		return TimeInterval{}, err
	}
	end, err := ParseClock(endClock)
	if err != nil {
		return TimeInterval{}, err
	}
	if start >= end {
		return TimeInterval{}, fmt.Errorf("start %s is not before end %s", startClock, endClock)
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Overlaps reports whether a and b share any minute. Touching endpoints do
// not overlap.
func (a TimeInterval) Overlaps(b TimeInterval) bool {
	return a.Start < b.End && b.Start < a.End
}

// Contains reports whether b lies entirely within a.
func (a TimeInterval) Contains(b TimeInterval) bool {
	return a.Start <= b.Start && b.End <= a.End
}

func (a TimeInterval) Duration() int {
	return a.End - a.Start
}

func (a TimeInterval) String() string {
	return FormatClock(a.Start) + "-" + FormatClock(a.End)
}
