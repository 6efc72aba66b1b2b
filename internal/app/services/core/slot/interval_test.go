package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "09:00:00", want: 540},
		{in: "11:30:59", want: 690},
		{in: "23:59", want: 1439},
		{in: " 10:15 ", want: 615},
		{in: "24:00", wantErr: true},
		{in: "9:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "09:00:60", wantErr: true},
		{in: "0900", wantErr: true},
		{in: "", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "+9:00", wantErr: true},
		{in: "-0:30", wantErr: true},
		{in: "09:+5", wantErr: true},
		{in: "10:00:-1", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseClock(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "23:59", FormatClock(1439))
	assert.Equal(t, "10:30:00", FormatClockSeconds(630))
}

func TestNewTimeInterval(t *testing.T) {
	t.Run("builds interval", func(t *testing.T) {
		iv, err := NewTimeInterval("10:00:00", 30)
		require.NoError(t, err)
		assert.Equal(t, TimeInterval{Start: 600, End: 630}, iv)
		assert.Equal(t, 30, iv.Duration())
		assert.Equal(t, "10:00-10:30", iv.String())
	})

	t.Run("ends exactly at midnight", func(t *testing.T) {
		iv, err := NewTimeInterval("23:30", 30)
		require.NoError(t, err)
		assert.Equal(t, MinutesPerDay, iv.End)
	})

	t.Run("rejects past midnight", func(t *testing.T) {
		_, err := NewTimeInterval("23:45", 30)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		_, err := NewTimeInterval("10:00", 0)
		assert.Error(t, err)
		_, err = NewTimeInterval("10:00", -15)
		assert.Error(t, err)
	})
}

func TestIntervalBetween(t *testing.T) {
	iv, err := IntervalBetween("09:00:00", "12:00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeInterval{Start: 540, End: 720}, iv)

	_, err = IntervalBetween("12:00", "09:00")
	assert.Error(t, err)
	_, err = IntervalBetween("09:00", "09:00")
	assert.Error(t, err)
	_, err = IntervalBetween("nine", "12:00")
	assert.Error(t, err)
}

func TestTimeIntervalOverlaps(t *testing.T) {
	base := TimeInterval{Start: 600, End: 630}
	cases := []struct {
		name  string
		other TimeInterval
		want  bool
	}{
		{name: "identical", other: base, want: true},
		{name: "adjacent before", other: TimeInterval{Start: 570, End: 600}, want: false},
		{name: "adjacent after", other: TimeInterval{Start: 630, End: 660}, want: false},
		{name: "partial head", other: TimeInterval{Start: 590, End: 610}, want: true},
		{name: "partial tail", other: TimeInterval{Start: 620, End: 640}, want: true},
		{name: "enclosing", other: TimeInterval{Start: 540, End: 720}, want: true},
		{name: "enclosed", other: TimeInterval{Start: 610, End: 620}, want: true},
		{name: "disjoint", other: TimeInterval{Start: 700, End: 720}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestTimeIntervalContains(t *testing.T) {
	hours := TimeInterval{Start: 540, End: 720}
	assert.True(t, hours.Contains(TimeInterval{Start: 540, End: 570}))
	assert.True(t, hours.Contains(TimeInterval{Start: 690, End: 720}))
	assert.True(t, hours.Contains(hours))
	assert.False(t, hours.Contains(TimeInterval{Start: 510, End: 540}))
	assert.False(t, hours.Contains(TimeInterval{Start: 700, End: 730}))
}
