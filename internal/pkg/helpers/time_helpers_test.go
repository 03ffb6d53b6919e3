package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDescribeSpan(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{"same day", base, "0 days"},
		{"one day", base.AddDate(0, 0, 1), "1 day"},
		{"ten days", base.AddDate(0, 0, 10), "10 days"},
		{"two weeks", base.AddDate(0, 0, 14), "2 weeks"},
		{"three weeks", base.AddDate(0, 0, 21), "3 weeks"},
		{"one month", base.AddDate(0, 0, 30), "1 month"},
		{"two months", base.AddDate(0, 0, 60), "2 months"},
		{"six months", base.AddDate(0, 0, 180), "6 months"},
		{"inverted range", base.AddDate(0, 0, -5), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeSpan(base, tt.end))
		})
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not a duration", time.Minute))
}
