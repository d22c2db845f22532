package service_test

import (
	"testing"
	"time"

	"campus-events/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventTime(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		expect time.Time
	}{
		{"RFC3339 with offset", "2026-03-01T18:00:00+08:00", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"RFC3339 UTC", "2026-03-01T18:00:00Z", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)},
		{"datetime-local", "2026-03-01T18:00", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)},
		{"datetime-local with seconds", "2026-03-01T18:00:30", time.Date(2026, 3, 1, 18, 0, 30, 0, time.UTC)},
		{"space separated", "2026-03-01 18:00", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)},
		{"date only", "2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"surrounding spaces", "  2026-03-01T18:00  ", time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := service.ParseEventTime(tt.raw)
			require.True(t, ok)
			assert.True(t, tt.expect.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	for _, raw := range []string{"", "tomorrow", "2026-13-01", "01/03/2026 18:00"} {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, ok := service.ParseEventTime(raw)
			assert.False(t, ok)
		})
	}
}
