package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStartNoneProducesNoValue(t *testing.T) {
	_, ok := ResolveStart(TimestampNone, time.Time{}, ClockState{}, time.Now())
	assert.False(t, ok)
}

func TestResolveStartLocalDayStart(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2026, 8, 23, 10, 30, 15, 0, zone)

	start, ok := ResolveStart(TimestampLocalDayStart, time.Time{}, ClockState{}, now)

	require.True(t, ok)
	midnight := time.Date(2026, 8, 23, 0, 0, 0, 0, zone)
	assert.Equal(t, midnight.Unix(), start)
}

func TestResolveStartLocalDayStartUsesOffsetOfNow(t *testing.T) {
	// The same wall instant in two zones resolves to two different
	// midnights; the offset is read off now, never cached.
	instant := time.Date(2026, 8, 23, 1, 0, 0, 0, time.UTC)

	east := instant.In(time.FixedZone("UTC+3", 3*3600))
	west := instant.In(time.FixedZone("UTC-3", -3*3600))

	eastStart, ok := ResolveStart(TimestampLocalDayStart, time.Time{}, ClockState{}, east)
	require.True(t, ok)
	westStart, ok := ResolveStart(TimestampLocalDayStart, time.Time{}, ClockState{}, west)
	require.True(t, ok)

	assert.NotEqual(t, eastStart, westStart)
}

func TestResolveStartCustomDateIsMidnightUTC(t *testing.T) {
	date := time.Date(2024, 5, 17, 15, 4, 5, 0, time.FixedZone("UTC+1", 3600))

	start, ok := ResolveStart(TimestampCustomDate, date, ClockState{}, time.Now())

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC).Unix(), start)
}

func TestResolveStartSessionInstants(t *testing.T) {
	startedAt := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	lastUpdateAt := time.Date(2026, 8, 23, 9, 45, 0, 0, time.UTC)
	clock := ClockState{StartedAt: startedAt, LastUpdateAt: lastUpdateAt}

	tests := []struct {
		name string
		mode TimestampMode
		want int64
	}{
		{name: "since session start", mode: TimestampSinceStart, want: startedAt.Unix()},
		{name: "since last update", mode: TimestampSinceLastUpdate, want: lastUpdateAt.Unix()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, ok := ResolveStart(tt.mode, time.Time{}, clock, time.Now())
			require.True(t, ok)
			assert.Equal(t, tt.want, start)
		})
	}
}

func TestParseTimestampMode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimestampMode
	}{
		{name: "known mode", input: "since-start", want: TimestampSinceStart},
		{name: "empty resolves to none", input: "", want: TimestampNone},
		{name: "unknown resolves to none", input: "bogus", want: TimestampNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimestampMode(tt.input))
		})
	}
}

func TestTimestampModeLabelFallsBackToRawValue(t *testing.T) {
	assert.Equal(t, "weird", TimestampMode("weird").Label())
}
