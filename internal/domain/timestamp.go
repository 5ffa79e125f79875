package domain

import "time"

type TimestampMode string

const (
	TimestampNone            TimestampMode = "none"
	TimestampLocalDayStart   TimestampMode = "day-start"
	TimestampCustomDate      TimestampMode = "custom-date"
	TimestampSinceStart      TimestampMode = "since-start"
	TimestampSinceLastUpdate TimestampMode = "since-update"
)

func TimestampModes() []TimestampMode {
	return []TimestampMode{
		TimestampNone,
		TimestampLocalDayStart,
		TimestampCustomDate,
		TimestampSinceStart,
		TimestampSinceLastUpdate,
	}
}

func (m TimestampMode) Valid() bool {
	switch m {
	case TimestampNone, TimestampLocalDayStart, TimestampCustomDate,
		TimestampSinceStart, TimestampSinceLastUpdate:
		return true
	default:
		return false
	}
}

func (m TimestampMode) Label() string {
	switch m {
	case TimestampNone:
		return "none"
	case TimestampLocalDayStart:
		return "start of day"
	case TimestampCustomDate:
		return "custom date"
	case TimestampSinceStart:
		return "since session start"
	case TimestampSinceLastUpdate:
		return "since last update"
	default:
		return string(m)
	}
}

// ParseTimestampMode maps a stored mode string to a concrete mode. Unknown
// or empty input resolves to TimestampNone; there is no absent state.
func ParseTimestampMode(s string) TimestampMode {
	mode := TimestampMode(s)
	if mode.Valid() {
		return mode
	}
	return TimestampNone
}

// ClockState is the session clock threaded into ResolveStart. StartedAt is
// fixed at session startup; LastUpdateAt moves on every successful push.
type ClockState struct {
	StartedAt    time.Time
	LastUpdateAt time.Time
}

// ResolveStart turns a timestamp mode into an epoch-seconds start marker.
// now must carry the wall-clock location in effect at call time; the
// day-start arithmetic reads the local hour/minute/second off it.
func ResolveStart(mode TimestampMode, customDate time.Time, clock ClockState, now time.Time) (int64, bool) {
	switch mode {
	case TimestampLocalDayStart:
		sinceMidnight := int64(now.Hour())*3600 + int64(now.Minute())*60 + int64(now.Second())
		return now.Unix() - sinceMidnight, true
	case TimestampCustomDate:
		year, month, day := customDate.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix(), true
	case TimestampSinceStart:
		return clock.StartedAt.Unix(), true
	case TimestampSinceLastUpdate:
		return clock.LastUpdateAt.Unix(), true
	default:
		return 0, false
	}
}
