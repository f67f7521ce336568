package timeparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are tried in order. Layouts without a zone are read as UTC.
var timeLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339Nano,
}

// ParseTime parses a point in time. Supported formats:
//   - YYYY-MM-DD (assumes 00:00:00 UTC)
//   - YYYY-MM-DD HH:MM:SS (UTC)
//   - RFC3339: 2018-10-27T10:00:00Z, with optional fractional seconds
//   - @N: N seconds since the Unix epoch
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if unix, ok := strings.CutPrefix(s, "@"); ok {
		secs, err := strconv.ParseInt(unix, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid Unix time %q: %w", s, err)
		}
		return time.Unix(secs, 0).UTC(), nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time format %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, RFC3339, or @unix)", s)
}

// Since returns the span from t to now. It fails when t is after now.
func Since(t, now time.Time) (Elapsed, error) {
	if t.After(now) {
		return Elapsed{}, fmt.Errorf("%s is in the future", t.Format(time.RFC3339))
	}

	// Unix seconds span more than time.Duration can hold, so the difference
	// is taken without Sub. Both values fit in int64, so their unsigned
	// difference is exact.
	secs := uint64(now.Unix()) - uint64(t.Unix())
	nanos := now.Nanosecond() - t.Nanosecond()
	if nanos < 0 {
		nanos += nanosPerSecond
		secs--
	}
	return Elapsed{secs: secs, nanos: uint32(nanos)}, nil
}
