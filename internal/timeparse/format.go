package timeparse

import (
	"strconv"
	"strings"
)

// FormattedDuration renders an Elapsed value in canonical human-readable
// form when printed.
type FormattedDuration struct {
	e Elapsed
}

// FormatDuration returns a value whose String method renders e, for
// example "2h 37m" or "1year 2months 3days 32ms".
//
// The rendering is guaranteed to parse back to e with ParseDuration. The
// exact composition of the text may change between releases.
func FormatDuration(e Elapsed) FormattedDuration {
	return FormattedDuration{e: e}
}

// Elapsed returns the value being formatted.
func (f FormattedDuration) Elapsed() Elapsed {
	return f.e
}

func (f FormattedDuration) String() string {
	secs, nanos := f.e.secs, f.e.nanos
	if secs == 0 && nanos == 0 {
		return "0s"
	}

	years := secs / secondsPerYear
	rem := secs % secondsPerYear
	months := rem / secondsPerMonth
	rem %= secondsPerMonth
	days := rem / secondsPerDay
	rem %= secondsPerDay

	var w segmentWriter
	w.plural(years, "year")
	w.plural(months, "month")
	w.plural(days, "day")
	w.item(rem/secondsPerHour, "h")
	w.item(rem%secondsPerHour/secondsPerMinute, "m")
	w.item(rem%secondsPerMinute, "s")
	w.item(uint64(nanos/nanosPerMillisecond), "ms")
	w.item(uint64(nanos/nanosPerMicrosecond%1000), "us")
	w.item(uint64(nanos%nanosPerMicrosecond), "ns")
	return w.String()
}

// segmentWriter joins non-zero components with single spaces.
type segmentWriter struct {
	strings.Builder
	buf [20]byte
}

func (w *segmentWriter) item(value uint64, unit string) {
	if value == 0 {
		return
	}
	if w.Len() > 0 {
		w.WriteByte(' ')
	}
	w.Write(strconv.AppendUint(w.buf[:0], value, 10))
	w.WriteString(unit)
}

func (w *segmentWriter) plural(value uint64, unit string) {
	if value > 1 {
		unit += "s"
	}
	w.item(value, unit)
}
