package timeparse

const (
	nanosPerMicrosecond = 1_000
	nanosPerMillisecond = 1_000_000
	nanosPerSecond      = 1_000_000_000

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
	secondsPerMonth  = 2_630_016  // 30.44 days
	secondsPerYear   = 31_557_600 // 365.25 days
)

// scale is the value of one unit, split into whole seconds and nanoseconds.
type scale struct {
	seconds uint64
	nanos   uint64
}

// Unit describes one time unit and the suffixes that name it.
type Unit struct {
	Name     string
	Suffixes []string
	scale    scale
}

// Scale returns the length of one unit.
func (u Unit) Scale() Elapsed {
	return NewElapsed(u.scale.seconds, uint32(u.scale.nanos))
}

// unitTable is ordered from the smallest unit to the largest.
var unitTable = []Unit{
	{"nanosecond", []string{"ns", "nsec", "nanos"}, scale{nanos: 1}},
	{"microsecond", []string{"us", "usec"}, scale{nanos: nanosPerMicrosecond}},
	{"millisecond", []string{"ms", "msec", "millis"}, scale{nanos: nanosPerMillisecond}},
	{"second", []string{"s", "sec", "secs", "second", "seconds"}, scale{seconds: 1}},
	{"minute", []string{"m", "min", "mins", "minute", "minutes"}, scale{seconds: secondsPerMinute}},
	{"hour", []string{"h", "hr", "hrs", "hour", "hours"}, scale{seconds: secondsPerHour}},
	{"day", []string{"d", "day", "days"}, scale{seconds: secondsPerDay}},
	{"week", []string{"w", "week", "weeks"}, scale{seconds: secondsPerWeek}},
	{"month", []string{"M", "month", "months"}, scale{seconds: secondsPerMonth}},
	{"year", []string{"y", "year", "years"}, scale{seconds: secondsPerYear}},
}

// units maps every suffix to its scale. Suffixes are case-sensitive: "m" is
// a minute and "M" is a month.
var units = func() map[string]scale {
	m := make(map[string]scale)
	for _, u := range unitTable {
		for _, suffix := range u.Suffixes {
			m[suffix] = u.scale
		}
	}
	return m
}()

func lookupUnit(suffix string) (scale, bool) {
	s, ok := units[suffix]
	return s, ok
}

// Units returns the supported time units, smallest first.
func Units() []Unit {
	out := make([]Unit, len(unitTable))
	for i, u := range unitTable {
		u.Suffixes = append([]string(nil), u.Suffixes...)
		out[i] = u
	}
	return out
}
