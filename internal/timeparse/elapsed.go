package timeparse

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"time"
)

// Elapsed is a non-negative span of time: whole seconds plus a sub-second
// count of nanoseconds that is always below one second.
//
// The zero value is a zero-length span. Elapsed values are compared with ==.
type Elapsed struct {
	secs  uint64
	nanos uint32
}

// MaxElapsed is the largest representable Elapsed value.
var MaxElapsed = Elapsed{secs: math.MaxUint64, nanos: nanosPerSecond - 1}

// NewElapsed returns the span of secs seconds plus nanos nanoseconds.
// Whole seconds in nanos are carried into the seconds. It panics if the
// carry overflows.
func NewElapsed(secs uint64, nanos uint32) Elapsed {
	if nanos >= nanosPerSecond {
		s, ok := addChecked(secs, uint64(nanos/nanosPerSecond))
		if !ok {
			panic("timeparse: overflow in NewElapsed")
		}
		secs = s
		nanos %= nanosPerSecond
	}
	return Elapsed{secs: secs, nanos: nanos}
}

// FromStd converts a time.Duration. Negative durations are rejected.
func FromStd(d time.Duration) (Elapsed, error) {
	if d < 0 {
		return Elapsed{}, fmt.Errorf("negative duration %v is not supported", d)
	}
	return Elapsed{secs: uint64(d / time.Second), nanos: uint32(d % time.Second)}, nil
}

// Seconds returns the whole seconds of e.
func (e Elapsed) Seconds() uint64 { return e.secs }

// Nanos returns the sub-second nanoseconds of e, in [0, 1e9).
func (e Elapsed) Nanos() uint32 { return e.nanos }

// IsZero reports whether e is a zero-length span.
func (e Elapsed) IsZero() bool { return e.secs == 0 && e.nanos == 0 }

// Compare returns -1, 0 or +1 depending on whether e is shorter than, equal
// to or longer than o.
func (e Elapsed) Compare(o Elapsed) int {
	if c := cmp.Compare(e.secs, o.secs); c != 0 {
		return c
	}
	return cmp.Compare(e.nanos, o.nanos)
}

// Add returns e+o, or ErrNumberOverflow when the sum does not fit.
func (e Elapsed) Add(o Elapsed) (Elapsed, error) {
	secs, ok := addChecked(e.secs, o.secs)
	if !ok {
		return Elapsed{}, ErrNumberOverflow
	}
	nanos := e.nanos + o.nanos
	if nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		if secs, ok = addChecked(secs, 1); !ok {
			return Elapsed{}, ErrNumberOverflow
		}
	}
	return Elapsed{secs: secs, nanos: nanos}, nil
}

// Std converts e to a time.Duration. It fails for spans longer than
// roughly 292 years.
func (e Elapsed) Std() (time.Duration, error) {
	n, ok := mulChecked(e.secs, nanosPerSecond)
	if ok {
		n, ok = addChecked(n, uint64(e.nanos))
	}
	if !ok || n > math.MaxInt64 {
		return 0, fmt.Errorf("%v does not fit in time.Duration", FormatDuration(e))
	}
	return time.Duration(n), nil
}

// Truncate rounds e down to a multiple of precision. A zero precision
// returns e unchanged.
func (e Elapsed) Truncate(precision Elapsed) Elapsed {
	if precision.IsZero() {
		return e
	}
	total, unit := e.bigNanos(), precision.bigNanos()
	total.Sub(total, new(big.Int).Mod(total, unit))
	secs, nanos := total.QuoRem(total, big.NewInt(nanosPerSecond), new(big.Int))
	return Elapsed{secs: secs.Uint64(), nanos: uint32(nanos.Uint64())}
}

func (e Elapsed) bigNanos() *big.Int {
	n := new(big.Int).SetUint64(e.secs)
	n.Mul(n, big.NewInt(nanosPerSecond))
	return n.Add(n, big.NewInt(int64(e.nanos)))
}

// String returns the canonical rendering of e.
func (e Elapsed) String() string {
	return FormatDuration(e).String()
}

// Set parses s into e. Together with String and Type it lets *Elapsed be
// used as a command-line flag.
func (e *Elapsed) Set(s string) error {
	v, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Type is only used in help text.
func (e *Elapsed) Type() string {
	return "duration"
}

// MarshalText implements encoding.TextMarshaler.
func (e Elapsed) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Elapsed) UnmarshalText(text []byte) error {
	v, err := ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*e = v
	return nil
}
