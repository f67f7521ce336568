package timeparse

import (
	"fmt"
	"strconv"
)

// ErrorKind identifies why a duration failed to parse.
type ErrorKind int

const (
	// InvalidCharacter means a character other than an ASCII letter, a
	// digit or whitespace appeared after a number had started.
	InvalidCharacter ErrorKind = iota + 1
	// NumberExpected means a non-numeric character appeared where a number
	// was required, e.g. "2 hours min".
	NumberExpected
	// UnknownUnit means the unit suffix is missing or not supported.
	UnknownUnit
	// NumberOverflow means the value does not fit in 64 bits of seconds.
	NumberOverflow
	// Empty means the input held nothing but whitespace.
	Empty
)

var kindNames = map[ErrorKind]string{
	InvalidCharacter: "invalid character",
	NumberExpected:   "number expected",
	UnknownUnit:      "unknown unit",
	NumberOverflow:   "number overflow",
	Empty:            "empty",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// ParseError describes a failure to parse a duration.
//
// Offset is set for InvalidCharacter and NumberExpected. Start, End, Unit
// and Value are set for UnknownUnit. All positions are byte offsets into
// the original input.
type ParseError struct {
	Kind   ErrorKind
	Offset int
	Start  int
	End    int
	Unit   string
	Value  uint64
}

var (
	// ErrNumberOverflow is returned when a value is too large to represent.
	ErrNumberOverflow = &ParseError{Kind: NumberOverflow}
	// ErrEmpty is returned for empty or all-whitespace input.
	ErrEmpty = &ParseError{Kind: Empty}
)

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character at %d", e.Offset)
	case NumberExpected:
		return fmt.Sprintf("expected number at %d", e.Offset)
	case UnknownUnit:
		if e.Unit == "" {
			return fmt.Sprintf("time unit needed, for example %[1]dsec or %[1]dms", e.Value)
		}
		return fmt.Sprintf("unknown time unit %q, supported units: "+
			"ns, us, ms, sec, min, hours, days, weeks, months, years "+
			"(and few variations)", e.Unit)
	case NumberOverflow:
		return "number is too large"
	case Empty:
		return "value was empty"
	default:
		return e.Kind.String()
	}
}

// Is reports whether target is a *ParseError of the same kind, so
// errors.Is(err, ErrEmpty) matches any empty-input error.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// Span returns the byte range of the input the error points at. The range
// is empty when the error refers to a single position. ok is false for
// errors that have no position.
func (e *ParseError) Span() (start, end int, ok bool) {
	switch e.Kind {
	case InvalidCharacter, NumberExpected:
		return e.Offset, e.Offset, true
	case UnknownUnit:
		return e.Start, e.End, true
	default:
		return 0, 0, false
	}
}
