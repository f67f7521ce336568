// Package timeparse provides human-friendly duration and time parsing.
package timeparse

import (
	"unicode"
	"unicode/utf8"
)

type parseState int

const (
	// expectNumber skips whitespace and reads a digit run.
	expectNumber parseState = iota
	// expectUnit reads the letters of a unit suffix.
	expectUnit
)

type parser struct {
	src      string
	total    Elapsed
	segments int
}

// ParseDuration parses a duration such as "1hour 12min 5s" or "32ms".
//
// The input is a sequence of segments, each an integer followed by a unit
// suffix. Whitespace may separate segments and may appear between a number
// and its unit. Supported suffixes:
//
//   - ns, nsec, nanos
//   - us, usec
//   - ms, msec, millis
//   - s, sec, secs, second, seconds
//   - m, min, mins, minute, minutes
//   - h, hr, hrs, hour, hours
//   - d, day, days
//   - w, week, weeks
//   - M, month, months (30.44 days)
//   - y, year, years (365.25 days)
//
// Errors are always of type *ParseError.
func ParseDuration(s string) (Elapsed, error) {
	p := parser{src: s}
	return p.parse()
}

func (p *parser) parse() (Elapsed, error) {
	var (
		state  = expectNumber
		n      uint64
		digits bool
		start  int
	)

	for off := 0; off < len(p.src); {
		r, size := utf8.DecodeRuneInString(p.src[off:])

		switch state {
		case expectNumber:
			switch {
			case isDigit(r):
				var ok bool
				if n, ok = appendDigit(n, r); !ok {
					return Elapsed{}, ErrNumberOverflow
				}
				digits = true
			case unicode.IsSpace(r):
			case !digits:
				return Elapsed{}, &ParseError{Kind: NumberExpected, Offset: off}
			case isLetter(r):
				start = off
				state = expectUnit
			default:
				return Elapsed{}, &ParseError{Kind: InvalidCharacter, Offset: off}
			}

		case expectUnit:
			switch {
			case isLetter(r):
			case isDigit(r):
				// A number directly after a unit starts the next segment.
				if err := p.addSegment(n, start, off); err != nil {
					return Elapsed{}, err
				}
				n = uint64(r - '0')
				state = expectNumber
			case unicode.IsSpace(r):
				if err := p.addSegment(n, start, off); err != nil {
					return Elapsed{}, err
				}
				n, digits = 0, false
				state = expectNumber
			default:
				return Elapsed{}, &ParseError{Kind: InvalidCharacter, Offset: off}
			}
		}

		off += size
	}

	switch {
	case state == expectUnit:
		if err := p.addSegment(n, start, len(p.src)); err != nil {
			return Elapsed{}, err
		}
	case digits:
		// The number has no unit; this reports "time unit needed".
		return Elapsed{}, p.addSegment(n, len(p.src), len(p.src))
	case p.segments == 0:
		return Elapsed{}, ErrEmpty
	}

	return p.total, nil
}

// addSegment resolves the unit in src[start:end], scales n by it and adds
// the result to the running total.
func (p *parser) addSegment(n uint64, start, end int) error {
	unit, ok := lookupUnit(p.src[start:end])
	if !ok {
		return &ParseError{
			Kind:  UnknownUnit,
			Start: start,
			End:   end,
			Unit:  p.src[start:end],
			Value: n,
		}
	}

	secs, ok := mulChecked(n, unit.seconds)
	if !ok {
		return ErrNumberOverflow
	}
	nanos, ok := mulChecked(n, unit.nanos)
	if !ok {
		return ErrNumberOverflow
	}
	if secs, ok = addChecked(secs, nanos/nanosPerSecond); !ok {
		return ErrNumberOverflow
	}

	total, err := p.total.Add(Elapsed{secs: secs, nanos: uint32(nanos % nanosPerSecond)})
	if err != nil {
		return err
	}

	p.total = total
	p.segments++
	return nil
}

func appendDigit(n uint64, r rune) (uint64, bool) {
	n, ok := mulChecked(n, 10)
	if !ok {
		return 0, false
	}
	return addChecked(n, uint64(r-'0'))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isLetter reports whether r may appear in a unit suffix. Only ASCII
// letters qualify, which keeps unit spans one byte per character.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
