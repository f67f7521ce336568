package timeparse

import (
	"errors"
	"math/rand"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Elapsed
	}{
		// Sub-second units
		{"nsec", "17nsec", NewElapsed(0, 17)},
		{"nanos", "17nanos", NewElapsed(0, 17)},
		{"ns", "33ns", NewElapsed(0, 33)},
		{"usec", "3usec", NewElapsed(0, 3000)},
		{"us", "78us", NewElapsed(0, 78000)},
		{"msec", "31msec", NewElapsed(0, 31_000_000)},
		{"millis", "31millis", NewElapsed(0, 31_000_000)},
		{"ms", "32ms", NewElapsed(0, 32_000_000)},

		// Seconds and larger
		{"s", "3000s", NewElapsed(3000, 0)},
		{"sec", "300sec", NewElapsed(300, 0)},
		{"secs", "300secs", NewElapsed(300, 0)},
		{"seconds", "50seconds", NewElapsed(50, 0)},
		{"second", "1second", NewElapsed(1, 0)},
		{"m", "100m", NewElapsed(6000, 0)},
		{"min", "12min", NewElapsed(720, 0)},
		{"mins", "12mins", NewElapsed(720, 0)},
		{"minute", "1minute", NewElapsed(60, 0)},
		{"minutes", "7minutes", NewElapsed(420, 0)},
		{"h", "2h", NewElapsed(7200, 0)},
		{"hr", "7hr", NewElapsed(25200, 0)},
		{"hrs", "7hrs", NewElapsed(25200, 0)},
		{"hour", "1hour", NewElapsed(3600, 0)},
		{"hours", "24hours", NewElapsed(86400, 0)},
		{"day", "1day", NewElapsed(86400, 0)},
		{"days", "2days", NewElapsed(172_800, 0)},
		{"d", "365d", NewElapsed(31_536_000, 0)},
		{"week", "1week", NewElapsed(604_800, 0)},
		{"weeks", "7weeks", NewElapsed(4_233_600, 0)},
		{"w", "52w", NewElapsed(31_449_600, 0)},
		{"month", "1month", NewElapsed(2_630_016, 0)},
		{"months", "3months", NewElapsed(3*2_630_016, 0)},
		{"M", "1M", NewElapsed(2_630_016, 0)},
		{"M twelve", "12M", NewElapsed(31_560_192, 0)},
		{"year", "1year", NewElapsed(31_557_600, 0)},
		{"years", "7years", NewElapsed(7*31_557_600, 0)},
		{"y", "1y", NewElapsed(31_557_600, 0)},
		{"y seventeen", "17y", NewElapsed(536_479_200, 0)},

		// Combinations
		{"hours and minutes", "2h 37min", NewElapsed(9420, 0)},
		{"spaced units", "20 min 17 nsec ", NewElapsed(1200, 17)},
		{"short combo", "2h 15m", NewElapsed(8100, 0)},
		{"no separator", "1h30m", NewElapsed(5400, 0)},
		{"leading whitespace", "  \t5s", NewElapsed(5, 0)},
		{"trailing newline", "5s\n", NewElapsed(5, 0)},
		{"unicode whitespace", "1h\u00a030m", NewElapsed(5400, 0)},
		{"digits split by space", "1 2s", NewElapsed(12, 0)},
		{"zero", "0s", Elapsed{}},
		{"leading zeros", "007s", NewElapsed(7, 0)},
		{"repeated unit", "1s 1s", NewElapsed(2, 0)},

		// Nanosecond carry
		{"carry at one second", "999ms 1ms", NewElapsed(1, 0)},
		{"carry above one second", "1500ms", NewElapsed(1, 500_000_000)},
		{"carry from nanos", "1s 1000000000ns", NewElapsed(2, 0)},
		{"large nanos", "18446744073709551615ns", NewElapsed(18_446_744_073, 709_551_615)},
		{"max seconds", "18446744073709551615s", NewElapsed(18446744073709551615, 0)},
		{"max value", "18446744073709551615s 999999999ns", MaxElapsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if err != nil {
				t.Errorf("ParseDuration(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDurationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParseError
	}{
		{"empty string", "", ParseError{Kind: Empty}},
		{"only whitespace", "   ", ParseError{Kind: Empty}},
		{"no unit", "123", ParseError{Kind: UnknownUnit, Start: 3, End: 3, Value: 123}},
		{"trailing number", "10 months 1", ParseError{Kind: UnknownUnit, Start: 11, End: 11, Value: 1}},
		{"unknown unit", "10nights", ParseError{Kind: UnknownUnit, Start: 2, End: 8, Unit: "nights", Value: 10}},
		{"units are case-sensitive", "1H", ParseError{Kind: UnknownUnit, Start: 1, End: 2, Unit: "H", Value: 1}},
		{"unknown unit after space", "5 parsecs", ParseError{Kind: UnknownUnit, Start: 2, End: 9, Unit: "parsecs", Value: 5}},
		{"no number", "abc", ParseError{Kind: NumberExpected, Offset: 0}},
		{"no number after whitespace", "  x", ParseError{Kind: NumberExpected, Offset: 2}},
		{"unit broken into words", "2 hours min", ParseError{Kind: NumberExpected, Offset: 8}},
		{"negative", "-10s", ParseError{Kind: NumberExpected, Offset: 0}},
		{"fraction", "1.5h", ParseError{Kind: InvalidCharacter, Offset: 1}},
		{"punctuation in unit", "1h-2m", ParseError{Kind: InvalidCharacter, Offset: 2}},
		{"comma separated", "1s,2s", ParseError{Kind: InvalidCharacter, Offset: 2}},
		{"non-ASCII unit", "5µs", ParseError{Kind: InvalidCharacter, Offset: 1}},
		{"non-ASCII offset", "1h µ", ParseError{Kind: NumberExpected, Offset: 3}},
		{"offset of character after unit and spaces", "1h  x", ParseError{Kind: NumberExpected, Offset: 4}},
		{"invalid UTF-8", "1\xffs", ParseError{Kind: InvalidCharacter, Offset: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDuration(tt.input)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseDuration(%q) error = %v, want *ParseError", tt.input, err)
			}
			if *perr != tt.want {
				t.Errorf("ParseDuration(%q) error = %#v, want %#v", tt.input, *perr, tt.want)
			}
		})
	}
}

func TestParseDurationOverflow(t *testing.T) {
	inputs := []string{
		"100000000000000000000ns",
		"100000000000000000us",
		"100000000000000ms",
		"100000000000000000000s",
		"10000000000000000000m",
		"1000000000000000000h",
		"100000000000000000d",
		"10000000000000000w",
		"1000000000000000M",
		"10000000000000y",
		"18446744073709551616ns",
		"18446744073709551615s 1s",
		"18446744073709551615s 999999999ns 1ns",
		"584542046091years",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDuration(input)
			if !errors.Is(err, ErrNumberOverflow) {
				t.Errorf("ParseDuration(%q) error = %v, want %v", input, err, ErrNumberOverflow)
			}
		})
	}
}

func TestParseDurationErrorMessages(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123", "time unit needed, for example 123sec or 123ms"},
		{"10 months 1", "time unit needed, for example 1sec or 1ms"},
		{"10nights", `unknown time unit "nights", supported units: ns, us, ms, sec, min, hours, days, weeks, months, years (and few variations)`},
		{"", "value was empty"},
		{"1.5h", "invalid character at 1"},
		{"x", "expected number at 0"},
		{"100000000000000000000s", "number is too large"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDuration(tt.input)
			if err == nil {
				t.Fatalf("ParseDuration(%q) expected error, got nil", tt.input)
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("ParseDuration(%q) error = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTripDay(t *testing.T) {
	for second := uint64(0); second < 86400; second++ {
		d := NewElapsed(second, 0)
		text := FormatDuration(d).String()
		got, err := ParseDuration(text)
		if err != nil {
			t.Fatalf("ParseDuration(%q) unexpected error: %v", text, err)
		}
		if got != d {
			t.Fatalf("ParseDuration(%q) = %#v, want %#v", text, got, d)
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		for _, d := range []Elapsed{
			NewElapsed(uint64(r.Int63n(253_370_764_800)), 0),
			NewElapsed(uint64(r.Int63n(253_370_764_800)), uint32(r.Int63n(nanosPerSecond))),
			NewElapsed(r.Uint64(), uint32(r.Int63n(nanosPerSecond))),
		} {
			text := FormatDuration(d).String()
			got, err := ParseDuration(text)
			if err != nil {
				t.Fatalf("ParseDuration(%q) unexpected error: %v", text, err)
			}
			if got != d {
				t.Fatalf("ParseDuration(%q) = %#v, want %#v", text, got, d)
			}
		}
	}
}

func TestParseErrorIs(t *testing.T) {
	_, err := ParseDuration("  ")
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("errors.Is(%v, ErrEmpty) = false, want true", err)
	}
	if errors.Is(err, ErrNumberOverflow) {
		t.Errorf("errors.Is(%v, ErrNumberOverflow) = true, want false", err)
	}
}

func TestParseErrorSpan(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"unknown unit", "10nights", 2, 8, true},
		{"missing unit", "10", 2, 2, true},
		{"invalid character", "1.5h", 1, 1, true},
		{"number expected", "h", 0, 0, true},
		{"overflow", "100000000000000000000s", 0, 0, false},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDuration(tt.input)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseDuration(%q) error = %v, want *ParseError", tt.input, err)
			}
			start, end, ok := perr.Span()
			if start != tt.wantStart || end != tt.wantEnd || ok != tt.wantOK {
				t.Errorf("Span() = (%d, %d, %v), want (%d, %d, %v)",
					start, end, ok, tt.wantStart, tt.wantEnd, tt.wantOK)
			}
		})
	}
}
