package timeparse

import "testing"

func TestLookupUnit(t *testing.T) {
	tests := []struct {
		suffix string
		want   scale
		wantOK bool
	}{
		{"ns", scale{nanos: 1}, true},
		{"usec", scale{nanos: 1_000}, true},
		{"millis", scale{nanos: 1_000_000}, true},
		{"s", scale{seconds: 1}, true},
		{"m", scale{seconds: 60}, true},
		{"hrs", scale{seconds: 3_600}, true},
		{"d", scale{seconds: 86_400}, true},
		{"weeks", scale{seconds: 604_800}, true},
		{"M", scale{seconds: 2_630_016}, true},
		{"y", scale{seconds: 31_557_600}, true},
		{"", scale{}, false},
		{"Y", scale{}, false},
		{"µs", scale{}, false},
		{"nights", scale{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.suffix, func(t *testing.T) {
			got, ok := lookupUnit(tt.suffix)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("lookupUnit(%q) = (%+v, %v), want (%+v, %v)", tt.suffix, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestUnitsParse(t *testing.T) {
	for _, u := range Units() {
		for _, suffix := range u.Suffixes {
			got, err := ParseDuration("1" + suffix)
			if err != nil {
				t.Errorf("ParseDuration(%q) unexpected error: %v", "1"+suffix, err)
				continue
			}
			if got != u.Scale() {
				t.Errorf("ParseDuration(%q) = %v, want %v", "1"+suffix, got, u.Scale())
			}
		}
	}
}

func TestUnitsReturnsCopy(t *testing.T) {
	got := Units()
	got[0].Suffixes[0] = "changed"

	if Units()[0].Suffixes[0] != "ns" {
		t.Errorf("Units() shares storage with the unit table")
	}
	if _, ok := lookupUnit("ns"); !ok {
		t.Errorf("lookupUnit(%q) failed after modifying Units()", "ns")
	}
}
