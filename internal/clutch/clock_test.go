package clutch

import "testing"

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		clock    string
		expected int
	}{
		{"PT04M32.00S", 4},
		{"PT12M00.00S", 12},
		{"PT00M05.30S", 0},
		{"PT5M1S", 5},
		{"PT11M", 11},
		{"", 0},
		{"4:32", 0},
		{"PTxxM10.00S", 0},
		{"xPT04M32.00S", 0},
		{"PT99999999999999999999M00.00S", 0},
	}

	for _, tc := range cases {
		if got := ParseMinutes(tc.clock); got != tc.expected {
			t.Fatalf("clock %q: expected %d, got %d", tc.clock, tc.expected, got)
		}
	}
}
