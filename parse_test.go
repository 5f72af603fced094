package betpro

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2.5", want: "2.5"},
		{in: "2,5", want: "2.5"},
		{in: " 1500,75 ", want: "1500.75"},
		{in: "-10", want: "-10"},
		{in: "0", want: "0"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.2.3", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseAmount(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && !got.Equal(dec(t, tc.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountOr(t *testing.T) {
	def := dec(t, "1")
	if got := parseAmountOr("garbage", def); !got.Equal(def) {
		t.Errorf("parseAmountOr(garbage) = %s, want the default 1", got)
	}
	if got := parseAmountOr("3,5", def); !got.Equal(dec(t, "3.5")) {
		t.Errorf("parseAmountOr(3,5) = %s, want 3.5", got)
	}
}
