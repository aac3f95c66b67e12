package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"rgb(153,51,0)", RGB(153, 51, 0), false},
		{"rgb( 255, 153, 204 )", RGB(255, 153, 204), false},
		{"#00ff00", RGB(0, 255, 0), false},
		{"#FFFF99", RGB(255, 255, 153), false},
		{"rgb(256,0,0)", Color{}, true},
		{"rgb(1,2)", Color{}, true},
		{"#12345", Color{}, true},
		{"red", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) expected error, got %+v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %+v, expected %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if h := RGB(153, 51, 0).Hex(); h != "#993300" {
		t.Errorf("Hex() = %q, expected #993300", h)
	}
	if ColorDefault.IsSet() || ColorDefault.Hex() != "" {
		t.Error("default color should be unset with empty hex")
	}
}
