package styles

import (
	"testing"

	"nathanbeddoewebdev/twui/internal/theme"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   theme.HSL
		want string
	}{
		{"black", theme.HSL{H: 0, S: 0, L: 0}, "#000000"},
		{"white", theme.HSL{H: 0, S: 0, L: 100}, "#ffffff"},
		{"red", theme.HSL{H: 0, S: 100, L: 50}, "#ff0000"},
		{"blue", theme.HSL{H: 240, S: 100, L: 50}, "#0000ff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
