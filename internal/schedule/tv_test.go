package schedule

import "testing"

func TestNormalizeTV(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Big Ten Network", "btn"},
		{"BTN", "btn"},
		{"FS1", "fs1"},
		{"  CBS  ", "cbs"},
		{"ESPN+", "espn"},
		{"Peacock", "peacock"},
		{"Husker Radio Network", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeTV(tt.input); got != tt.expected {
				t.Errorf("NormalizeTV(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
