package language

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"eng", "English"},
		{"English", "English"},
		{"es", "Spanish"},
		{"spa", "Spanish"},
		{"Español", "Spanish"},
		{"fre", "French"},
		{"fra", "French"},
		{"ger", "German"},
		{"chi", "Chinese"},
		{"Mandarin", "Chinese"},
		{" nl ", "Dutch"},
		{"Klingon", "Klingon"},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLookupRejectsUnknown(t *testing.T) {
	for _, value := range []string{"", "xx", "elvish"} {
		if name, ok := Lookup(value); ok {
			t.Errorf("Lookup(%q) = %q, want miss", value, name)
		}
	}
}
