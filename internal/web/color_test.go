package web

import "testing"

func TestContrastColor(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{"white gets black text", "#FFFFFF", "#000000"},
		{"black gets white text", "#000000", "#FFFFFF"},
		{"light yellow gets black", "#FFEE58", "#000000"},
		{"dark navy gets white", "#1F2937", "#FFFFFF"},
		{"lowercase accepted", "#ffffff", "#000000"},
		{"malformed falls back to white", "azul", "#FFFFFF"},
		{"short hex falls back", "#FFF", "#FFFFFF"},
		{"empty falls back", "", "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contrastColor(tt.hex); got != tt.want {
				t.Errorf("contrastColor(%q) = %q, want %q", tt.hex, got, tt.want)
			}
		})
	}
}
