package errors

import (
	"strings"
	"testing"
)

func TestValidateFontName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "Roboto", false},
		{"valid with spaces", "Noto Sans Arabic", false},
		{"valid non-ascii", "源ノ角ゴシック", false},
		{"max length", strings.Repeat("a", MaxFontNameLength), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxFontNameLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"leading space", " Roboto", true},
		{"trailing space", "Roboto ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFontName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFontName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFont) {
				t.Errorf("ValidateFontName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFont)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "fonts.toml", false},
		{"nested", "conf/fonts.json", false},
		{"absolute", "/etc/fontroute/fonts.toml", false},
		{"parent dir", "../fonts.toml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "fonts\x00.toml", true},
		{"tab", "fonts\t.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
