package errors

import (
	"strings"
	"unicode"
)

// MaxFontNameLength is the longest accepted font name, in bytes.
const MaxFontNameLength = 256

// ValidateFontName validates a font family name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No leading or trailing whitespace
//   - Maximum length of 256 bytes
func ValidateFontName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFont, "font name cannot be empty")
	}

	if len(name) > MaxFontNameLength {
		return New(ErrCodeInvalidFont, "font name too long (max %d characters)", MaxFontNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFont, "font name contains invalid control characters")
		}
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidFont, "font name %q has leading or trailing whitespace", name)
	}

	return nil
}

// ValidatePath validates a local file path given on the command line or in
// the configuration.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
