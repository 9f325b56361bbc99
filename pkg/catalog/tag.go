package catalog

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/matzehuels/fontroute/pkg/errors"
)

// CanonicalTag returns the canonical spelling of a tag name.
//
// Four-letter names are read as ISO 15924 script codes ("arab" → "Arab").
// Everything else must be a BCP 47 language tag ("en-us" → "en-US").
func CanonicalTag(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New(errors.ErrCodeInvalidTag, "tag cannot be empty")
	}
	if isScriptCode(s) {
		scr, err := language.ParseScript(s)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidTag, err, "invalid script %q", s)
		}
		return scr.String(), nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidTag, err, "invalid language tag %q", s)
	}
	return tag.String(), nil
}

func isScriptCode(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
