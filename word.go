package wordinfo

import (
	"strings"
	"unicode"
)

// ValidateWord returns an error if word is not a single non-empty token.
// Every lookup operation calls it before touching the network or a dataset.
func ValidateWord(word string) error {
	if strings.TrimSpace(word) == "" {
		return Errorf(EINVALID, "word required")
	}
	if strings.IndexFunc(word, unicode.IsSpace) >= 0 {
		return Errorf(EINVALID, "word %q must be a single token", word)
	}
	return nil
}

// ParseWord converts a dynamically typed value into a validated word.
// Values that are not strings are rejected with a message naming their type.
func ParseWord(v any) (string, error) {
	word, ok := v.(string)
	if !ok {
		return "", Errorf(EINVALID, "word must be a string, not %T", v)
	}
	if err := ValidateWord(word); err != nil {
		return "", err
	}
	return word, nil
}
