package validation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Full name length bounds, counted in runes.
const (
	FullNameMinLength = 3
	FullNameMaxLength = 255

	nameTokenMinLength = 3
)

var (
	// ErrNameTokens is returned when a name does not split into exactly two tokens.
	ErrNameTokens = errors.New("First and last name are mandatory.")
	// ErrNameTooShort is returned when the first or the last name is too short.
	ErrNameTooShort = errors.New("Each name should contain at least 3 characters.")
)

// ValidateFullName checks that name is a first and a last name separated by whitespace.
func ValidateFullName(name string) error {
	tokens := strings.Fields(name)
	if len(tokens) != 2 {
		return ErrNameTokens
	}
	for _, t := range tokens {
		if utf8.RuneCountInString(t) < nameTokenMinLength {
			return ErrNameTooShort
		}
	}
	return nil
}
