package validation

import (
	"errors"
	"regexp"
)

// EmailMaxLength matches the width of the email column.
const EmailMaxLength = 120

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// ErrInvalidEmail is returned for strings that are not shaped like local-part@domain.tld.
var ErrInvalidEmail = errors.New("Not a valid email address.")

// ValidateEmail checks the shape of an email address. It does not resolve the domain.
func ValidateEmail(s string) error {
	if !emailRegex.MatchString(s) {
		return ErrInvalidEmail
	}
	return nil
}
