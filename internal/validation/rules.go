// Package validation holds the input rules for registration and the clothes catalog.
// Rules are jellydator/validation rules so they compose with the library's own.
package validation

import (
	"fmt"
	"unicode/utf8"

	validation "github.com/jellydator/validation"
)

// lengthRule bounds a string's rune count. Unlike validation.RuneLength
// it also rejects the empty string.
type lengthRule struct {
	min, max int
}

func runeLength(min, max int) validation.Rule {
	return lengthRule{min: min, max: max}
}

// Validate implements validation.Rule.
func (r lengthRule) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_length_invalid", "must be a string")
	}
	if n := utf8.RuneCountInString(s); n < r.min || n > r.max {
		return validation.NewError(
			"validation_length_out_of_range",
			fmt.Sprintf("Length must be between %d and %d.", r.min, r.max),
		)
	}
	return nil
}

// stringRule adapts a plain string check to validation.Rule.
func stringRule(check func(string) error) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		return check(s)
	})
}

// collect runs every rule against value and returns the message of each failure.
func collect(value interface{}, rules ...validation.Rule) []string {
	var msgs []string
	for _, rule := range rules {
		if err := validation.Validate(value, rule); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	return msgs
}
