package validation

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/jellydator/validation"
)

// SpecialCharacters is the set of runes that satisfy the special character rule.
const SpecialCharacters = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Password length bounds, counted in runes.
const (
	PasswordMinLength = 8
	PasswordMaxLength = 20
)

// PasswordMaxBytes is the longest input bcrypt accepts.
const PasswordMaxBytes = 72

// MsgPasswordTooLong is reported when a password fits the rune bound but not bcrypt's byte bound.
const MsgPasswordTooLong = "Password must not exceed 72 bytes."

// PolicyRule identifies one password policy requirement.
// Rules are independent: a single rune may satisfy several of them.
type PolicyRule string

// Password policy rules
const (
	PolicyUppercase  PolicyRule = "uppercase"
	PolicyNumbers    PolicyRule = "numbers"
	PolicySpecial    PolicyRule = "special"
	PolicyNonLetters PolicyRule = "nonletters"
)

// PolicyRules is the fixed rule set every password is checked against.
var PolicyRules = []PolicyRule{PolicyUppercase, PolicyNumbers, PolicySpecial, PolicyNonLetters}

// CheckPasswordPolicy returns the rules password violates, in PolicyRules order.
// A nil result means the password passes. Length is not checked here.
func CheckPasswordPolicy(password string) []PolicyRule {
	var violated []PolicyRule
	for _, rule := range PolicyRules {
		if !rule.satisfiedBy(password) {
			violated = append(violated, rule)
		}
	}
	return violated
}

func (p PolicyRule) satisfiedBy(s string) bool {
	switch p {
	case PolicyUppercase:
		return strings.IndexFunc(s, unicode.IsUpper) >= 0
	case PolicyNumbers:
		return strings.IndexFunc(s, unicode.IsDigit) >= 0
	case PolicySpecial:
		return strings.ContainsAny(s, SpecialCharacters)
	case PolicyNonLetters:
		return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) }) >= 0
	}
	return false
}

// Message is the human readable form of the rule.
func (p PolicyRule) Message() string {
	switch p {
	case PolicyUppercase:
		return "Password must contain at least 1 uppercase letter."
	case PolicyNumbers:
		return "Password must contain at least 1 digit."
	case PolicySpecial:
		return "Password must contain at least 1 special character."
	case PolicyNonLetters:
		return "Password must contain at least 1 non-letter character."
	}
	return "Password does not satisfy " + string(p) + "."
}

// Validate implements validation.Rule.
func (p PolicyRule) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_policy", "password must be a string")
	}
	if !p.satisfiedBy(s) {
		return validation.NewError("validation_password_"+string(p), p.Message())
	}
	return nil
}

// passwordRules composes the length bound with every policy rule.
func passwordRules() []validation.Rule {
	rules := []validation.Rule{runeLength(PasswordMinLength, PasswordMaxLength), stringRule(checkPasswordBytes)}
	for _, p := range PolicyRules {
		rules = append(rules, p)
	}
	return rules
}

// checkPasswordBytes only fires inside the rune bound, so an overlong password gets a single length message.
func checkPasswordBytes(s string) error {
	if utf8.RuneCountInString(s) <= PasswordMaxLength && len(s) > PasswordMaxBytes {
		return errors.New(MsgPasswordTooLong)
	}
	return nil
}
