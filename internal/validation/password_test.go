package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		violated []PolicyRule
	}{
		{name: "all rules satisfied", password: "Abcdef1!", violated: nil},
		{name: "missing uppercase", password: "abcdef1!", violated: []PolicyRule{PolicyUppercase}},
		{name: "missing digit", password: "Abcdefg!", violated: []PolicyRule{PolicyNumbers}},
		{name: "missing special", password: "Abcdefg1", violated: []PolicyRule{PolicySpecial}},
		{
			name:     "letters only",
			password: "Abcdefgh",
			violated: []PolicyRule{PolicyNumbers, PolicySpecial, PolicyNonLetters},
		},
		{
			name:     "lowercase only",
			password: "weak",
			violated: []PolicyRule{PolicyUppercase, PolicyNumbers, PolicySpecial, PolicyNonLetters},
		},
		{
			name:     "empty",
			password: "",
			violated: []PolicyRule{PolicyUppercase, PolicyNumbers, PolicySpecial, PolicyNonLetters},
		},
		{name: "digit alone satisfies nonletters", password: "abc1", violated: []PolicyRule{PolicyUppercase, PolicySpecial}},
		{name: "special alone satisfies nonletters", password: "abc#", violated: []PolicyRule{PolicyUppercase, PolicyNumbers}},
		{name: "length is not checked", password: "A1!", violated: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.violated, CheckPasswordPolicy(tt.password))
		})
	}
}

func TestCheckPasswordPolicy_MissingClassAlwaysReported(t *testing.T) {
	passwords := []string{"abcdef1!", "ABCDEFG!", "ABCdefgh1", "zzzzzzzz", "12345678", "!!!!!!!!"}
	for _, p := range passwords {
		t.Run(p, func(t *testing.T) {
			assert.NotEmpty(t, CheckPasswordPolicy(p))
		})
	}
}

func TestPolicyRule_Validate(t *testing.T) {
	assert.NoError(t, PolicyUppercase.Validate("A"))
	assert.EqualError(t, PolicyUppercase.Validate("a"), PolicyUppercase.Message())
	assert.Error(t, PolicyNumbers.Validate(42))
}

func TestPasswordRules_LengthBounds(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErrs int
	}{
		{name: "min length", password: "Abcdef1!", wantErrs: 0},
		{name: "max length", password: "Abcdefghijklmnopq1!x", wantErrs: 0},
		{name: "too short", password: "Abc1!", wantErrs: 1},
		{name: "too long", password: "Abcdefghijklmnopq1!xy", wantErrs: 1},
		{name: "length counted in runes", password: "Äbcdéf1!", wantErrs: 0},
		{name: "within runes but over bcrypt bytes", password: "Ä１!" + strings.Repeat("😀", 17), wantErrs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, collect(tt.password, passwordRules()...), tt.wantErrs)
		})
	}
}
