package validator

import (
	"fmt"
	"regexp"
)

// space is the body of a character class matching what browsers treat as \s.
// RE2's \s only covers ASCII, so the set is spelled out. Keep in sync with sanitizer.IsSpace.
const space = `\t\n\v\f\r \x{A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	personNameRegex   = regexp.MustCompile(`^[a-zA-Z` + space + `'-]+$`)
	emailRegex        = regexp.MustCompile(`^[^@` + space + `]+@[^@` + space + `]+\.[^@` + space + `]+$`)
	phoneRegex        = regexp.MustCompile(`^[0-9+\-` + space + `()]{10,}$`)
)

// Matches validates value against a precompiled pattern.
// Patterns are compiled once by the caller; description ends up in the default message.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// Alphanumeric validates that value consists of ASCII letters and digits only.
func Alphanumeric(field, value string) Rule {
	return Matches(field, value, alphanumericRegex, "alphanumeric").
		WithMessage("must contain only letters and numbers")
}

// PersonName validates ASCII letters, whitespace, hyphens and apostrophes.
func PersonName(field, value string) Rule {
	return Matches(field, value, personNameRegex, "person name").
		WithMessage("must contain only letters, spaces, hyphens, and apostrophes")
}

// Email validates the loose local@domain.tld shape: no whitespace, one "@", a dot in the domain.
// Deliverability is not checked.
func Email(field, value string) Rule {
	return Matches(field, value, emailRegex, "email").
		WithMessage("must be a valid email address")
}

// Phone validates at least 10 characters of digits, spaces, "+", "-", "(" and ")".
func Phone(field, value string) Rule {
	return Matches(field, value, phoneRegex, "phone").
		WithMessage("must be a valid phone number")
}
