package validator

import (
	"fmt"
	"strings"
	"unicode"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

func LenString(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d characters long", exact),
			TranslationKey: "validation.exact_length",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// ValidAlpha validates that a string is non-empty and contains only letters.
func ValidAlpha(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && !strings.ContainsFunc(value, func(r rune) bool {
				return !unicode.IsLetter(r)
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only letters",
			TranslationKey: "validation.alpha",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidAlphanumeric validates that a string is non-empty and contains only
// letters and digits.
func ValidAlphanumeric(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && !strings.ContainsFunc(value, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only letters and numbers",
			TranslationKey: "validation.alphanumeric",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidNumericString validates that a string is non-empty and contains only
// ASCII digits.
func ValidNumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && !strings.ContainsFunc(value, func(r rune) bool {
				return r < '0' || r > '9'
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			TranslationKey: "validation.numeric_string",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidUppercase validates that every letter in a non-empty string is uppercase.
func ValidUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && !strings.ContainsFunc(value, unicode.IsLower)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain lowercase letters",
			TranslationKey: "validation.uppercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidLowercase validates that every letter in a non-empty string is lowercase.
func ValidLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && !strings.ContainsFunc(value, unicode.IsUpper)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain uppercase letters",
			TranslationKey: "validation.lowercase",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ContainsSubstring validates that a string contains the given substring.
func ContainsSubstring(field, value, substring string) Rule {
	return Rule{
		Check: func() bool {
			return strings.Contains(value, substring)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain %q", substring),
			TranslationKey: "validation.contains",
			TranslationValues: map[string]any{
				"field":     field,
				"substring": substring,
			},
		},
	}
}

// Convenience aliases for common string validation cases

func Required(field, value string) Rule {
	return RequiredString(field, value)
}

func MinLen(field, value string, min int) Rule {
	return MinLenString(field, value, min)
}

func MaxLen(field, value string, max int) Rule {
	return MaxLenString(field, value, max)
}

func Len(field, value string, exact int) Rule {
	return LenString(field, value, exact)
}
