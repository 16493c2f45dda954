package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// ValidEmail validates that a string is a valid email address using RFC 5322.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// SMTP path limit; longer addresses are undeliverable anyway.
			if len(value) > 254 {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// Additional validation for typical web use
			email := addr.Address
			parts := strings.Split(email, "@")
			if len(parts) != 2 {
				return false
			}

			localPart := parts[0]
			domain := parts[1]

			if localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmailWithDomain validates an email address and restricts its domain to
// an allow-list.
func ValidEmailWithDomain(field, value string, allowedDomains []string) Rule {
	return Rule{
		Check: func() bool {
			if !ValidEmail(field, value).Check() {
				return false
			}
			_, domain, ok := strings.Cut(value, "@")
			return ok && slices.Contains(allowedDomains, domain)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be an email address at: %s", strings.Join(allowedDomains, ", ")),
			TranslationKey: "validation.email_domain",
			TranslationValues: map[string]any{
				"field":   field,
				"domains": allowedDomains,
			},
		},
	}
}

// ValidURL validates that a string is a valid URL.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}

			// Must have a scheme and host
			if u.Scheme == "" || u.Host == "" {
				return false
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURLWithScheme validates that a string is a valid URL with one of the
// given schemes.
func ValidURLWithScheme(field, value string, schemes []string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			if u.Host == "" {
				return false
			}
			return slices.Contains(schemes, u.Scheme)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", ")),
			TranslationKey: "validation.url_scheme",
			TranslationValues: map[string]any{
				"field":   field,
				"schemes": schemes,
			},
		},
	}
}

// ValidHTTPSURL validates that a string is a valid https URL.
func ValidHTTPSURL(field, value string) Rule {
	rule := ValidURLWithScheme(field, value, []string{"https"})
	rule.Error = ValidationError{
		Field:          field,
		Message:        "must be a valid https URL",
		TranslationKey: "validation.url_https",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
	return rule
}
