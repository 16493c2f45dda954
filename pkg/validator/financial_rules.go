package validator

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
)

// CardIssuer identifies a credit card network by its number prefix.
type CardIssuer string

const (
	CardIssuerVisa       CardIssuer = "visa"
	CardIssuerMasterCard CardIssuer = "mastercard"
	CardIssuerAmex       CardIssuer = "amex"
	CardIssuerDiscover   CardIssuer = "discover"
	CardIssuerUnknown    CardIssuer = "unknown"
)

// CreditCardIssuer classifies a card number by its issuer prefix. It does not
// verify the checksum; combine with ValidCreditCardChecksum for that.
func CreditCardIssuer(value string) CardIssuer {
	cleaned := cleanCardNumber(value)

	switch {
	case strings.HasPrefix(cleaned, "4"):
		return CardIssuerVisa
	case len(cleaned) >= 2 && cleaned[0] == '5' && cleaned[1] >= '1' && cleaned[1] <= '5':
		return CardIssuerMasterCard
	case strings.HasPrefix(cleaned, "34"), strings.HasPrefix(cleaned, "37"):
		return CardIssuerAmex
	case strings.HasPrefix(cleaned, "6011"), strings.HasPrefix(cleaned, "65"):
		return CardIssuerDiscover
	default:
		return CardIssuerUnknown
	}
}

// ValidCreditCardChecksum validates a credit card number using the Luhn
// algorithm. Spaces and dashes are ignored.
func ValidCreditCardChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			cleaned := cleanCardNumber(value)

			if len(cleaned) < 13 || len(cleaned) > 19 {
				return false
			}

			for _, c := range cleaned {
				if c < '0' || c > '9' {
					return false
				}
			}

			return luhnChecksum(cleaned)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid credit card number",
			TranslationKey: "validation.credit_card",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCreditCardIssuer validates that a card number belongs to one of the
// accepted issuers.
func ValidCreditCardIssuer(field, value string, accepted []CardIssuer) Rule {
	return Rule{
		Check: func() bool {
			issuer := CreditCardIssuer(value)
			for _, a := range accepted {
				if issuer == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "card issuer is not accepted",
			TranslationKey: "validation.credit_card_issuer",
			TranslationValues: map[string]any{
				"field":   field,
				"issuers": accepted,
			},
		},
	}
}

// ValidCurrencyCode validates that a string is a well-formed ISO 4217
// currency code.
func ValidCurrencyCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != 3 {
				return false
			}
			_, err := currency.ParseISO(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid ISO 4217 currency code",
			TranslationKey: "validation.currency_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func PositiveAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount must be positive",
			TranslationKey: "validation.positive_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func NonNegativeAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount cannot be negative",
			TranslationKey: "validation.non_negative_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func AmountRange[T Numeric](field string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("amount must be between %v and %v", min, max),
			TranslationKey: "validation.amount_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// DecimalPrecision prevents floating-point precision issues in financial calculations.
func DecimalPrecision(field string, value float64, maxDecimals int) Rule {
	return Rule{
		Check: func() bool {
			multiplier := math.Pow(10, float64(maxDecimals))
			return math.Floor(value*multiplier) == value*multiplier
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("value cannot have more than %d decimal places", maxDecimals),
			TranslationKey: "validation.decimal_precision",
			TranslationValues: map[string]any{
				"field":        field,
				"max_decimals": maxDecimals,
			},
		},
	}
}

func cleanCardNumber(value string) string {
	return strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
}

// luhnChecksum expects an all-digit string.
func luhnChecksum(number string) bool {
	if number == "" {
		return false
	}

	sum := 0
	double := false

	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')

		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}
