package validator

import "slices"

// CurrencyOptions describes one locale's currency format conventions. A zero
// value is a valid (if austere) configuration; DefaultCurrencyOptions returns
// the common US dollar format. Options values are treated as immutable: the
// With* setters return updated copies and validation never mutates the value
// it is given, so a single options value can safely be shared across
// goroutines and reused for any number of calls.
//
// No field combination is rejected up front. A configuration that cannot
// produce a working grammar (an empty DigitsAfterDecimal, a symbol colliding
// with a separator, or — a documented quirk — ThousandsSeparator equal to
// DecimalSeparator, which yields an ambiguous grammar) simply fails every
// validation instead of returning an error.
type CurrencyOptions struct {
	// Symbol is the currency symbol, possibly multi-character (e.g. "kr.").
	Symbol string

	// RequireSymbol makes the symbol mandatory rather than optional.
	RequireSymbol bool

	// AllowSpaceAfterSymbol permits one space between the symbol and the amount.
	AllowSpaceAfterSymbol bool

	// SymbolAfterDigits places the symbol after the amount instead of before it.
	SymbolAfterDigits bool

	// AllowNegatives accepts negative amounts. When false, every other
	// sign-related option is inert.
	AllowNegatives bool

	// ParensForNegatives renders negatives as "(amount)" instead of a sign
	// glyph; it overrides the sign placement options below.
	ParensForNegatives bool

	// NegativeSignBeforeDigits puts the sign glyph immediately before the
	// digits (after the symbol, when the symbol leads).
	NegativeSignBeforeDigits bool

	// NegativeSignAfterDigits puts the sign glyph immediately after the digits.
	NegativeSignAfterDigits bool

	// AllowNegativeSignPlaceholder tolerates an optional space where a sign
	// could appear, so "R 123" and "R-123" are both accepted.
	AllowNegativeSignPlaceholder bool

	// ThousandsSeparator groups the whole amount in blocks of three.
	ThousandsSeparator rune

	// DecimalSeparator separates the fractional part.
	DecimalSeparator rune

	// AllowDecimal permits a fractional part; RequireDecimal demands one.
	AllowDecimal   bool
	RequireDecimal bool

	// DigitsAfterDecimal lists the acceptable fractional-digit counts. It
	// must be non-empty for the grammar to build; an empty list makes every
	// validation fail.
	DigitsAfterDecimal []int

	// AllowSpaceAfterDigits tolerates one trailing space after the amount.
	AllowSpaceAfterDigits bool
}

// DefaultCurrencyOptions returns the US dollar format: optional "$" symbol,
// comma grouping, dot decimal point, exactly two fractional digits, and
// negatives written with a leading sign.
func DefaultCurrencyOptions() CurrencyOptions {
	return CurrencyOptions{
		Symbol:             "$",
		AllowNegatives:     true,
		ThousandsSeparator: ',',
		DecimalSeparator:   '.',
		AllowDecimal:       true,
		DigitsAfterDecimal: []int{2},
	}
}

func (o CurrencyOptions) WithSymbol(symbol string) CurrencyOptions {
	o.Symbol = symbol
	return o
}

func (o CurrencyOptions) WithRequireSymbol(require bool) CurrencyOptions {
	o.RequireSymbol = require
	return o
}

func (o CurrencyOptions) WithSpaceAfterSymbol(allow bool) CurrencyOptions {
	o.AllowSpaceAfterSymbol = allow
	return o
}

func (o CurrencyOptions) WithSymbolAfterDigits(after bool) CurrencyOptions {
	o.SymbolAfterDigits = after
	return o
}

func (o CurrencyOptions) WithNegatives(allow bool) CurrencyOptions {
	o.AllowNegatives = allow
	return o
}

func (o CurrencyOptions) WithParensForNegatives(useParens bool) CurrencyOptions {
	o.ParensForNegatives = useParens
	return o
}

func (o CurrencyOptions) WithNegativeSignBeforeDigits(before bool) CurrencyOptions {
	o.NegativeSignBeforeDigits = before
	return o
}

func (o CurrencyOptions) WithNegativeSignAfterDigits(after bool) CurrencyOptions {
	o.NegativeSignAfterDigits = after
	return o
}

func (o CurrencyOptions) WithNegativeSignPlaceholder(allow bool) CurrencyOptions {
	o.AllowNegativeSignPlaceholder = allow
	return o
}

func (o CurrencyOptions) WithThousandsSeparator(sep rune) CurrencyOptions {
	o.ThousandsSeparator = sep
	return o
}

func (o CurrencyOptions) WithDecimalSeparator(sep rune) CurrencyOptions {
	o.DecimalSeparator = sep
	return o
}

func (o CurrencyOptions) WithDecimal(allow bool) CurrencyOptions {
	o.AllowDecimal = allow
	return o
}

func (o CurrencyOptions) WithRequireDecimal(require bool) CurrencyOptions {
	o.RequireDecimal = require
	return o
}

// WithDigitsAfterDecimal clones the slice so the returned options value does
// not alias the caller's backing array.
func (o CurrencyOptions) WithDigitsAfterDecimal(digits []int) CurrencyOptions {
	o.DigitsAfterDecimal = slices.Clone(digits)
	return o
}

func (o CurrencyOptions) WithSpaceAfterDigits(allow bool) CurrencyOptions {
	o.AllowSpaceAfterDigits = allow
	return o
}

// IsCurrency reports whether value is a syntactically valid monetary amount
// for the given format options (DefaultCurrencyOptions when omitted).
//
// Validation runs in two stages. A fixed sequence of guard checks rejects
// shapes the synthesized grammar cannot exclude on its own, then the value is
// matched in full against a grammar derived from the options. Misconfigured
// options never panic or surface an error; they make IsCurrency return false.
//
//	validator.IsCurrency("$10,123.45")                      // true
//	validator.IsCurrency("$ 32.50")                         // false
//	euro := validator.DefaultCurrencyOptions().
//		WithSymbol("€").
//		WithThousandsSeparator('.').
//		WithDecimalSeparator(',')
//	validator.IsCurrency("€1.234,56", euro)                 // true
func IsCurrency(value string, opts ...CurrencyOptions) bool {
	o := DefaultCurrencyOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	if !currencyGuards(value, o) {
		return false
	}

	re, err := currencyPattern(o)
	if err != nil {
		return false
	}

	return re.MatchString(value)
}

// ValidCurrency wraps IsCurrency in a Rule so currency checks compose with
// Apply alongside the other validators.
func ValidCurrency(field, value string, opts CurrencyOptions) Rule {
	return Rule{
		Check: func() bool {
			return IsCurrency(value, opts)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid currency amount",
			TranslationKey: "validation.currency",
			TranslationValues: map[string]any{
				"field":  field,
				"symbol": opts.Symbol,
			},
		},
	}
}
