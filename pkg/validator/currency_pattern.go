package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/asnimansari/validator-go/pkg/cache"
)

// Compiled currency grammars are memoized process-wide. The cache is
// append-only and keyed by a canonical rendering of the options, so repeated
// calls with the same format skip recompilation without any observable
// behavior change.
var currencyPatterns = cache.NewMemo[string, *regexp.Regexp]()

// currencyPattern returns the compiled grammar for the given options,
// building and caching it on first use. An empty DigitsAfterDecimal list is a
// configuration error and fails the build; so does any options combination
// that assembles into an uncompilable expression.
func currencyPattern(o CurrencyOptions) (*regexp.Regexp, error) {
	if len(o.DigitsAfterDecimal) == 0 {
		return nil, fmt.Errorf("%w: digits after decimal must not be empty", ErrInvalidOptions)
	}

	return currencyPatterns.GetOrCompute(o.cacheKey(), func() (*regexp.Regexp, error) {
		return regexp.Compile(buildCurrencyPattern(o))
	})
}

func (o CurrencyOptions) cacheKey() string {
	return fmt.Sprintf("%q|%t%t%t|%t%t%t%t%t|%U%U|%t%t|%v|%t",
		o.Symbol, o.RequireSymbol, o.AllowSpaceAfterSymbol, o.SymbolAfterDigits,
		o.AllowNegatives, o.ParensForNegatives, o.NegativeSignBeforeDigits,
		o.NegativeSignAfterDigits, o.AllowNegativeSignPlaceholder,
		o.ThousandsSeparator, o.DecimalSeparator,
		o.AllowDecimal, o.RequireDecimal, o.DigitsAfterDecimal,
		o.AllowSpaceAfterDigits)
}

// buildCurrencyPattern assembles the grammar in a fixed order: fractional
// digit alternation, whole-amount alternation, decimal fragment, sign
// placement, spacing, symbol attachment, parenthetical or default sign
// wrapping, and finally whole-string anchoring. Later steps wrap or prefix
// what the earlier steps produced, so the order is load-bearing.
func buildCurrencyPattern(o CurrencyOptions) string {
	var decimalDigits strings.Builder
	for i, n := range o.DigitsAfterDecimal {
		if i > 0 {
			decimalDigits.WriteByte('|')
		}
		fmt.Fprintf(&decimalDigits, `\d{%d}`, n)
	}

	// The symbol may carry metacharacters ("$", "kr.") and is always matched
	// literally.
	symbol := "(" + regexp.QuoteMeta(o.Symbol) + ")"
	if !o.RequireSymbol {
		symbol += "?"
	}

	// Three acceptable whole-amount shapes: a lone zero, ungrouped digits
	// with no leading zero, or one-to-three leading digits followed by
	// properly separated groups of exactly three. Malformed grouping such as
	// "12,34" or "1234,567" matches none of them.
	thousands := escapeSeparator(o.ThousandsSeparator)
	pattern := fmt.Sprintf(`(0|[1-9]\d*|[1-9]\d{0,2}(%s\d{3})*)?`, thousands)

	if o.AllowDecimal || o.RequireDecimal {
		decimal := fmt.Sprintf(`(%s(%s))`, escapeSeparator(o.DecimalSeparator), decimalDigits.String())
		if !o.RequireDecimal {
			decimal += "?"
		}
		pattern += decimal
	}

	// Explicit sign placement relative to the digits. The default convention
	// (sign before the symbol) is handled after symbol attachment below.
	if o.AllowNegatives && !o.ParensForNegatives {
		switch {
		case o.NegativeSignAfterDigits:
			pattern += "-?"
		case o.NegativeSignBeforeDigits:
			pattern = "-?" + pattern
		}
	}

	// Spacing resolves before the symbol attaches. The three options are
	// mutually exclusive in effect: only the first set one applies.
	switch {
	case o.AllowNegativeSignPlaceholder:
		pattern = `( ?-?)?` + pattern
	case o.AllowSpaceAfterSymbol:
		pattern = ` ?` + pattern
	case o.AllowSpaceAfterDigits:
		pattern += ` ?`
	}

	if o.SymbolAfterDigits {
		pattern += symbol
	} else {
		pattern = symbol + pattern
	}

	if o.AllowNegatives {
		if o.ParensForNegatives {
			// Either the whole expression in parentheses or the whole
			// expression bare, never partially wrapped.
			pattern = `(\(` + pattern + `\)|` + pattern + `)`
		} else if !o.NegativeSignBeforeDigits && !o.NegativeSignAfterDigits {
			pattern = "-?" + pattern
		}
	}

	return "^" + pattern + "$"
}

// escapeSeparator renders a separator for literal matching. Alphanumerics and
// underscore are safe as-is; nearly everything else a locale would pick
// (".", ",", " ", "'") is a metacharacter or benefits from explicit escaping.
func escapeSeparator(sep rune) string {
	if unicode.IsLetter(sep) || unicode.IsDigit(sep) || sep == '_' {
		return string(sep)
	}
	return `\` + string(sep)
}

// currencyGuards runs the hand-written checks that compensate for the grammar
// engine's lack of lookaround, in a fixed order with fail-fast semantics.
// Each check is a pure function of the value and options.
func currencyGuards(value string, o CurrencyOptions) bool {
	if value == "" {
		return false
	}

	if strings.HasPrefix(value, " ") || strings.HasSuffix(value, " ") {
		return false
	}

	// A sign glyph followed by a space is never a valid opening.
	if strings.HasPrefix(value, "- ") {
		return false
	}

	if !strings.ContainsAny(value, "0123456789") {
		return false
	}

	// With no spacing allowance in play, a space directly after the symbol is
	// structurally impossible; the grammar alone cannot see that boundary.
	if !o.AllowSpaceAfterSymbol && !o.AllowNegativeSignPlaceholder &&
		strings.Contains(value, o.Symbol+" ") {
		return false
	}

	// The placeholder admits a space OR a sign after the symbol, not a space
	// and then a sign.
	if o.AllowNegativeSignPlaceholder && !o.AllowSpaceAfterSymbol &&
		strings.Contains(value, o.Symbol+" -") {
		return false
	}

	// Nothing may end in an amount followed by a bare space: strip one
	// trailing symbol and one trailing closing paren, then look for it.
	if !o.AllowSpaceAfterDigits && !o.AllowNegativeSignPlaceholder {
		trimmed := strings.TrimSuffix(value, o.Symbol)
		trimmed = strings.TrimSuffix(trimmed, ")")
		if strings.HasSuffix(trimmed, " ") {
			return false
		}
	}

	return true
}
