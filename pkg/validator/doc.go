// Package validator provides composable, stateless validation helpers for
// common data formats: configurable currency strings, email addresses, URLs,
// ISO 8601 dates and times, credit card numbers, per-locale mobile phone
// numbers, and generic string/numeric predicates.
//
// Every exported validation function constructs and returns a Rule value
// pairing a boolean Check with translation-friendly error metadata. Rules are
// evaluated with Apply, which aggregates failures into a ValidationErrors
// slice satisfying the error interface:
//
//	err := validator.Apply(
//		validator.ValidEmail("email", email),
//		validator.ValidCurrency("price", price, validator.DefaultCurrencyOptions()),
//	)
//
// # Currency validation
//
// Unlike the fixed-pattern validators, currency validation synthesizes its
// matching grammar per call from CurrencyOptions: symbol text and placement,
// grouping and decimal separators, sign conventions (including parenthetical
// negatives), spacing allowances, and acceptable fractional-digit counts.
// Because the grammar engine has no lookaround, a fixed sequence of
// procedural guard checks runs before the pattern match to reject shapes the
// grammar alone cannot exclude. IsCurrency is the direct boolean entry point;
// ValidCurrency adapts it to a Rule. Compiled grammars are memoized
// process-wide by options, so reusing an options value across calls costs one
// compilation total.
//
// The package holds no mutable state beyond that append-only pattern cache
// and is safe for concurrent use. Malformed configuration (for example an
// empty DigitsAfterDecimal list) never panics or surfaces an error through
// IsCurrency; it yields false.
package validator
