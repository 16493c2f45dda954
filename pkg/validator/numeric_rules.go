package validator

import (
	"fmt"
	"math"
)

func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// InRange validates that a value lies within [min, max], inclusive on both ends.
func InRange[T Numeric](field string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

func Positive[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be positive",
			TranslationKey: "validation.positive",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func Negative[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value < 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be negative",
			TranslationKey: "validation.negative",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Zero validates that a number is exactly zero.
func Zero[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value == 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be zero",
			TranslationKey: "validation.zero",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Even validates that an integer is even.
func Even(field string, value int64) Rule {
	return Rule{
		Check: func() bool {
			return value%2 == 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be even",
			TranslationKey: "validation.even",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Odd validates that an integer is odd.
func Odd(field string, value int64) Rule {
	return Rule{
		Check: func() bool {
			return value%2 != 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be odd",
			TranslationKey: "validation.odd",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MultipleOf validates that an integer is divisible by divisor. A zero
// divisor fails rather than panicking.
func MultipleOf(field string, value int64, divisor int64) Rule {
	return Rule{
		Check: func() bool {
			if divisor == 0 {
				return false
			}
			return value%divisor == 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a multiple of %d", divisor),
			TranslationKey: "validation.multiple_of",
			TranslationValues: map[string]any{
				"field":   field,
				"divisor": divisor,
			},
		},
	}
}

// CloseTo validates that a float lies within tolerance of a target.
func CloseTo(field string, value, target, tolerance float64) Rule {
	return Rule{
		Check: func() bool {
			return math.Abs(value-target) <= tolerance
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be within %v of %v", tolerance, target),
			TranslationKey: "validation.close_to",
			TranslationValues: map[string]any{
				"field":     field,
				"target":    target,
				"tolerance": tolerance,
			},
		},
	}
}

// Convenience aliases matching the string helpers

func Min[T Numeric](field string, value T, min T) Rule {
	return MinNum(field, value, min)
}

func Max[T Numeric](field string, value T, max T) Rule {
	return MaxNum(field, value, max)
}
