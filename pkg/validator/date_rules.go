package validator

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	isoDateRegex     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoDateTimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)
)

// ValidISODate validates that a string is an ISO 8601 calendar date
// (YYYY-MM-DD) naming a day that actually exists, leap years included.
func ValidISODate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isISODate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid ISO 8601 date (YYYY-MM-DD)",
			TranslationKey: "validation.iso_date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidISODateTime validates that a string is an ISO 8601 datetime with an
// optional fractional second and optional zone designator.
func ValidISODateTime(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isoDateTimeRegex.MatchString(value) && isISODate(value[:10])
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid ISO 8601 datetime",
			TranslationKey: "validation.iso_datetime",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidISOTime validates that a string is a time of day in HH:MM:SS form.
func ValidISOTime(field, value string) Rule {
	return Rule{
		Check: func() bool {
			parts := strings.Split(value, ":")
			if len(parts) != 3 {
				return false
			}

			hour, okH := parseTwoDigits(parts[0])
			minute, okM := parseTwoDigits(parts[1])
			second, okS := parseTwoDigits(parts[2])
			if !okH || !okM || !okS {
				return false
			}

			return hour < 24 && minute < 60 && second < 60
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid time (HH:MM:SS)",
			TranslationKey: "validation.iso_time",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isISODate(value string) bool {
	if !isoDateRegex.MatchString(value) {
		return false
	}

	year, _ := strconv.Atoi(value[:4])
	month, _ := strconv.Atoi(value[5:7])
	day, _ := strconv.Atoi(value[8:10])

	if month < 1 || month > 12 || day < 1 {
		return false
	}

	maxDay := 31
	switch month {
	case 4, 6, 9, 11:
		maxDay = 30
	case 2:
		if isLeapYear(year) {
			maxDay = 29
		} else {
			maxDay = 28
		}
	}

	return day <= maxDay
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func parseTwoDigits(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
