package validator

import (
	"regexp"
	"slices"
	"strings"
	"sync"
)

// The per-locale mobile patterns are compiled once, on first use. The table
// is data-only; adding a locale means adding a row.
var phonePatterns = sync.OnceValue(func() map[string]*regexp.Regexp {
	raw := map[string]string{
		"ar-AE": `^((\+?971)|0)?5[024568]\d{7}$`,
		"ar-EG": `^((\+?20)|0)?1[0125]\d{8}$`,
		"ar-SA": `^(!?(\+?966)|0)?5\d{8}$`,
		"be-BY": `^(\+?375)?(24|25|29|33|44)\d{7}$`,
		"bg-BG": `^(\+?359|0)?8[789]\d{7}$`,
		"bn-BD": `^(\+?880|0)1[13456789][0-9]{8}$`,
		"cs-CZ": `^(\+?420)? ?[1-9][0-9]{2} ?[0-9]{3} ?[0-9]{3}$`,
		"da-DK": `^(\+?45)?\s?\d{2}\s?\d{2}\s?\d{2}\s?\d{2}$`,
		"de-AT": `^(\+43|0)\d{1,4}\d{3,12}$`,
		"de-CH": `^(\+41|0)([1-9])\d{1,9}$`,
		"de-DE": `^((\+49|0)1)(5[0-25-9]\d|6([23]|0\d?)|7([0-57-9]|6\d))\d{7,9}$`,
		"el-GR": `^(\+?30|0)?6(8[5-9]|9[013-57-9])\d{7}$`,
		"en-AU": `^(\+?61|0)4\d{8}$`,
		"en-GB": `^(\+?44|0)7[1-9]\d{8}$`,
		"en-HK": `^(\+?852[-\s]?)?[456789]\d{3}[-\s]?\d{4}$`,
		"en-IE": `^(\+?353|0)8[356789]\d{7}$`,
		"en-IN": `^(\+?91|0)?[6789]\d{9}$`,
		"en-KE": `^(\+?254|0)(7|1)\d{8}$`,
		"en-NG": `^(\+?234|0)?[789]\d{9}$`,
		"en-NZ": `^(\+?64|0)[28]\d{7,9}$`,
		"en-PH": `^(09|\+639)\d{9}$`,
		"en-SG": `^(\+65)?[3689]\d{7}$`,
		"en-US": `^((\+1|1)?( |-)?)?(\([2-9][0-9]{2}\)|[2-9][0-9]{2})( |-)?([2-9][0-9]{2}( |-)?[0-9]{4})$`,
		"en-ZA": `^(\+?27|0)\d{9}$`,
		"es-AR": `^\+?549(11|[2368]\d)\d{8}$`,
		"es-CL": `^(\+?56|0)[2-9]\d{1}\d{7}$`,
		"es-CO": `^(\+?57)?3(0(0|1|2|4|5)|1\d|2[0-4]|5(0|1))\d{7}$`,
		"es-ES": `^(\+?34)?[6|7]\d{8}$`,
		"es-MX": `^(\+?52)?(1|01)?\d{10,11}$`,
		"es-PE": `^(\+?51)?9\d{8}$`,
		"et-EE": `^(\+?372)?\s?(5|8[1-4])\s?([0-9]\s?){6,7}$`,
		"fa-IR": `^(\+?98[\-\s]?|0)9[0-39]\d[\-\s]?\d{3}[\-\s]?\d{4}$`,
		"fi-FI": `^(\+?358|0)\s?(4[0-6]|50)\s?(\d\s?){4,8}$`,
		"fr-FR": `^(\+?33|0)[67]\d{8}$`,
		"it-IT": `^(\+?39)?\s?3\d{2} ?\d{6,7}$`,
		"ja-JP": `^(\+81[ \-]?(\(0\))?|0)[6789]0[ \-]?\d{4}[ \-]?\d{4}$`,
		"ko-KR": `^((\+?82)[ \-]?)?0?1([0|1|6|7|8|9]{1})[ \-]?\d{3,4}[ \-]?\d{4}$`,
		"lt-LT": `^(\+370|8)\d{8}$`,
		"ms-MY": `^(\+?60|0)1(([0145](-|\s)?\d{7,8})|([236-9](-|\s)?\d{7}))$`,
		"nb-NO": `^(\+?47)?[49]\d{7}$`,
		"nl-BE": `^(\+?32|0)4\d{8}$`,
		"nl-NL": `^(((\+|00)?31\(0\))|((\+|00)?31)|0)6{1}\d{8}$`,
		"pl-PL": `^(\+?48)? ?([5-8]\d|45) ?\d{3} ?\d{2} ?\d{2}$`,
		"pt-BR": `^((\+?55\ ?[1-9]{2}\ ?)|(\+?55\ ?\([1-9]{2}\)\ ?)|(0[1-9]{2}\ ?)|(\([1-9]{2}\)\ ?)|([1-9]{2}\ ?))((\d{4}\-?\d{4})|(9[1-9]{1}\d{3}\-?\d{4}))$`,
		"pt-PT": `^(\+?351)?9[1236]\d{7}$`,
		"ro-RO": `^(\+?40|0)\s?7\d{2}(\/|\s|\.|-)?\d{3}(\s|\.|-)?\d{3}$`,
		"ru-RU": `^(\+?7|8)?9\d{9}$`,
		"sk-SK": `^(\+?421)? ?[1-9][0-9]{2} ?[0-9]{3} ?[0-9]{3}$`,
		"sv-SE": `^(\+?46|0)[\s\-]?7[\s\-]?[02369]([\s\-]?\d){7}$`,
		"th-TH": `^(\+66|66|0)\d{9}$`,
		"tr-TR": `^(\+?90|0)?5\d{9}$`,
		"uk-UA": `^(\+?38)?0(50|6[36-8]|7[357]|9[1-9])\d{7}$`,
		"vi-VN": `^((\+?84)|0)((3([2-9]))|(5([25689]))|(7([0|6-9]))|(8([1-9]))|(9([0-9])))([0-9]{7})$`,
		"zh-CN": `^((\+|00)86)?(1[3-9]|9[28])\d{9}$`,
		"zh-TW": `^(\+?886\-?|0)?9\d{8}$`,
	}

	compiled := make(map[string]*regexp.Regexp, len(raw))
	for locale, pattern := range raw {
		compiled[locale] = regexp.MustCompile(pattern)
	}
	return compiled
})

// IsPhone reports whether value is a valid mobile number for the given
// locale (e.g. "en-US"). Unknown locales report false.
func IsPhone(value, locale string) bool {
	re, ok := phonePatterns()[locale]
	if !ok {
		return false
	}
	return re.MatchString(value)
}

// IsPhoneAnyLocale reports whether value matches the mobile format of any
// supported locale.
func IsPhoneAnyLocale(value string) bool {
	for _, re := range phonePatterns() {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

// SupportedPhoneLocales returns the locales IsPhone recognizes, sorted.
func SupportedPhoneLocales() []string {
	patterns := phonePatterns()
	locales := make([]string, 0, len(patterns))
	for locale := range patterns {
		locales = append(locales, locale)
	}
	slices.Sort(locales)
	return locales
}

// ValidPhoneForLocale validates that a string is a valid mobile number for a
// specific locale.
func ValidPhoneForLocale(field, value, locale string) Rule {
	return Rule{
		Check: func() bool {
			return IsPhone(value, locale)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number for locale " + locale,
			TranslationKey: "validation.phone_locale",
			TranslationValues: map[string]any{
				"field":  field,
				"locale": locale,
			},
		},
	}
}

// ValidPhone validates that a string is a valid international phone number
// (E.164-style), independent of locale. Spaces and dashes are ignored.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")

			if len(cleaned) < 7 {
				return false
			}

			return e164Regex.MatchString(cleaned)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number in international format",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

var e164Regex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
