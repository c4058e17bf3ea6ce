// Package currency resolves free-form user input to ISO 4217 currency codes
// and performs monetary conversion arithmetic and display formatting.
//
// Resolution is a pure lookup against the Unicode CLDR data shipped with
// golang.org/x/text: currency codes, ISO 3166-1 country codes, and English
// country display names. It has no side effects and no network dependency.
package currency

import (
	"strings"
	"sync"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	nameIndexOnce sync.Once
	nameIndex     map[string]string
)

// countryNameIndex maps upper-cased English country display names to the
// country's primary currency code. Built once, on first use, by walking the
// two-letter region space and keeping regions CLDR recognizes as countries.
func countryNameIndex() map[string]string {
	nameIndexOnce.Do(func() {
		nameIndex = make(map[string]string, 256)
		namer := display.English.Regions()
		for a := 'A'; a <= 'Z'; a++ {
			for b := 'A'; b <= 'Z'; b++ {
				reg, err := language.ParseRegion(string([]rune{a, b}))
				if err != nil || !reg.IsCountry() {
					continue
				}
				unit, ok := xcurrency.FromRegion(reg)
				if !ok {
					continue
				}
				name := strings.ToUpper(namer.Name(reg))
				if name == "" {
					continue
				}
				if _, exists := nameIndex[name]; !exists {
					nameIndex[name] = unit.String()
				}
			}
		}
	})
	return nameIndex
}

// Resolve maps a free-text token to a canonical 3-letter currency code.
// It tries, in order: an exact ISO 4217 code ("USD"), an ISO 3166-1 country
// code ("US" -> "USD"), and an exact English country name ("Malaysia" ->
// "MYR"). Matching is case-insensitive; surrounding whitespace is ignored.
// The second return value is false when nothing matched.
func Resolve(input string) (string, bool) {
	token := strings.ToUpper(strings.TrimSpace(input))
	if token == "" {
		return "", false
	}

	if len(token) == 3 {
		if unit, err := xcurrency.ParseISO(token); err == nil {
			return unit.String(), true
		}
	}

	if len(token) == 2 {
		if reg, err := language.ParseRegion(token); err == nil {
			if unit, ok := xcurrency.FromRegion(reg); ok {
				return unit.String(), true
			}
		}
	}

	if code, ok := countryNameIndex()[token]; ok {
		return code, true
	}

	return "", false
}

// IsValidCode reports whether code is a recognized 3-letter ISO 4217 code.
func IsValidCode(code string) bool {
	_, err := xcurrency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	return err == nil
}
