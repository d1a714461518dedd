package directory

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Scheme derives deterministic node ids from address fields.
type Scheme struct {
	prefix string
}

// NewScheme creates a Scheme that prefixes every id with prefix.
func NewScheme(prefix string) Scheme {
	return Scheme{prefix: prefix}
}

// RegionID returns the id of the region node for region, or "" if region
// contains no letters.
func (s Scheme) RegionID(region string) string {
	r := Normalize(region)
	if r == "" {
		return ""
	}
	return s.prefix + r
}

// CityID returns the id of the city node for city within region, or "" if
// either part contains no letters.
func (s Scheme) CityID(city, region string) string {
	c := Normalize(city)
	r := Normalize(region)
	if c == "" || r == "" {
		return ""
	}
	return s.prefix + r + "-" + c
}

// Normalize case-folds s and keeps only its letters, with accents removed.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// Chained transformers hold state, so one is built per call.
	// Folding can introduce combining marks (İ folds to i + U+0307), so the
	// marks are decomposed and stripped only after it.
	t := transform.Chain(
		norm.NFKD,
		cases.Fold(),
		norm.NFKD,
		runes.Remove(runes.Predicate(func(r rune) bool { return !unicode.IsLetter(r) })),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return out
}
