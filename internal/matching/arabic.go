// Package matching implements the text normalisation and similarity scoring
// used by duplicate detection.
//
// Arabic person names arrive from field devices with inconsistent
// diacritics, letter variants and spacing. Normalisation folds those apart
// before any comparison so that "أَحْمَد" and "احمد" compare equal.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const tatweel = 'ـ'

// foldArabic maps letter variants onto a canonical form. Hamza-carrying
// alef forms are usually handled by NFD + mark stripping; the explicit
// cases cover inputs that never decompose (alef wasla) or carry no marks.
func foldArabic(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ', 'ٱ': // أ إ آ ٱ
		return 'ا' // ا
	case 'ة': // ة
		return 'ه' // ه
	case 'ى': // ى
		return 'ي' // ي
	}
	return r
}

// arabicNormalizer strips combining marks (tashkeel), drops tatweel
// stretching, folds letter variants and recomposes to NFC.
var arabicNormalizer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r == tatweel })),
	runes.Map(foldArabic),
	norm.NFC,
)

// NormalizeArabic returns the canonical comparison form of an Arabic string:
// no diacritics, no tatweel, folded alef/taa-marbutah/alef-maksura variants,
// single-space separated.
func NormalizeArabic(s string) string {
	out, _, err := transform.String(arabicNormalizer, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw
		// input so comparison still happens.
		out = s
	}
	return collapseWhitespace(out)
}

// NormalizeIdentifier canonicalises unit identifiers and similar business
// codes: trimmed, inner whitespace collapsed to single spaces, lowercased.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(collapseWhitespace(s))
}

// FamilyNamePrefix returns the first n runes of the normalised family name,
// the blocking key component for person candidate retrieval.
func FamilyNamePrefix(familyName string, n int) string {
	r := []rune(NormalizeArabic(familyName))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n])
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
