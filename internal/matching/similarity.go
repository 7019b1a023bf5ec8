package matching

import (
	"github.com/agext/levenshtein"
)

// Name-part weights for person scoring. First and father names carry equal
// weight; the family name dominates because devices in the same community
// mostly disagree on given-name spelling, not lineage.
const (
	weightFirst  = 30.0
	weightFather = 30.0
	weightFamily = 40.0
)

// Distance is the unweighted Levenshtein edit distance between two strings,
// computed on runes. Callers normalise first.
func Distance(a, b string) int {
	return levenshtein.Distance(a, b, levenshtein.NewParams())
}

// PartSimilarity scores one normalised name part in [0, 1]:
// 1 - distance/maxLen, with two empty parts counting as a full match.
func PartSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if n := len([]rune(b)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	d := Distance(a, b)
	if d >= longest {
		return 0
	}
	return 1 - float64(d)/float64(longest)
}

// WeightedNameSimilarity scores two person name triples on a 0–100 scale.
// Inputs are raw names; normalisation happens here so callers cannot skip it.
func WeightedNameSimilarity(aFirst, aFather, aFamily, bFirst, bFather, bFamily string) float64 {
	first := PartSimilarity(NormalizeArabic(aFirst), NormalizeArabic(bFirst))
	father := PartSimilarity(NormalizeArabic(aFather), NormalizeArabic(bFather))
	family := PartSimilarity(NormalizeArabic(aFamily), NormalizeArabic(bFamily))
	return first*weightFirst + father*weightFather + family*weightFamily
}
