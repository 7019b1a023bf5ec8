package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeArabic_FoldsVariants(t *testing.T) {
	// Diacritics strip away.
	require.Equal(t, NormalizeArabic("احمد"), NormalizeArabic("أَحْمَد"))

	// Alef variants fold onto bare alef.
	require.Equal(t, "ابراهيم", NormalizeArabic("إبراهيم"))
	require.Equal(t, "اية", NormalizeArabic("آية"))

	// Taa marbutah and alef maksura fold.
	require.Equal(t, "فاطمه", NormalizeArabic("فاطمة"))
	require.Equal(t, "مصطفي", NormalizeArabic("مصطفى"))

	// Tatweel stretching disappears.
	require.Equal(t, NormalizeArabic("محمد"), NormalizeArabic("محـــمد"))

	// Whitespace collapses.
	require.Equal(t, "عبد الرحمن", NormalizeArabic("  عبد   الرحمن "))
}

func TestNormalizeIdentifier(t *testing.T) {
	require.Equal(t, "apt 2", NormalizeIdentifier("  Apt   2 "))
	require.Equal(t, "shop-b", NormalizeIdentifier("SHOP-B"))
	require.Equal(t, "", NormalizeIdentifier("   "))
}

func TestFamilyNamePrefix(t *testing.T) {
	require.Equal(t, "الخ", FamilyNamePrefix("الخالد", 3))
	require.Equal(t, "ال", FamilyNamePrefix("الخالد", 2))
	require.Equal(t, "الخالد", FamilyNamePrefix("الخالد", 20))
	require.Equal(t, "", FamilyNamePrefix("", 3))

	// The prefix keys on the normalized form, not the raw spelling.
	require.Equal(t, FamilyNamePrefix("الخالد", 3), FamilyNamePrefix("الخَالِد", 3))
}

func TestDistance(t *testing.T) {
	require.Equal(t, 0, Distance("محمد", "محمد"))
	require.Equal(t, 1, Distance("محمد", "محمود"))
	require.Equal(t, 4, Distance("", "احمد"))
}

func TestPartSimilarity(t *testing.T) {
	require.Equal(t, 1.0, PartSimilarity("احمد", "احمد"))
	require.Equal(t, 1.0, PartSimilarity("", ""))
	require.Equal(t, 0.0, PartSimilarity("احمد", ""))
	require.InDelta(t, 0.8, PartSimilarity("محمد", "محمود"), 1e-9)
}

func TestWeightedNameSimilarity(t *testing.T) {
	// Identical triples score the full 100 even with diacritics.
	got := WeightedNameSimilarity("أَحْمَد", "محمد", "الخالد", "احمد", "محمد", "الخالد")
	require.InDelta(t, 100.0, got, 1e-9)

	// A dissimilar family name costs most of its 40-point weight.
	got = WeightedNameSimilarity("احمد", "محمد", "الخالد", "احمد", "محمد", "قاسم")
	fam := PartSimilarity(NormalizeArabic("الخالد"), NormalizeArabic("قاسم"))
	require.InDelta(t, 60.0+40.0*fam, got, 1e-9)
	require.Less(t, got, 70.0)

	// One-edit father name scales its 30-point share.
	got = WeightedNameSimilarity("احمد", "محمد", "الخالد", "احمد", "محمود", "الخالد")
	require.InDelta(t, 70.0+30.0*0.8, got, 1e-9)
}
