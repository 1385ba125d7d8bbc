package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleVerse(t *testing.T) {
	refs, err := Parse("Jo 3:16")
	require.NoError(t, err)

	require.Len(t, refs, 1)
	assert.Equal(t, Ref{Book: "Jo", Chapter: 3, Number: 16}, refs[0])
}

func TestParseBookWithLeadingDigit(t *testing.T) {
	refs, err := Parse("1Pe 2:22")
	require.NoError(t, err)

	require.Len(t, refs, 1)
	assert.Equal(t, Ref{Book: "1Pe", Chapter: 2, Number: 22}, refs[0])
}

func TestParseAccentedBookName(t *testing.T) {
	refs, err := Parse("João 3:16")
	require.NoError(t, err)

	require.Len(t, refs, 1)
	assert.Equal(t, Ref{Book: "Jo", Chapter: 3, Number: 16}, refs[0])
}

func TestParseFullBookName(t *testing.T) {
	for _, query := range []string{"I Corintios 13:4", "I Coríntios 13:4"} {
		refs, err := Parse(query)
		require.NoError(t, err, query)

		require.Len(t, refs, 1)
		assert.Equal(t, Ref{Book: "1Co", Chapter: 13, Number: 4}, refs[0])
	}
}

func TestParseBookNameFormats(t *testing.T) {
	cases := []struct {
		query  string
		abbrev string
	}{
		{"Gênesis 1:1", "Gn"},
		{"Genesis 1:1", "Gn"},
		{"Êxodo 3:14", "Ex"},
		{"Exodo 3:14", "Ex"},
		{"II Coríntios 5:17", "2Co"},
		{"Cântico dos Cânticos 2:1", "Ct"},
		{"Cantico dos Canticos 2:1", "Ct"},
		{"1 Pedro 2:22", "1Pe"},
		{"jo 3:16", "Jo"},
	}
	for _, tc := range cases {
		refs, err := Parse(tc.query)
		require.NoError(t, err, tc.query)

		require.Len(t, refs, 1, tc.query)
		assert.Equal(t, tc.abbrev, refs[0].Book, tc.query)
	}
}

func TestParseUnknownBookPassesThrough(t *testing.T) {
	refs, err := Parse("Inexistente 1:1")
	require.NoError(t, err)

	require.Len(t, refs, 1)
	assert.Equal(t, "Inexistente", refs[0].Book)
}

func TestNormalizeBookDistinguishesJobFromJohn(t *testing.T) {
	// "Jó" (Job) and "Jo" (João) only differ by the accent; the exact
	// form must win before accent folding kicks in.
	assert.Equal(t, "Jó", NormalizeBook("Jó"))
	assert.Equal(t, "Jo", NormalizeBook("Jo"))
	assert.Equal(t, "Jo", NormalizeBook("João"))
	assert.Equal(t, "Jo", NormalizeBook("joao"))
}

func TestParseVerseRange(t *testing.T) {
	refs, err := Parse("Jo 3:16-18")
	require.NoError(t, err)

	require.Len(t, refs, 3)
	for i, ref := range refs {
		assert.Equal(t, "Jo", ref.Book)
		assert.Equal(t, 3, ref.Chapter)
		assert.Equal(t, 16+i, ref.Number)
	}
}

func TestParseCommaSeparatedVerses(t *testing.T) {
	refs, err := Parse("Jo 3:16,17,20")
	require.NoError(t, err)

	require.Len(t, refs, 3)
	numbers := []int{refs[0].Number, refs[1].Number, refs[2].Number}
	assert.Equal(t, []int{16, 17, 20}, numbers)
}

func TestParseMultipleBooks(t *testing.T) {
	refs, err := Parse("João 3:16; Mateus 5:1")
	require.NoError(t, err)

	require.Len(t, refs, 2)
	assert.Equal(t, Ref{Book: "Jo", Chapter: 3, Number: 16}, refs[0])
	assert.Equal(t, Ref{Book: "Mt", Chapter: 5, Number: 1}, refs[1])
}

func TestParseChapterSwitchWithinBook(t *testing.T) {
	refs, err := Parse("Jo 3:16,4:2")
	require.NoError(t, err)

	require.Len(t, refs, 2)
	assert.Equal(t, Ref{Book: "Jo", Chapter: 3, Number: 16}, refs[0])
	assert.Equal(t, Ref{Book: "Jo", Chapter: 4, Number: 2}, refs[1])
}

func TestParseMixedRangeAndList(t *testing.T) {
	refs, err := Parse("Sl 23:1-3,6")
	require.NoError(t, err)

	require.Len(t, refs, 4)
	numbers := make([]int, len(refs))
	for i, ref := range refs {
		numbers[i] = ref.Number
	}
	assert.Equal(t, []int{1, 2, 3, 6}, numbers)
}

func TestParseIgnoresEmptySegments(t *testing.T) {
	refs, err := Parse("Jo 3:16; ;")
	require.NoError(t, err)

	assert.Len(t, refs, 1)
}

func TestParseInvalidFormat(t *testing.T) {
	_, err := Parse("formato inválido")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reference format")
}

func TestParseInvalidChapter(t *testing.T) {
	_, err := Parse("Jo abc:16")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reference format")
}

func TestParseInvalidVerseNumber(t *testing.T) {
	_, err := Parse("Jo 3:abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid verse number")
}

func TestParseInvalidRange(t *testing.T) {
	_, err := Parse("Jo 3:16-abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid verse range")
}

func TestParseReversedRange(t *testing.T) {
	_, err := Parse("Jo 3:18-16")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid verse range")
}

func TestParseZeroVerse(t *testing.T) {
	_, err := Parse("Jo 3:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid verse number")
}

func TestParseRejectsOversizedRange(t *testing.T) {
	_, err := Parse("Jo 1:1-999999999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expands to more than")
}

func TestParseRejectsOversizedExpansion(t *testing.T) {
	// Several in-bounds ranges still may not expand past the cap combined.
	_, err := Parse("Sl 119:1-450; Sl 118:1-450")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expands to more than")
}

func TestParseEmptyQuery(t *testing.T) {
	_, err := Parse("  ;  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty reference")
}

func TestRefString(t *testing.T) {
	ref := Ref{Book: "Jo", Chapter: 3, Number: 16}
	assert.Equal(t, "Jo 3:16", ref.String())
}
