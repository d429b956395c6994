package align

import (
	"testing"

	"seqalign/assert"
)

func TestMatchMismatch(t *testing.T) {
	sim := MatchMismatch(2, -1)

	assert.Equal(t, 2.0, sim("cat", "cat"), "match")
	assert.Equal(t, -1.0, sim("cat", "cad"), "mismatch")
	assert.Equal(t, -1.0, sim("", "cat"), "empty vs word")
	assert.Equal(t, 2.0, sim("", ""), "both empty")
}

func TestLevenshteinSimilarity(t *testing.T) {
	sim := LevenshteinSimilarity(3)

	assert.Equal(t, 3.0, sim("cat", "cat"), "identical")
	assert.Equal(t, -3.0, sim("abc", "xyz"), "disjoint")
	assert.Equal(t, -3.0, sim("", "cat"), "empty ref")
	assert.Equal(t, -3.0, sim("cat", ""), "empty hyp")

	// One edit out of three characters: ratio 2/3, mapped to scale/3.
	assert.InDelta(t, 1.0, sim("cat", "cad"), 1e-9, "near miss")

	// Closer pairs score higher.
	assert.True(t, sim("black", "blac") > sim("black", "b"), "ordering")
}

// Fractional similarity lets the aligner pair misspelled words instead of
// splitting them into deletion plus insertion.
func TestLevenshteinSimilarityWordAlignment(t *testing.T) {
	ref := []string{"the", "cat", "is", "black"}
	hyp := []string{"teh", "cat", "black"}

	pairs, _, err := Align(ref, hyp, Config{
		Similarity: LevenshteinSimilarity(2),
		DelScore:   -1,
		InsScore:   -1,
		Eps:        "|",
		FullHyp:    true,
	})
	assert.NoError(t, err)

	expected := []Pair{
		{"the", "teh", 0, 0, 1, 1},
		{"cat", "cat", 1, 1, 2, 2},
		{"is", "|", 2, 2, 3, 2},
		{"black", "black", 3, 2, 4, 3},
	}
	assertPairsEqual(t, expected, pairs)
}
