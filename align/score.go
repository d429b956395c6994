package align

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// MatchMismatch returns a similarity function that scores match for equal
// tokens and mismatch otherwise. The usual configuration is (2, -1).
func MatchMismatch(match, mismatch float64) func(ref, hyp string) float64 {
	return func(ref, hyp string) float64 {
		if ref == hyp {
			return match
		}
		return mismatch
	}
}

// LevenshteinSimilarity returns a similarity function for word tokens that
// scores partial matches fractionally instead of the all-or-nothing
// MatchMismatch. The score is the Levenshtein ratio between the tokens
// mapped onto [-scale, +scale]: identical words score +scale, words with no
// overlap score -scale, and near-misses ("cat" vs "cad") land in between,
// which lets the aligner prefer pairing a misspelled word over deleting it.
func LevenshteinSimilarity(scale float64) func(ref, hyp string) float64 {
	return func(ref, hyp string) float64 {
		if ref == hyp {
			return scale
		}
		if ref == "" || hyp == "" {
			return -scale
		}

		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(ref, hyp, false)
		dist := dmp.DiffLevenshtein(diffs)

		ratio := 1.0 - float64(dist)/float64(max(len(ref), len(hyp)))
		return scale * (2*ratio - 1)
	}
}
