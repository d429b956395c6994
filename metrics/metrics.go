// Package metrics summarizes alignments into edit counts and error rates.
package metrics

import (
	"seqalign/align"
)

// Summary holds the edit counts of one alignment.
type Summary struct {
	Correct       int
	Substitutions int
	Insertions    int
	Deletions     int
	RefTokens     int // reference tokens covered (correct + substitutions + deletions)
}

// Summarize classifies every aligned pair and tallies the edit counts.
func Summarize(pairs []align.Pair, eps string) Summary {
	var s Summary
	for _, p := range pairs {
		switch align.Classify(p, eps) {
		case align.EditCorrect:
			s.Correct++
		case align.EditSubstitution:
			s.Substitutions++
		case align.EditInsertion:
			s.Insertions++
		case align.EditDeletion:
			s.Deletions++
		}
	}
	s.RefTokens = s.Correct + s.Substitutions + s.Deletions
	return s
}

// ErrorRate returns (substitutions + insertions + deletions) / reference
// tokens, the word-error-rate formula. Zero when no reference tokens were
// covered.
func (s Summary) ErrorRate() float64 {
	if s.RefTokens == 0 {
		return 0
	}
	return float64(s.Substitutions+s.Insertions+s.Deletions) / float64(s.RefTokens)
}
