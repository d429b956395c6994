// Package align implements Smith-Waterman alignment of a reference token
// sequence against a hypothesis token sequence, for scoring transcription
// quality. Deletion and insertion costs are linear in the number of
// uncovered tokens.
package align

import (
	"fmt"
	"math"
	"slices"

	"seqalign/logger"
)

// Eps is the default sentinel token for the unaligned side of an
// insertion or deletion record. Callers with token vocabularies that
// may contain "|" should pick their own sentinel.
const Eps = "|"

// Pair is one unit of the alignment: a reference token (or the sentinel)
// matched against a hypothesis token (or the sentinel), together with the
// index span it covers in each sequence. Synthetic padding records (see
// Padded) carry RefTo = HypTo = -1.
type Pair struct {
	Ref     string
	Hyp     string
	RefFrom int
	HypFrom int
	RefTo   int
	HypTo   int
}

// Config is the scoring configuration for Align.
type Config struct {
	// Similarity scores one reference token against one hypothesis token.
	// Positive for likely matches, negative for mismatches.
	Similarity func(ref, hyp string) float64
	// DelScore is added per reference token left uncovered (typically negative).
	DelScore float64
	// InsScore is added per hypothesis token left uncovered (typically negative).
	InsScore float64
	// Eps is the sentinel emitted for the missing side of an
	// insertion or deletion record. Must not collide with real tokens.
	Eps string
	// FullHyp selects full-hypothesis mode: the traceback starts at the end
	// of the hypothesis, so every hypothesis token is consumed exactly once.
	// When false, classic local alignment is performed instead and only the
	// best-matching sub-sequence pair is returned.
	FullHyp bool
}

// move is a backpointer tag. The matrix stores which recurrence case won a
// cell rather than raw coordinates, which keeps the traceback state machine
// free of coordinate-equality sentinels.
type move uint8

const (
	moveStart move = iota // no predecessor recorded; traceback terminates here
	moveDiagonal
	moveDeletion
	moveInsertion
)

// Align aligns ref against hyp under cfg and returns the ordered list of
// aligned pairs together with the terminal score.
//
// In full-hypothesis mode the result covers every hypothesis index exactly
// once, with reference indices monotonically non-decreasing. In local mode
// the result is the best-scoring sub-sequence correspondence.
//
// An error is returned only when the traceback meets a backpointer that is
// inconsistent with the recurrence, which indicates a defect in the matrix
// construction rather than a property of the input.
func Align(ref, hyp []string, cfg Config) ([]Pair, float64, error) {
	defer logger.Trace("align")()

	refLen, hypLen := len(ref), len(hyp)

	if refLen == 0 || hypLen == 0 {
		return alignDegenerate(ref, hyp, cfg)
	}

	// Score matrix. H[m][n] is the best cumulative score of an alignment
	// ending with ref[m-1] and hyp[n-1]. In full-hypothesis mode the
	// hypothesis side always starts at hyp[0], so interior cells are seeded
	// with a value below any reachable score and the top row accumulates
	// pure insertions.
	H := make([][]float64, refLen+1)
	bp := make([][]move, refLen+1)
	unreachable := -float64(hypLen + 2)
	for m := range H {
		H[m] = make([]float64, hypLen+1)
		bp[m] = make([]move, hypLen+1)
		if cfg.FullHyp {
			for n := 1; n <= hypLen; n++ {
				H[m][n] = unreachable
			}
		}
	}
	if cfg.FullHyp {
		for n := 1; n <= hypLen; n++ {
			H[0][n] = H[0][n-1] + cfg.InsScore
			bp[0][n] = moveInsertion
		}
	}

	best := math.Inf(-1)
	bestM, bestN := 0, 0

	for m := 1; m <= refLen; m++ {
		for n := 1; n <= hypLen; n++ {
			subOrOk := H[m-1][n-1] + cfg.Similarity(ref[m-1], hyp[n-1])

			// The diagonal candidate goes first and wins ties, a deliberate
			// tie-break preferring substitution/match over deletion and
			// insertion.
			if (!cfg.FullHyp && subOrOk > 0) || (cfg.FullHyp && subOrOk >= H[m][n]) {
				H[m][n] = subOrOk
				bp[m][n] = moveDiagonal
			}
			if v := H[m-1][n] + cfg.DelScore; v > H[m][n] {
				H[m][n] = v
				bp[m][n] = moveDeletion
			}
			if v := H[m][n-1] + cfg.InsScore; v > H[m][n] {
				H[m][n] = v
				bp[m][n] = moveInsertion
			}

			// In full-hypothesis mode only last-column cells may terminate
			// the alignment. >= keeps the largest ref prefix among ties.
			if (!cfg.FullHyp || n == hypLen) && H[m][n] >= best {
				best = H[m][n]
				bestM, bestN = m, n
			}
		}
	}

	logger.Debug("align: terminal cell (%d,%d) score %v", bestM, bestN, best)

	pairs, err := traceback(ref, hyp, cfg, H, bp, bestM, bestN, best)
	if err != nil {
		return nil, 0, err
	}
	return pairs, best, nil
}

// alignDegenerate handles an empty reference or hypothesis without touching
// the matrices. The boundary initialization is mode-sensitive, so these
// inputs get explicit all-deletion / all-insertion results in
// full-hypothesis mode and an empty result in local mode.
func alignDegenerate(ref, hyp []string, cfg Config) ([]Pair, float64, error) {
	if !cfg.FullHyp {
		return nil, 0, nil
	}
	if len(hyp) == 0 {
		pairs := make([]Pair, 0, len(ref))
		for i, r := range ref {
			pairs = append(pairs, Pair{Ref: r, Hyp: cfg.Eps, RefFrom: i, HypFrom: 0, RefTo: i + 1, HypTo: 0})
		}
		return pairs, float64(len(ref)) * cfg.DelScore, nil
	}
	pairs := make([]Pair, 0, len(hyp))
	for j, h := range hyp {
		pairs = append(pairs, Pair{Ref: cfg.Eps, Hyp: h, RefFrom: 0, HypFrom: j, RefTo: 0, HypTo: j + 1})
	}
	return pairs, float64(len(hyp)) * cfg.InsScore, nil
}

// traceback walks the backpointer tags from the terminal cell and
// reconstructs the aligned pairs in order.
func traceback(ref, hyp []string, cfg Config, H [][]float64, bp [][]move, m, n int, score float64) ([]Pair, error) {
	var out []Pair

walk:
	for (!cfg.FullHyp && score >= 0) || (cfg.FullHyp && n > 0) {
		switch bp[m][n] {
		case moveStart:
			// Base case: the cell has no recorded predecessor. A non-zero
			// score here is a jump straight from the origin.
			if H[m][n] != 0 {
				rw, hw := cfg.Eps, cfg.Eps
				if m > 0 {
					rw = ref[m-1]
				}
				if n > 0 {
					hw = hyp[n-1]
				}
				out = append(out, Pair{Ref: rw, Hyp: hw, RefFrom: 0, HypFrom: 0, RefTo: m, HypTo: n})
			}
			break walk
		case moveDiagonal:
			out = append(out, Pair{Ref: ref[m-1], Hyp: hyp[n-1], RefFrom: m - 1, HypFrom: n - 1, RefTo: m, HypTo: n})
			m, n = m-1, n-1
		case moveDeletion:
			out = append(out, Pair{Ref: ref[m-1], Hyp: cfg.Eps, RefFrom: m - 1, HypFrom: n, RefTo: m, HypTo: n})
			m--
		case moveInsertion:
			out = append(out, Pair{Ref: cfg.Eps, Hyp: hyp[n-1], RefFrom: m, HypFrom: n - 1, RefTo: m, HypTo: n})
			n--
		default:
			logger.Error("align: corrupt backpointer %d at cell (%d,%d)", bp[m][n], m, n)
			return nil, fmt.Errorf("align: corrupt backpointer %d at cell (%d,%d)", bp[m][n], m, n)
		}
		score = H[m][n]
	}

	slices.Reverse(out)
	return out, nil
}
