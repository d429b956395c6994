package align

// Padding scoring: the fixed configuration used for error-rate style
// alignments, match +2 and mismatch/deletion/insertion -1.
const (
	padMatch    = 2
	padMismatch = -1
	padDelete   = -1
	padInsert   = -1
)

// Padded aligns hyp against ref in full-hypothesis mode under the fixed
// scoring above and extends the result with synthetic deletion records for
// any leading or trailing reference tokens the traceback left uncovered, so
// every reference position is represented even when the alignment starts or
// ends mid-reference. Synthetic records carry RefTo = HypTo = -1.
//
// The trailing boundary is the RefFrom of the last aligned pair, matching
// the established behavior even though a final pair spanning more than one
// reference token would shift it by one.
func Padded(ref, hyp []string, eps string) ([]Pair, error) {
	pairs, _, err := Align(ref, hyp, Config{
		Similarity: MatchMismatch(padMatch, padMismatch),
		DelScore:   padDelete,
		InsScore:   padInsert,
		Eps:        eps,
		FullHyp:    true,
	})
	if err != nil {
		return nil, err
	}

	if len(pairs) == 0 {
		// Both sequences empty, or nothing aligned at all: cover the whole
		// reference with synthetic deletions.
		for i := range ref {
			pairs = append(pairs, Pair{Ref: ref[i], Hyp: eps, RefFrom: i, HypFrom: 0, RefTo: -1, HypTo: -1})
		}
		return pairs, nil
	}

	start := pairs[0].RefFrom
	padded := make([]Pair, 0, start+len(pairs)+len(ref))
	for i := 0; i < start; i++ {
		padded = append(padded, Pair{Ref: ref[i], Hyp: eps, RefFrom: i, HypFrom: 0, RefTo: -1, HypTo: -1})
	}
	padded = append(padded, pairs...)

	end := pairs[len(pairs)-1].RefFrom
	for i := end + 1; i < len(ref); i++ {
		padded = append(padded, Pair{Ref: ref[i], Hyp: eps, RefFrom: i, HypFrom: len(hyp), RefTo: -1, HypTo: -1})
	}
	return padded, nil
}
