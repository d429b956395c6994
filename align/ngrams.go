package align

import (
	"fmt"
	"iter"
)

// Ngrams returns the aligned n-gram pairs of hyp against ref for every
// order from 1 up to order. The padded alignment is grouped by reference
// position; a window of consecutive reference positions then spans a
// hypothesis sub-sequence and a reference sub-sequence, yielded as
// (hypNgram, refNgram). Emission order is increasing order, then increasing
// start position.
//
// The returned sequence is restartable: ranging over it again replays the
// same pairs. The n-gram slices share backing arrays with ref and hyp.
func Ngrams(ref, hyp []string, order int) (iter.Seq2[[]string, []string], error) {
	pairs, err := Padded(ref, hyp, Eps)
	if err != nil {
		return nil, err
	}

	// Bucket pairs by the reference position they start at. Trailing
	// insertions may start at len(ref), one past the last position.
	buckets := make([][]Pair, len(ref)+1)
	for _, p := range pairs {
		if p.RefFrom < 0 || p.RefFrom > len(ref) {
			return nil, fmt.Errorf("ngrams: pair %v outside reference range [0,%d]", p, len(ref))
		}
		buckets[p.RefFrom] = append(buckets[p.RefFrom], p)
	}
	for i := 0; i < len(ref); i++ {
		if len(buckets[i]) == 0 {
			return nil, fmt.Errorf("ngrams: no aligned pair covers reference position %d", i)
		}
	}

	return func(yield func([]string, []string) bool) {
		for o := 1; o <= order; o++ {
			for k := 0; k+o <= len(ref); k++ {
				first := buckets[k][0]
				lastBucket := buckets[k+o-1]
				last := lastBucket[len(lastBucket)-1]

				refNgram := ref[first.RefFrom : last.RefFrom+1]
				hypNgram := hyp[clamp(first.HypFrom, len(hyp)):clamp(last.HypFrom+1, len(hyp))]
				if !yield(hypNgram, refNgram) {
					return
				}
			}
		}
	}, nil
}

// clamp bounds an index to [0, n]; padding records can point one past the
// end of the hypothesis.
func clamp(i, n int) int {
	if i > n {
		return n
	}
	if i < 0 {
		return 0
	}
	return i
}
