package align

import (
	"strings"
	"testing"

	"seqalign/assert"
)

func collectNgrams(t *testing.T, ref, hyp []string, order int) [][2]string {
	t.Helper()

	seq, err := Ngrams(ref, hyp, order)
	assert.NoError(t, err)

	var out [][2]string
	for hypNgram, refNgram := range seq {
		out = append(out, [2]string{strings.Join(hypNgram, ""), strings.Join(refNgram, "")})
	}
	return out
}

func TestNgramsOrderOne(t *testing.T) {
	ref := chars("I think the cat is black")
	hyp := chars("hee cad i blac")

	got := collectNgrams(t, ref, hyp, 1)
	assert.Len(t, got, len(ref), "one n-gram per reference position")

	// Order-1 n-grams reproduce the padded alignment's per-position pairs:
	// each reference position against the hypothesis span its bucket covers.
	// Leading padding records all anchor at hypothesis position 0, so the
	// leading deletions each span the first hypothesis token; the trailing
	// padding anchors past the hypothesis and spans nothing.
	expected := [][2]string{
		{"h", "I"}, {"h", " "}, {"h", "t"}, {"h", "h"}, {"h", "i"},
		{"h", "n"}, {"h", "k"}, {"h", " "}, {"h", "t"}, {"h", "h"},
		{"ee", "e"}, {" ", " "}, {"c", "c"}, {"a", "a"}, {"d", "t"},
		{" ", " "}, {"i", "i"}, {" ", "s"}, {" ", " "}, {"b", "b"},
		{"l", "l"}, {"a", "a"}, {"c", "c"}, {"", "k"},
	}
	assert.Equal(t, expected, got, "order-1 n-grams")
}

func TestNgramsTrigramMismatches(t *testing.T) {
	ref := chars("I think the cat is black")
	hyp := chars("hee cad i blac")

	var mismatched [][2]string
	for _, ng := range collectNgrams(t, ref, hyp, 3) {
		if ng[0] != ng[1] && len(ng[1]) == 3 {
			mismatched = append(mismatched, ng)
		}
	}

	expected := [][2]string{
		{"h", "I t"},
		{"h", " th"},
		{"h", "thi"},
		{"h", "hin"},
		{"h", "ink"},
		{"h", "nk "},
		{"h", "k t"},
		{"h", " th"},
		{"hee", "the"},
		{"hee ", "he "},
		{"ee c", "e c"},
		{"cad", "cat"},
		{"ad ", "at "},
		{"d i", "t i"},
		{" i ", " is"},
		{"i ", "is "},
		{" b", "s b"},
		{"ac", "ack"},
	}
	assert.Equal(t, expected, mismatched, "mismatched trigrams")
}

func TestNgramsEmissionOrder(t *testing.T) {
	ref := []string{"a", "b", "c"}
	hyp := []string{"a", "x", "c"}

	got := collectNgrams(t, ref, hyp, 2)

	// Increasing order, then increasing start position.
	expected := [][2]string{
		{"a", "a"},
		{"x", "b"},
		{"c", "c"},
		{"ax", "ab"},
		{"xc", "bc"},
	}
	assert.Equal(t, expected, got, "emission order")
}

// The sequence must be restartable: ranging over it twice yields identical
// results with no shared iteration state.
func TestNgramsRestartable(t *testing.T) {
	ref := chars("the cat")
	hyp := chars("teh cat")

	seq, err := Ngrams(ref, hyp, 2)
	assert.NoError(t, err)

	var first, second [][2]string
	for h, r := range seq {
		first = append(first, [2]string{strings.Join(h, ""), strings.Join(r, "")})
	}
	for h, r := range seq {
		second = append(second, [2]string{strings.Join(h, ""), strings.Join(r, "")})
	}
	assert.True(t, len(first) > 0, "non-empty")
	assert.Equal(t, first, second, "second pass")
}

func TestNgramsEarlyBreak(t *testing.T) {
	seq, err := Ngrams(chars("abc"), chars("abc"), 2)
	assert.NoError(t, err)

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count, "stopped after two n-grams")
}

func TestNgramsOrderBeyondReference(t *testing.T) {
	ref := []string{"a", "b"}
	got := collectNgrams(t, ref, []string{"a", "b"}, 5)

	// Orders longer than the reference contribute nothing.
	expected := [][2]string{
		{"a", "a"},
		{"b", "b"},
		{"ab", "ab"},
	}
	assert.Equal(t, expected, got, "n-grams")
}
