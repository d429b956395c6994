package align

import (
	"fmt"
	"testing"

	"seqalign/assert"
)

func TestClassify(t *testing.T) {
	scenarios := []struct {
		ref      string
		hyp      string
		expected EditType
	}{
		{"cat", "cat", EditCorrect},
		{"cat", "cad", EditSubstitution},
		{"|", "cat", EditInsertion},
		{"cat", "|", EditDeletion},
		{"|", "|", EditCorrect},
	}

	for _, sc := range scenarios {
		got := Classify(Pair{Ref: sc.ref, Hyp: sc.hyp}, "|")
		assert.Equal(t, sc.expected, got, fmt.Sprintf("%q vs %q", sc.ref, sc.hyp))
	}
}

func TestClassifyAlignment(t *testing.T) {
	pairs, _, err := Align([]string{"a", "b", "c"}, []string{"a", "x", "c"}, charConfig(true))
	assert.NoError(t, err)

	expected := []EditType{EditCorrect, EditSubstitution, EditCorrect}
	assert.Len(t, pairs, len(expected), "pair count")
	for i, p := range pairs {
		assert.Equal(t, expected[i], Classify(p, "|"), fmt.Sprintf("pair %d", i))
	}
}

func TestEditTypeString(t *testing.T) {
	assert.Equal(t, "correct", EditCorrect.String())
	assert.Equal(t, "substitution", EditSubstitution.String())
	assert.Equal(t, "insertion", EditInsertion.String())
	assert.Equal(t, "deletion", EditDeletion.String())
	assert.Equal(t, "unknown", EditType(42).String())
}
