package align

// EditType classifies a single aligned pair.
type EditType int

const (
	EditCorrect EditType = iota
	EditSubstitution
	EditInsertion
	EditDeletion
)

// String returns the string representation of EditType
func (e EditType) String() string {
	switch e {
	case EditCorrect:
		return "correct"
	case EditSubstitution:
		return "substitution"
	case EditInsertion:
		return "insertion"
	case EditDeletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Classify maps one aligned pair to its edit type using sentinel
// comparisons: a sentinel on the reference side is an insertion, a sentinel
// on the hypothesis side is a deletion, equal tokens are correct and
// everything else is a substitution. At most one side of a pair carries the
// sentinel.
func Classify(p Pair, eps string) EditType {
	switch {
	case p.Ref == p.Hyp:
		return EditCorrect
	case p.Ref == eps:
		return EditInsertion
	case p.Hyp == eps:
		return EditDeletion
	default:
		return EditSubstitution
	}
}
