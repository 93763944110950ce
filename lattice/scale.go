package lattice

// Scale is a set of vectors, unique by value and unordered. Depending
// on context the elements are interval degrees relative to a root or
// absolute lattice positions; callers track which reading applies.
// Operations return new sets and leave their inputs alone.
type Scale map[Vector]struct{}

// NewScale builds a scale from the given vectors.
func NewScale(vs ...Vector) Scale {
	s := make(Scale, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

func (s Scale) Member(v Vector) bool {
	_, ok := s[v]
	return ok
}

func (s Scale) Clone() Scale {
	out := make(Scale, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Toggle flips membership of a single vector: v is in the result
// exactly when it was not in s.
func (s Scale) Toggle(v Vector) Scale {
	return s.SymDiff(NewScale(v))
}

// SymDiff is the symmetric difference: vectors in exactly one of the
// two sets survive. Commutative, so toggling a whole chord in or out
// of a selection is a single SymDiff. Implemented by copying other and
// flipping membership of each element of s.
func (s Scale) SymDiff(other Scale) Scale {
	out := other.Clone()
	for v := range s {
		if out.Member(v) {
			delete(out, v)
		} else {
			out[v] = struct{}{}
		}
	}
	return out
}

func (s Scale) Union(other Scale) Scale {
	out := s.Clone()
	for v := range other {
		out[v] = struct{}{}
	}
	return out
}

// Equal reports whether two scales hold the same vectors.
func (s Scale) Equal(other Scale) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Member(v) {
			return false
		}
	}
	return true
}

// Vectors returns the elements in unspecified order.
func (s Scale) Vectors() []Vector {
	out := make([]Vector, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}
