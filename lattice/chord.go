package lattice

// Chord places a degree shape at a root, yielding the absolute
// positions of one chord instance. The root itself is always part of
// the result, even when degrees is empty: the zero degree is implied.
func Chord(root Vector, degrees Scale) Scale {
	out := NewScale(root)
	for d := range degrees {
		out[root.Add(d.FlipVertical())] = struct{}{}
	}
	return out
}

// DegreeOf converts an absolute position back into the interval degree
// it represents relative to root. Exact inverse of the placement done
// by Chord.
func DegreeOf(root, note Vector) Vector {
	return note.Sub(root).FlipVertical()
}
