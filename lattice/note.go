// Package lattice maps a 2-D integer grid onto musical pitch classes
// and provides the vector and set primitives the keyboard is built on.
// Everything here is pure: no state, no errors, total over all ints.
package lattice

// Interval steps in semitones. One cell right is a fifth up; one cell
// down is a major third down, i.e. a minor sixth (12-4) up.
const (
	FifthStep = 7
	ThirdStep = 8
)

var noteNames = [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

// NoteAt names the pitch class at a lattice position. floorMod keeps
// the index in [0,11] for any coordinates, so the lookup cannot miss;
// an out-of-range index would be an invariant violation and panics.
func NoteAt(v Vector) string {
	return noteNames[floorMod(v.I*FifthStep+v.J*ThirdStep, 12)]
}

// floorMod is a true floor mod: the result is never negative for
// positive m, unlike Go's truncating % operator.
func floorMod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
