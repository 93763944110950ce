package lattice

// Vector is a lattice coordinate or a relative interval offset.
// Axis convention for the whole module: I counts fifths and grows
// rightward across columns; J counts thirds and grows downward across
// rows, matching screen order.
type Vector struct {
	I, J int
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.I + o.I, v.J + o.J}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.I - o.I, v.J - o.J}
}

// Mul scales each component by the matching component of factor.
func (v Vector) Mul(factor Vector) Vector {
	return Vector{v.I * factor.I, v.J * factor.J}
}

// FlipVertical mirrors the J axis. Rows grow downward on screen while
// musical degrees ascend, so all degree math passes through this flip.
func (v Vector) FlipVertical() Vector {
	return v.Mul(Vector{1, -1})
}
