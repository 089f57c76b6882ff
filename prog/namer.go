package prog

import "strconv"

// Namer is the fresh-name supply shared by the naming pass and the
// code generator. One monotonic counter covers every entity kind,
// so every name issued within a run is unique and two runs over the
// same program with fresh namers produce identical sequences.
//
// A Namer is run-scoped, single-writer state: create or Reset one
// per independent pass and thread it explicitly. It is never a
// package global.
type Namer struct {
	next int
}

// NewNamer creates a fresh name supply
func NewNamer() *Namer {
	return &Namer{}
}

// Fresh allocates the next name with the given kind prefix
// (r for refs, a for arrays, h for handles, o for objects,
// v for value copies, i for loop indices)
func (n *Namer) Fresh(prefix string) string {
	name := prefix + strconv.Itoa(n.next)
	n.next++
	return name
}

// Reset rewinds the counter so the next pass re-issues the same
// sequence
func (n *Namer) Reset() {
	n.next = 0
}
