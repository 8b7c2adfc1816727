package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Source is the contract the presentation layer drives: a seeded frame
// producer that advances one tick per Step call. Step must not be invoked
// concurrently with itself; returned frames are independent snapshots.
type Source interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() *Frame
}
