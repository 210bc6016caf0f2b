package internal

const (
	// Epsilon is the threshold below which two floats are considered equal
	// by the exact-ish predicates of this module.
	Epsilon = 1e-10

	// Tolerance is the default cleanup distance: endpoints closer than this
	// are merged, mid-face vertices closer than this to the line through
	// their neighbours are dissolved.
	Tolerance = 1e-4

	// BufferSize is the default boundary-snapping tolerance handed to the
	// upper-envelope collaborator. It is independent of Tolerance.
	BufferSize = 1e-15
)
