package upperenv

import (
	. "github.com/alexozer/upperenv/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// How far vertex b sits off the line through its neighbours a and c. The
// collinear-vertex pass dissolves b when this falls below the tolerance.
// Coincident neighbours give no line, so the distance to a is used.
//
// **params**
// + the neighbour before b
// + the vertex under test
// + the neighbour after b
//
// **returns**
// + the perpendicular offset of b
func distToLine(a, b, c *vec3.T) float64 {
	ab := vec3.Sub(b, a)
	ac := vec3.Sub(c, a)

	base := ac.Length()
	if base < Epsilon {
		return ab.Length()
	}

	// parallelogram area over base length
	n := vec3.Cross(&ab, &ac)
	return n.Length() / base
}

// Determine whether a closed loop of points lies on a single line within tol
//
//	o ---- o -- o ---- o
//
// The line runs through the two points farthest apart; every other point must
// be within tol of it.
//
// **params**
// + the points of the loop
// + The tolerance
//
// **returns**
// + Whether the loop encloses no area
func loopIsCollinear(points []vec3.T, tol float64) bool {
	if len(points) < 3 {
		return true
	}

	ia, ib, best := 0, 0, -1.0
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := vec3.SquareDistance(&points[i], &points[j]); d > best {
				ia, ib, best = i, j, d
			}
		}
	}

	for i := range points {
		if distToLine(&points[ia], &points[i], &points[ib]) >= tol {
			return false
		}
	}

	return true
}
