package internal

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// BoundingBox tracks the extent of a mesh's vertices. The plot fits its
// canvas to it. A zero BoundingBox holds no points.
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Extend grows the box to cover point. The first point sets both corners.
func (this *BoundingBox) Extend(point *vec3.T) *BoundingBox {
	if !this.initialized {
		this.Min, this.Max = *point, *point
		this.initialized = true
		return this
	}

	for i := range point {
		this.Min[i] = math.Min(this.Min[i], point[i])
		this.Max[i] = math.Max(this.Max[i], point[i])
	}
	return this
}

// Empty reports whether no point has been added yet.
func (this *BoundingBox) Empty() bool {
	return !this.initialized
}

// Span is the extent along axis 0 (x), 1 (y) or 2 (z). The plot scales
// its canvas by the x/y spans and labels the z span. Other axes span 0.
func (this *BoundingBox) Span(axis int) float64 {
	if axis < 0 || axis >= len(this.Min) {
		return 0
	}
	return this.Max[axis] - this.Min[axis]
}
