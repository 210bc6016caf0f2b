package upperenv

// Envelope computes the upper envelope of a set of polygons with height: the
// smallest polygon set describing, at every point of their common footprint,
// the highest of the overlapping inputs. bufferSize is the boundary snapping
// tolerance of the arrangement and is unrelated to the cleanup tolerance.
//
// The arrangement itself is not part of this module; callers plug one in.
type Envelope interface {
	UpperSurface(polygons []Polygon, bufferSize float64) ([]Polygon, error)
}

// EnvelopeFunc adapts a plain function to Envelope.
type EnvelopeFunc func(polygons []Polygon, bufferSize float64) ([]Polygon, error)

func (f EnvelopeFunc) UpperSurface(polygons []Polygon, bufferSize float64) ([]Polygon, error) {
	return f(polygons, bufferSize)
}

// Identity treats its input as already being an upper envelope.
var Identity Envelope = EnvelopeFunc(func(polygons []Polygon, _ float64) ([]Polygon, error) {
	return polygons, nil
})
