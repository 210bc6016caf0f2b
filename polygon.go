package upperenv

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/peterstace/simplefeatures/geom"
	"github.com/ungerik/go3d/float64/vec3"
)

// Coord is a point of the lifted surface; the third component is height.
type Coord = vec3.T

// Polygon is a simple polygon with height, described by its exterior ring.
// The ring is closed: its last point repeats the first.
type Polygon struct {
	Exterior []Coord
}

// NewPolygon builds a polygon from its corners, closing the ring if the
// caller did not.
func NewPolygon(points ...Coord) Polygon {
	ring := append([]Coord(nil), points...)
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return Polygon{Exterior: ring}
}

// Ring returns the exterior ring without its closing point.
func (this Polygon) Ring() []Coord {
	n := len(this.Exterior)
	if n > 1 && this.Exterior[0] == this.Exterior[n-1] {
		return this.Exterior[:n-1]
	}
	return this.Exterior
}

func (this Polygon) footprint() orb.Ring {
	ring := make(orb.Ring, len(this.Exterior))
	for i, co := range this.Exterior {
		ring[i] = orb.Point{co[0], co[1]}
	}
	return ring
}

// Valid reports whether the polygon's XY footprint is a closed ring of at
// least three distinct points that is simple and encloses non-zero area.
// Heights do not take part.
func (this Polygon) Valid() bool {
	ring := this.footprint()
	if !ring.Closed() {
		return false
	}

	distinct := make(map[orb.Point]struct{}, len(ring))
	for _, p := range ring {
		distinct[p] = struct{}{}
	}
	if len(distinct) < 3 {
		return false
	}

	if planar.Area(ring) == 0 {
		return false
	}

	return footprintPolygon(ring).Validate() == nil
}

// footprintPolygon converts a footprint ring for the OGC validity check.
func footprintPolygon(ring orb.Ring) geom.Polygon {
	coords := make([]float64, 0, 2*len(ring))
	for _, p := range ring {
		coords = append(coords, p[0], p[1])
	}
	exterior := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	return geom.NewPolygon([]geom.LineString{exterior})
}
