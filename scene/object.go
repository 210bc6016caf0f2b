// Package scene holds the host side of the upper-envelope pipeline: source
// objects with a world transform, the files they are read from and written
// to, and the object that receives the result.
package scene

import (
	"github.com/alexozer/upperenv"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// DefaultSuffix is appended to a source object's name to name its result.
const DefaultSuffix = " Upper Envelope"

// Object is a polygon mesh placed in a scene. Points are in object space;
// Matrix maps them to world space.
type Object struct {
	Name        string
	Points      []vec3.T
	Faces       [][]int
	Matrix      mat4.T
	Collections []string
}

func NewObject(name string) *Object {
	return &Object{
		Name:   name,
		Matrix: mat4.Ident,
	}
}

// Polygons returns one world-space polygon per face. Faces that reference a
// missing point, or whose polygon is not Valid, are skipped.
//
// **returns**
// + the valid polygons, in face order
func (this *Object) Polygons() []upperenv.Polygon {
	polygons := make([]upperenv.Polygon, 0, len(this.Faces))

	for _, face := range this.Faces {
		ring := make([]upperenv.Coord, 0, len(face)+1)
		ok := true
		for _, i := range face {
			if i < 0 || i >= len(this.Points) {
				ok = false
				break
			}
			ring = append(ring, this.Matrix.MulVec3(&this.Points[i]))
		}
		if !ok {
			continue
		}

		p := upperenv.NewPolygon(ring...)
		if p.Valid() {
			polygons = append(polygons, p)
		}
	}

	return polygons
}

// ObjectName names the object produced from source.
func ObjectName(source, suffix string) string {
	return source + suffix
}

// Result is the output of FindUpperEnvelope.
type Result struct {
	Object *Object
	Mesh   *upperenv.Mesh
	Report upperenv.Report
}

// FindUpperEnvelope extracts the valid polygons of source, reduces them to
// their upper envelope and assembles a new object from the cleaned mesh.
// The new object is named after source with suffix appended, lives in world
// space, and belongs to the same collections as source.
func FindUpperEnvelope(source *Object, env upperenv.Envelope, opts upperenv.Options, suffix string) (Result, error) {
	polygons := source.Polygons()
	if opts.Logger != nil {
		opts.Logger.Debug("scene.polygons", "object", source.Name,
			"faces", len(source.Faces), "valid", len(polygons))
	}

	mesh, report, err := upperenv.Find(polygons, env, opts)
	if err != nil {
		return Result{}, err
	}

	data := mesh.Export()
	out := NewObject(ObjectName(source.Name, suffix))
	out.Points = data.Points
	out.Faces = data.Faces
	out.Collections = append([]string(nil), source.Collections...)

	return Result{Object: out, Mesh: mesh, Report: report}, nil
}
