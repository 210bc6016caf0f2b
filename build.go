package upperenv

import "fmt"

// Build interns the exterior rings of polygons, in order, and assembles the
// resulting index lists into a Mesh at StageBuilt.
func Build(polygons []Polygon) *Mesh {
	interner := NewInterner()
	loops := make([][]int, len(polygons))
	for i, p := range polygons {
		loops[i] = interner.InternRing(p.Ring())
	}

	return BuildIndexed(interner.Coords(), loops)
}

// BuildIndexed creates a mesh from a vertex table and one index loop per
// face. Loops that reduce to fewer than three distinct vertices are dropped.
//
// **params**
// + vertex coordinates
// + face loops, each an index list into coords
//
// **returns**
// + a mesh at StageBuilt
func BuildIndexed(coords []Coord, loops [][]int) *Mesh {
	mesh := NewMesh()
	mesh.require(StageEmpty, StageBuilt)

	for _, co := range coords {
		mesh.addVert(co)
	}
	for _, loop := range loops {
		mesh.AddFace(loop)
	}

	mesh.stage = StageBuilt
	return mesh
}

// AddFace appends a face to a mesh still being built. It reports false, and
// adds nothing, if the loop has fewer than three distinct vertices.
func (this *Mesh) AddFace(loop []int) bool {
	if this.stage != StageEmpty {
		panic(fmt.Sprintf("upperenv: AddFace on %s mesh", this.stage))
	}

	norm, ok := normalizeLoop(loop)
	if !ok {
		return false
	}

	this.addFaceLoop(norm)
	return true
}
