package upperenv

import (
	"fmt"

	. "github.com/alexozer/upperenv/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// EdgeKey is an unordered pair of vertex indices, stored with the smaller
// index first.
type EdgeKey [2]int

func MakeEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{a, b}
}

type Vertex struct {
	Co   vec3.T
	dead bool
}

type Edge struct {
	Key  EdgeKey
	dead bool
}

// Face is a closed loop of vertex indices; the last vertex connects back to
// the first.
type Face struct {
	Verts []int
	dead  bool
}

// Mesh is an arena of vertices, edges and faces addressed by stable indices.
// Deleted elements are tombstoned, never reused, so an index stays valid
// (if dead) for the lifetime of the mesh.
//
// Edge to face and vertex to edge adjacency is derived from the arena and
// rebuilt lazily after any mutation.
type Mesh struct {
	verts []Vertex
	edges []Edge
	faces []Face
	stage Stage

	// live edge by vertex pair
	edgeOf map[EdgeKey]int

	// derived adjacency, valid while !dirty
	edgeFaces [][]int
	vertEdges [][]int
	dirty     bool
}

func NewMesh() *Mesh {
	return &Mesh{
		verts:  make([]Vertex, 0),
		edges:  make([]Edge, 0),
		faces:  make([]Face, 0),
		edgeOf: make(map[EdgeKey]int),
	}
}

func (this *Mesh) Stage() Stage {
	return this.stage
}

func (this *Mesh) addVert(co vec3.T) int {
	this.verts = append(this.verts, Vertex{Co: co})
	this.dirty = true
	return len(this.verts) - 1
}

// ensureEdge returns the live edge joining a and b, creating it if needed.
func (this *Mesh) ensureEdge(a, b int) int {
	key := MakeEdgeKey(a, b)
	if e, ok := this.edgeOf[key]; ok {
		return e
	}

	this.edges = append(this.edges, Edge{Key: key})
	e := len(this.edges) - 1
	this.edgeOf[key] = e
	this.dirty = true
	return e
}

// addFaceLoop appends a face for an already normalized loop and makes sure
// all of its edges exist.
func (this *Mesh) addFaceLoop(loop []int) int {
	for i, v := range loop {
		if v < 0 || v >= len(this.verts) || this.verts[v].dead {
			panic(fmt.Sprintf("upperenv: face references missing vertex %d", v))
		}
		this.ensureEdge(v, loop[(i+1)%len(loop)])
	}

	this.faces = append(this.faces, Face{Verts: loop})
	this.dirty = true
	return len(this.faces) - 1
}

func (this *Mesh) killFace(f int) {
	this.faces[f].dead = true
	this.dirty = true
}

func (this *Mesh) killEdge(e int) {
	edge := &this.edges[e]
	if edge.dead {
		return
	}
	edge.dead = true
	if this.edgeOf[edge.Key] == e {
		delete(this.edgeOf, edge.Key)
	}
	this.dirty = true
}

func (this *Mesh) killVert(v int) {
	this.verts[v].dead = true
	this.dirty = true
}

// rekeyEdge moves a live edge onto a new vertex pair. If another live edge
// already joins that pair, e is dropped in its favour.
func (this *Mesh) rekeyEdge(e int, key EdgeKey) {
	old := this.edges[e].Key
	if old == key {
		return
	}
	if this.edgeOf[old] == e {
		delete(this.edgeOf, old)
	}
	if other, ok := this.edgeOf[key]; ok && other != e {
		this.edges[e].dead = true
	} else {
		this.edges[e].Key = key
		this.edgeOf[key] = e
	}
	this.dirty = true
}

// links rebuilds the derived adjacency if the arena changed since the last
// call. A face that walks the same edge twice is listed twice.
func (this *Mesh) links() {
	if !this.dirty && this.edgeFaces != nil {
		return
	}

	this.edgeFaces = make([][]int, len(this.edges))
	this.vertEdges = make([][]int, len(this.verts))

	for e, edge := range this.edges {
		if edge.dead {
			continue
		}
		this.vertEdges[edge.Key[0]] = append(this.vertEdges[edge.Key[0]], e)
		this.vertEdges[edge.Key[1]] = append(this.vertEdges[edge.Key[1]], e)
	}

	for f, face := range this.faces {
		if face.dead {
			continue
		}
		n := len(face.Verts)
		for i, v := range face.Verts {
			key := MakeEdgeKey(v, face.Verts[(i+1)%n])
			e, ok := this.edgeOf[key]
			if !ok {
				panic(fmt.Sprintf("upperenv: face %d walks missing edge %v", f, key))
			}
			this.edgeFaces[e] = append(this.edgeFaces[e], f)
		}
	}

	this.dirty = false
}

// normalizeLoop drops consecutive repeats (cyclically) and reports whether
// at least three distinct vertices remain.
func normalizeLoop(loop []int) ([]int, bool) {
	out := make([]int, 0, len(loop))
	for _, v := range loop {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	distinct := make(map[int]struct{}, len(out))
	for _, v := range out {
		distinct[v] = struct{}{}
	}

	return out, len(distinct) >= 3
}

func (this *Mesh) NumVerts() (n int) {
	for _, v := range this.verts {
		if !v.dead {
			n++
		}
	}
	return
}

func (this *Mesh) NumEdges() (n int) {
	for _, e := range this.edges {
		if !e.dead {
			n++
		}
	}
	return
}

func (this *Mesh) NumFaces() (n int) {
	for _, f := range this.faces {
		if !f.dead {
			n++
		}
	}
	return
}

// Vertex returns the coordinate of vertex v and whether it is live.
func (this *Mesh) Vertex(v int) (vec3.T, bool) {
	if v < 0 || v >= len(this.verts) {
		return vec3.Zero, false
	}
	return this.verts[v].Co, !this.verts[v].dead
}

// Edges lists the vertex pairs of all live edges in creation order.
func (this *Mesh) Edges() []EdgeKey {
	keys := make([]EdgeKey, 0, len(this.edges))
	for _, e := range this.edges {
		if !e.dead {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Faces lists the vertex loops of all live faces in creation order.
func (this *Mesh) Faces() [][]int {
	loops := make([][]int, 0, len(this.faces))
	for _, f := range this.faces {
		if !f.dead {
			loops = append(loops, append([]int(nil), f.Verts...))
		}
	}
	return loops
}

// EdgeFaces returns the indices of the faces incident to the live edge
// joining a and b, or nil if there is no such edge.
func (this *Mesh) EdgeFaces(a, b int) []int {
	e, ok := this.edgeOf[MakeEdgeKey(a, b)]
	if !ok {
		return nil
	}
	this.links()
	return append([]int(nil), this.edgeFaces[e]...)
}

// WireEdges lists live edges without any incident face.
func (this *Mesh) WireEdges() []EdgeKey {
	this.links()
	var wires []EdgeKey
	for e, edge := range this.edges {
		if !edge.dead && len(this.edgeFaces[e]) == 0 {
			wires = append(wires, edge.Key)
		}
	}
	return wires
}

// LoneVerts lists live vertices without any incident edge.
func (this *Mesh) LoneVerts() []int {
	this.links()
	var lone []int
	for v, vert := range this.verts {
		if !vert.dead && len(this.vertEdges[v]) == 0 {
			lone = append(lone, v)
		}
	}
	return lone
}

// NonManifoldEdges lists live edges with more than two incident faces.
func (this *Mesh) NonManifoldEdges() []EdgeKey {
	this.links()
	var out []EdgeKey
	for e, edge := range this.edges {
		if !edge.dead && len(this.edgeFaces[e]) > 2 {
			out = append(out, edge.Key)
		}
	}
	return out
}

func (this *Mesh) Bounds() BoundingBox {
	bb := BoundingBox{}
	for i := range this.verts {
		if !this.verts[i].dead {
			bb.Extend(&this.verts[i].Co)
		}
	}
	return bb
}

// Check verifies the arena for self-consistency and panics on the first
// violation found.
func (this *Mesh) Check() {
	for f, face := range this.faces {
		if face.dead {
			continue
		}
		loop, ok := normalizeLoop(face.Verts)
		if !ok || len(loop) != len(face.Verts) {
			panic(fmt.Sprintf("upperenv: face %d is degenerate: %v", f, face.Verts))
		}
		for i, v := range face.Verts {
			if v < 0 || v >= len(this.verts) || this.verts[v].dead {
				panic(fmt.Sprintf("upperenv: face %d references missing vertex %d", f, v))
			}
			key := MakeEdgeKey(v, face.Verts[(i+1)%len(face.Verts)])
			if e, ok := this.edgeOf[key]; !ok || this.edges[e].dead {
				panic(fmt.Sprintf("upperenv: face %d walks missing edge %v", f, key))
			}
		}
	}

	live := 0
	for e, edge := range this.edges {
		if edge.dead {
			continue
		}
		live++
		a, b := edge.Key[0], edge.Key[1]
		if a >= b || this.verts[a].dead || this.verts[b].dead {
			panic(fmt.Sprintf("upperenv: edge %d has bad endpoints %v", e, edge.Key))
		}
		if this.edgeOf[edge.Key] != e {
			panic(fmt.Sprintf("upperenv: edge %d is not indexed", e))
		}
	}
	if live != len(this.edgeOf) {
		panic(fmt.Sprintf("upperenv: edge index holds %d entries for %d live edges", len(this.edgeOf), live))
	}
}

// Data is a dense, read-only copy of a mesh: no tombstones, indices
// renumbered in arena order.
type Data struct {
	Points []vec3.T
	Edges  [][2]int
	Faces  [][]int
}

func (this *Mesh) Export() Data {
	remap := make([]int, len(this.verts))
	data := Data{
		Points: make([]vec3.T, 0, len(this.verts)),
		Edges:  make([][2]int, 0, len(this.edges)),
		Faces:  make([][]int, 0, len(this.faces)),
	}

	for v, vert := range this.verts {
		remap[v] = -1
		if !vert.dead {
			remap[v] = len(data.Points)
			data.Points = append(data.Points, vert.Co)
		}
	}
	for _, edge := range this.edges {
		if !edge.dead {
			data.Edges = append(data.Edges, [2]int{remap[edge.Key[0]], remap[edge.Key[1]]})
		}
	}
	for _, face := range this.faces {
		if face.dead {
			continue
		}
		loop := make([]int, len(face.Verts))
		for i, v := range face.Verts {
			loop[i] = remap[v]
		}
		data.Faces = append(data.Faces, loop)
	}

	return data
}
