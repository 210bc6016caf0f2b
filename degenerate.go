package upperenv

import "github.com/ungerik/go3d/float64/vec3"

// DissolveDegenerate removes geometry that is degenerate within tol, then
// repeats until a whole pass changes nothing. Each pass
//
//   - collapses edges shorter than tol, merging their endpoints into the
//     lower-indexed one, which keeps its position;
//   - dissolves vertices with exactly two edges that lie within tol of the
//     line through their two neighbours;
//   - dissolves faces whose vertices all lie within tol of one line. A
//     sliver triangle is folded into its neighbours by splitting the long
//     edge at the middle vertex; longer collinear loops are dropped.
//
// Every dissolve removes at least one vertex, edge or face, so the loop ends.
//
// **params**
// + distance tolerance
//
// **returns**
// + number of dissolves performed
func (this *Mesh) DissolveDegenerate(tol float64) int {
	this.require(StageBuilt, StageDegeneracyResolved)

	total := 0
	for {
		n := this.collapseShortEdges(tol)
		n += this.dissolveCollinearVerts(tol)
		n += this.dissolveZeroAreaFaces(tol)
		if n == 0 {
			break
		}
		total += n
	}

	this.stage = StageDegeneracyResolved
	return total
}

func (this *Mesh) collapseShortEdges(tol float64) int {
	parent := make([]int, len(this.verts))
	for i := range parent {
		parent[i] = i
	}
	find := func(v int) int {
		for parent[v] != v {
			parent[v] = parent[parent[v]]
			v = parent[v]
		}
		return v
	}

	count := 0
	for _, edge := range this.edges {
		if edge.dead {
			continue
		}
		a, b := edge.Key[0], edge.Key[1]
		if vec3.Distance(&this.verts[a].Co, &this.verts[b].Co) >= tol {
			continue
		}

		ra, rb := find(a), find(b)
		if ra == rb {
			continue
		}
		if rb < ra {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		count++
	}

	if count > 0 {
		this.mergeVerts(find)
	}
	return count
}

// mergeVerts replaces every vertex by find(vertex) across faces and edges.
func (this *Mesh) mergeVerts(find func(int) int) {
	for v := range this.verts {
		if !this.verts[v].dead && find(v) != v {
			this.killVert(v)
		}
	}

	for f := range this.faces {
		face := &this.faces[f]
		if face.dead {
			continue
		}
		loop := make([]int, len(face.Verts))
		for i, v := range face.Verts {
			loop[i] = find(v)
		}
		norm, ok := normalizeLoop(loop)
		if !ok {
			this.killFace(f)
			continue
		}
		face.Verts = norm
	}

	for e := range this.edges {
		edge := &this.edges[e]
		if edge.dead {
			continue
		}
		a, b := find(edge.Key[0]), find(edge.Key[1])
		if a == b {
			this.killEdge(e)
			continue
		}
		this.rekeyEdge(e, MakeEdgeKey(a, b))
	}

	this.dirty = true
}

func (this *Mesh) otherEnd(e, v int) int {
	key := this.edges[e].Key
	if key[0] == v {
		return key[1]
	}
	return key[0]
}

func (this *Mesh) dissolveCollinearVerts(tol float64) int {
	this.links()

	// vertices whose neighbourhood changed this pass; the derived adjacency
	// is stale around them until the next pass
	touched := make(map[int]bool)
	count := 0

	for v := range this.verts {
		if this.verts[v].dead || touched[v] || len(this.vertEdges[v]) != 2 {
			continue
		}

		e0, e1 := this.vertEdges[v][0], this.vertEdges[v][1]
		a, b := this.otherEnd(e0, v), this.otherEnd(e1, v)
		if distToLine(&this.verts[a].Co, &this.verts[v].Co, &this.verts[b].Co) >= tol {
			continue
		}

		faces := uniqueInts(this.edgeFaces[e0], this.edgeFaces[e1])
		if !this.sitsBetween(v, a, b, faces) {
			continue
		}

		for _, f := range faces {
			face := &this.faces[f]
			for _, u := range face.Verts {
				touched[u] = true
			}
			norm, ok := normalizeLoop(removeInt(face.Verts, v))
			if !ok {
				this.killFace(f)
				continue
			}
			face.Verts = norm
		}

		this.killEdge(e0)
		this.killEdge(e1)
		this.killVert(v)
		this.ensureEdge(a, b)

		touched[v], touched[a], touched[b] = true, true, true
		count++
	}

	return count
}

// sitsBetween reports whether every occurrence of v in the given faces has
// a on one side and b on the other.
func (this *Mesh) sitsBetween(v, a, b int, faces []int) bool {
	for _, f := range faces {
		loop := this.faces[f].Verts
		n := len(loop)
		for i, u := range loop {
			if u != v {
				continue
			}
			prev, next := loop[(i+n-1)%n], loop[(i+1)%n]
			if !(prev == a && next == b) && !(prev == b && next == a) {
				return false
			}
		}
	}
	return true
}

func (this *Mesh) dissolveZeroAreaFaces(tol float64) int {
	this.links()

	touched := make(map[int]bool)
	count := 0

	for f := range this.faces {
		face := &this.faces[f]
		if face.dead || anyTouched(touched, face.Verts) {
			continue
		}

		pts := make([]vec3.T, len(face.Verts))
		for i, v := range face.Verts {
			pts[i] = this.verts[v].Co
		}
		if !loopIsCollinear(pts, tol) {
			continue
		}

		loop := face.Verts
		for _, u := range loop {
			touched[u] = true
		}

		if len(loop) == 3 {
			this.foldSliver(f, touched)
		} else {
			this.killFace(f)
		}
		count++
	}

	return count
}

// foldSliver removes a zero-area triangle by splitting its longest edge at
// the opposite vertex in every other face using that edge.
func (this *Mesh) foldSliver(f int, touched map[int]bool) {
	loop := this.faces[f].Verts

	mid, best := 0, -1.0
	for i := range loop {
		a, c := loop[(i+1)%3], loop[(i+2)%3]
		if d := vec3.SquareDistance(&this.verts[a].Co, &this.verts[c].Co); d > best {
			mid, best = i, d
		}
	}
	b, a, c := loop[mid], loop[(mid+1)%3], loop[(mid+2)%3]

	long := this.edgeOf[MakeEdgeKey(a, c)]
	for _, g := range uniqueInts(this.edgeFaces[long]) {
		if g == f {
			continue
		}
		this.faces[g].Verts = insertBetween(this.faces[g].Verts, a, c, b)
		for _, u := range this.faces[g].Verts {
			touched[u] = true
		}
	}

	this.killFace(f)
	this.killEdge(long)
}

// insertBetween returns loop with x inserted between every consecutive
// (cyclic) occurrence of a and c.
func insertBetween(loop []int, a, c, x int) []int {
	n := len(loop)
	out := make([]int, 0, n+1)
	for i, u := range loop {
		out = append(out, u)
		next := loop[(i+1)%n]
		if (u == a && next == c) || (u == c && next == a) {
			out = append(out, x)
		}
	}
	return out
}

func removeInt(s []int, x int) []int {
	out := make([]int, 0, len(s))
	for _, v := range s {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}

func uniqueInts(lists ...[]int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, l := range lists {
		for _, v := range l {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func anyTouched(touched map[int]bool, verts []int) bool {
	for _, v := range verts {
		if touched[v] {
			return true
		}
	}
	return false
}
