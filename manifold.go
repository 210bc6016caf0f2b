package upperenv

import "sort"

// SplitResult counts what SplitNonManifold did.
type SplitResult struct {
	NonManifold int // edges found with more than two faces
	Copies      int // private edge copies handed to the incident faces
	VertCopies  int // endpoint vertices duplicated to separate the copies
	Faces       int // faces deleted together with their single-face copies
}

// SplitNonManifold severs the mesh along every edge used by more than two
// faces, then deletes each resulting edge copy that is left with exactly one
// face, together with that face and any edge or vertex nothing else uses.
func (this *Mesh) SplitNonManifold() SplitResult {
	this.require(StageDegeneracyResolved, StageManifoldResolved)

	this.links()
	var targets []int
	for e, edge := range this.edges {
		if !edge.dead && len(this.edgeFaces[e]) > 2 {
			targets = append(targets, e)
		}
	}

	res := SplitResult{NonManifold: len(targets)}
	if len(targets) > 0 {
		var copies []int
		copies, res.VertCopies = this.splitEdges(targets)
		res.Copies = len(copies)
		res.Faces = this.deleteSingleFaceCopies(copies)
	}

	this.stage = StageManifoldResolved
	return res
}

// edgeSlot locates one walk of a split edge inside a face loop: the edge runs
// from loop[pos] to loop[pos+1].
type edgeSlot struct {
	face, pos int
}

// splitEdges gives every face incident to a target edge a private copy of
// it. Around each endpoint, faces still joined through a non-target edge
// keep sharing one vertex; every other fan of faces gets its own vertex copy.
// Faces that end up on the same copy anyway have the far endpoint duplicated
// privately.
//
// **params**
// + edge indices to split
//
// **returns**
// + indices of the edge copies
// + number of vertex copies made
func (this *Mesh) splitEdges(targets []int) ([]int, int) {
	this.links()

	isTarget := make(map[EdgeKey]bool, len(targets))
	slots := make([][]edgeSlot, len(targets))
	endpoints := make(map[int]bool)

	for i, e := range targets {
		key := this.edges[e].Key
		isTarget[key] = true
		endpoints[key[0]], endpoints[key[1]] = true, true

		for _, f := range uniqueInts(this.edgeFaces[e]) {
			loop := this.faces[f].Verts
			n := len(loop)
			for pos, v := range loop {
				if MakeEdgeKey(v, loop[(pos+1)%n]) == key {
					slots[i] = append(slots[i], edgeSlot{f, pos})
				}
			}
		}
	}

	order := make([]int, 0, len(endpoints))
	for v := range endpoints {
		order = append(order, v)
	}
	sort.Ints(order)

	vertCopies := 0
	touched := make(map[int]bool)

	// adjacency is read from the state before any vertex was separated;
	// faces sharing a non-target edge at one endpoint always land on the
	// same copy there, so the old connectivity stays valid for the others
	for _, v := range order {
		for _, fan := range this.fansAround(v, isTarget)[1:] {
			nv := this.addVert(this.verts[v].Co)
			vertCopies++
			for _, f := range fan {
				replaceInt(this.faces[f].Verts, v, nv)
				touched[f] = true
			}
		}
	}

	var copies []int
	for _, faceSlots := range slots {
		byPair := make(map[EdgeKey]bool)
		for _, s := range faceSlots {
			loop := this.faces[s.face].Verts
			next := (s.pos + 1) % len(loop)
			pair := MakeEdgeKey(loop[s.pos], loop[next])
			if byPair[pair] {
				// still shared: duplicate the far end for this face alone
				nv := this.addVert(this.verts[loop[next]].Co)
				vertCopies++
				loop[next] = nv
				touched[s.face] = true
				pair = MakeEdgeKey(loop[s.pos], nv)
			}
			byPair[pair] = true
		}
	}

	for f := range touched {
		loop := this.faces[f].Verts
		for i, v := range loop {
			this.ensureEdge(v, loop[(i+1)%len(loop)])
		}
	}

	seen := make(map[int]bool)
	for _, faceSlots := range slots {
		for _, s := range faceSlots {
			loop := this.faces[s.face].Verts
			e := this.edgeOf[MakeEdgeKey(loop[s.pos], loop[(s.pos+1)%len(loop)])]
			if !seen[e] {
				seen[e] = true
				copies = append(copies, e)
			}
		}
	}

	this.dirty = true
	return copies, vertCopies
}

// fansAround groups the faces around v into fans: faces are in the same fan
// when a chain of non-target edges at v joins them. Fans are ordered by
// their lowest face index.
func (this *Mesh) fansAround(v int, isTarget map[EdgeKey]bool) [][]int {
	parent := make(map[int]int)
	var find func(int) int
	find = func(f int) int {
		if parent[f] == f {
			return f
		}
		parent[f] = find(parent[f])
		return parent[f]
	}

	for _, e := range this.vertEdges[v] {
		for _, f := range this.edgeFaces[e] {
			if _, ok := parent[f]; !ok {
				parent[f] = f
			}
		}
	}
	for _, e := range this.vertEdges[v] {
		if isTarget[this.edges[e].Key] {
			continue
		}
		faces := this.edgeFaces[e]
		for i := 1; i < len(faces); i++ {
			ra, rb := find(faces[0]), find(faces[i])
			if ra != rb {
				parent[rb] = ra
			}
		}
	}

	groups := make(map[int][]int)
	for f := range parent {
		r := find(f)
		groups[r] = append(groups[r], f)
	}

	fans := make([][]int, 0, len(groups))
	for _, fan := range groups {
		sort.Ints(fan)
		fans = append(fans, fan)
	}
	sort.Slice(fans, func(i, j int) bool { return fans[i][0] < fans[j][0] })

	if len(fans) == 0 {
		return [][]int{nil}
	}
	return fans
}

// deleteSingleFaceCopies deletes every edge copy used by exactly one face,
// that face, and the edges and vertices used only by deleted faces.
func (this *Mesh) deleteSingleFaceCopies(copies []int) int {
	this.links()

	doomed := make(map[int]bool)
	for _, e := range copies {
		if this.edges[e].dead || len(this.edgeFaces[e]) != 1 {
			continue
		}
		doomed[this.edgeFaces[e][0]] = true
		this.killEdge(e)
	}

	for f := range doomed {
		loop := this.faces[f].Verts
		for i, v := range loop {
			e, ok := this.edgeOf[MakeEdgeKey(v, loop[(i+1)%len(loop)])]
			if !ok {
				continue
			}
			exclusive := true
			for _, g := range this.edgeFaces[e] {
				if !doomed[g] {
					exclusive = false
					break
				}
			}
			if exclusive {
				this.killEdge(e)
			}
		}
	}

	for f := range doomed {
		for _, v := range this.faces[f].Verts {
			if this.verts[v].dead {
				continue
			}
			alive := false
			for _, e := range this.vertEdges[v] {
				if !this.edges[e].dead {
					alive = true
					break
				}
			}
			if !alive {
				this.killVert(v)
			}
		}
		this.killFace(f)
	}

	return len(doomed)
}

func replaceInt(s []int, old, new int) {
	for i, v := range s {
		if v == old {
			s[i] = new
		}
	}
}
