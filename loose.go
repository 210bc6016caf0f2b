package upperenv

// DeleteLoose deletes every edge without a face, then every vertex without
// an edge. Neither deletion can leave new loose geometry, so one pass is
// enough.
//
// **returns**
// + number of wire edges deleted
// + number of lone vertices deleted
func (this *Mesh) DeleteLoose() (wires, lone int) {
	this.require(StageManifoldResolved, StageClean)

	this.links()
	for e, edge := range this.edges {
		if !edge.dead && len(this.edgeFaces[e]) == 0 {
			this.killEdge(e)
			wires++
		}
	}

	this.links()
	for v, vert := range this.verts {
		if !vert.dead && len(this.vertEdges[v]) == 0 {
			this.killVert(v)
			lone++
		}
	}

	this.stage = StageClean
	return
}
