package upperenv

import "testing"

// three faces hinged on the edge (0,0,0)-(1,0,0), which becomes vertices 0 and 1
func hinge() []Polygon {
	p, q := co(0, 0, 0), co(1, 0, 0)
	return []Polygon{
		NewPolygon(p, q, co(1, 1, 0), co(0, 1, 0)),
		NewPolygon(q, p, co(0, -1, 0), co(1, -1, 0)),
		NewPolygon(p, q, co(1, 0, 1), co(0, 0, 1)),
	}
}

func TestSplitEdgesGivesEachFaceAPrivateCopy(t *testing.T) {
	m := Build(hinge())
	walkTo(t, m, StageDegeneracyResolved, tol)

	if got := m.NonManifoldEdges(); len(got) != 1 || got[0] != (EdgeKey{0, 1}) {
		t.Fatalf("non-manifold edges = %v, want [[0 1]]", got)
	}

	copies, vertCopies := m.splitEdges([]int{m.edgeOf[EdgeKey{0, 1}]})
	if len(copies) != 3 {
		t.Fatalf("copies = %d, want 3", len(copies))
	}
	if vertCopies != 4 {
		t.Fatalf("vertex copies = %d, want 4", vertCopies)
	}

	m.links()
	owners := make(map[int]bool)
	for _, e := range copies {
		faces := m.edgeFaces[e]
		if len(faces) != 1 {
			t.Fatalf("copy %v has faces %v, want exactly one", m.edges[e].Key, faces)
		}
		if owners[faces[0]] {
			t.Fatalf("face %d owns two copies", faces[0])
		}
		owners[faces[0]] = true

		a, _ := m.Vertex(m.edges[e].Key[0])
		b, _ := m.Vertex(m.edges[e].Key[1])
		if !(a == co(0, 0, 0) && b == co(1, 0, 0)) && !(a == co(1, 0, 0) && b == co(0, 0, 0)) {
			t.Fatalf("copy runs %v-%v, want the hinge coordinates", a, b)
		}
	}
	if len(m.NonManifoldEdges()) != 0 {
		t.Fatalf("still non-manifold after split")
	}
	m.Check()
}

func TestSplitNonManifoldDropsHingedSlivers(t *testing.T) {
	m := Build(hinge())
	walkTo(t, m, StageDegeneracyResolved, tol)

	res := m.SplitNonManifold()
	if res.NonManifold != 1 || res.Copies != 3 || res.Faces != 3 {
		t.Fatalf("result = %+v, want 1 edge, 3 copies, 3 faces", res)
	}
	if m.NumFaces() != 0 {
		t.Fatalf("faces = %d, want 0", m.NumFaces())
	}
	if len(m.EdgeFaces(0, 1)) != 0 {
		t.Fatalf("hinge edge still has faces")
	}
	m.Check()
}

func TestSplitNonManifoldKeepsAttachedNeighbour(t *testing.T) {
	polys := append(hinge(),
		// shares (1,0,0)-(1,1,0) with the first hinge face
		NewPolygon(co(1, 0, 0), co(2, 0, 0), co(2, 1, 0), co(1, 1, 0)),
	)

	m := Build(polys)
	walkTo(t, m, StageDegeneracyResolved, tol)

	res := m.SplitNonManifold()
	if res.Faces != 3 {
		t.Fatalf("deleted faces = %d, want 3", res.Faces)
	}

	wires, lone := m.DeleteLoose()
	if m.NumFaces() != 1 || m.NumVerts() != 4 || m.NumEdges() != 4 {
		t.Fatalf("faces/verts/edges = %d/%d/%d, want 1/4/4 (wires %d, lone %d)",
			m.NumFaces(), m.NumVerts(), m.NumEdges(), wires, lone)
	}
	assertManifold(t, m)
	m.Check()
}

func TestSplitNonManifoldLeavesManifoldMeshAlone(t *testing.T) {
	m := Build([]Polygon{square(0, 0, 1, 0), square(1, 0, 1, 0)})
	walkTo(t, m, StageDegeneracyResolved, tol)
	before := m.Export()

	res := m.SplitNonManifold()
	if res != (SplitResult{}) {
		t.Fatalf("result = %+v, want zero", res)
	}
	if m.Stage() != StageManifoldResolved {
		t.Fatalf("stage = %s", m.Stage())
	}
	if after := m.Export(); len(after.Faces) != len(before.Faces) || len(after.Edges) != len(before.Edges) {
		t.Fatalf("mesh changed")
	}
}

func TestSplitNonManifoldRequiresDegeneracyResolved(t *testing.T) {
	m := Build(hinge())
	mustPanic(t, "SplitNonManifold on built mesh", func() { m.SplitNonManifold() })
}
