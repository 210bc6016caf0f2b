package upperenv

import (
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func co(x, y, z float64) Coord {
	return Coord{x, y, z}
}

func square(x0, y0, size, z float64) Polygon {
	return NewPolygon(
		co(x0, y0, z),
		co(x0+size, y0, z),
		co(x0+size, y0+size, z),
		co(x0, y0+size, z),
	)
}

// walkTo runs the stages that lead up to stage.
func walkTo(t *testing.T, m *Mesh, stage Stage, tol float64) {
	t.Helper()
	if m.Stage() < StageDegeneracyResolved && stage >= StageDegeneracyResolved {
		m.DissolveDegenerate(tol)
	}
	if m.Stage() < StageManifoldResolved && stage >= StageManifoldResolved {
		m.SplitNonManifold()
	}
	if m.Stage() < StageClean && stage >= StageClean {
		m.DeleteLoose()
	}
}

func assertManifold(t *testing.T, m *Mesh) {
	t.Helper()
	for _, key := range m.Edges() {
		n := len(m.EdgeFaces(key[0], key[1]))
		if n < 1 || n > 2 {
			t.Errorf("edge %v has %d faces, want 1 or 2", key, n)
		}
		a, _ := m.Vertex(key[0])
		b, _ := m.Vertex(key[1])
		if d := vec3.Distance(&a, &b); d < tol {
			t.Errorf("edge %v has length %g", key, d)
		}
	}
	if wires := m.WireEdges(); len(wires) != 0 {
		t.Errorf("wire edges left: %v", wires)
	}
	if lone := m.LoneVerts(); len(lone) != 0 {
		t.Errorf("lone vertices left: %v", lone)
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
