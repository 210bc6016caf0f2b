package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexozer/upperenv"
	"github.com/ungerik/go3d/float64/vec3"
)

const sampleOBJ = `# exported
o Terrain
v 0 0 0
v 1 0 0
v 1 1 0.5
v 0 1 0.5
vt 0 0
f 1/1 2/1 3/1
f -4 -2 -1
`

func TestDecodeOBJ(t *testing.T) {
	obj, err := DecodeOBJ(strings.NewReader(sampleOBJ), "fallback")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.Name != "Terrain" {
		t.Fatalf("name = %q, want Terrain", obj.Name)
	}
	if len(obj.Points) != 4 {
		t.Fatalf("points = %d, want 4", len(obj.Points))
	}
	if obj.Points[2] != (vec3.T{1, 1, 0.5}) {
		t.Fatalf("point 2 = %v", obj.Points[2])
	}
	want := [][]int{{0, 1, 2}, {0, 2, 3}}
	for i, face := range want {
		for j, v := range face {
			if obj.Faces[i][j] != v {
				t.Fatalf("faces = %v, want %v", obj.Faces, want)
			}
		}
	}
}

func TestDecodeOBJStopsAtSecondObject(t *testing.T) {
	src := "o A\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\no B\nv 5 5 5\n"
	obj, err := DecodeOBJ(strings.NewReader(src), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.Name != "A" || len(obj.Points) != 3 {
		t.Fatalf("name/points = %q/%d, want A/3", obj.Name, len(obj.Points))
	}
}

func TestDecodeOBJErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"short vertex", "v 1 2\n", "line 1"},
		{"bad number", "v 1 2 x\n", "line 1"},
		{"index zero", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "index 0"},
		{"out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n", "out of range"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "line 3"},
	}

	for _, c := range cases {
		_, err := DecodeOBJ(strings.NewReader(c.src), "x")
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: err = %v, want mention of %q", c.name, err, c.want)
		}
	}
}

func TestReadOBJ(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "hills.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	obj, err := ReadOBJ(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.Name != "hills" {
		t.Fatalf("name = %q, want file name", obj.Name)
	}

	_, err = ReadOBJ(filepath.Join(dir, "missing.obj"))
	if !upperenv.IsKind(err, upperenv.KindNotFound) {
		t.Fatalf("err = %v, want not_found", err)
	}

	bad := filepath.Join(dir, "bad.obj")
	if err := os.WriteFile(bad, []byte("v 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ReadOBJ(bad)
	if !upperenv.IsKind(err, upperenv.KindInvalidInput) || !strings.Contains(err.Error(), bad) {
		t.Fatalf("err = %v, want invalid_input naming the path", err)
	}
}

func TestWriteOBJ(t *testing.T) {
	obj := NewObject("Ground Upper Envelope")
	obj.Points = []vec3.T{{0, 0, 0}, {1, 0, 0.25}, {0, 1, 0}}
	obj.Faces = [][]int{{0, 1, 2}}
	shift := vec3.T{0, 0, 1}
	obj.Matrix.SetTranslation(&shift)

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, obj); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}

	want := "o Ground Upper Envelope\nv 0 0 1\nv 1 0 1.25\nv 0 1 1\nf 1 2 3\n"
	if buf.String() != want {
		t.Fatalf("got=%q\nwant=%q", buf.String(), want)
	}
}
