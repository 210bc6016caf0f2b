package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexozer/upperenv"
)

const groundYAML = `name: Ground
collections: [Scene]
polygons:
  - [[0, 0, 0], [1, 0, 0], [1, 1, 0], [0, 1, 0]]
  - [[1, 0, 0], [2, 0, 0], [2, 1, 0], [1, 1, 0]]
`

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAssembleWritesOBJ(t *testing.T) {
	input := writeTemp(t, "ground.yaml", groundYAML)

	out, _, err := run(t, "assemble", "-i", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "o Ground Upper Envelope\n") {
		t.Fatalf("got=%s", out)
	}
	if n := strings.Count(out, "\nv "); n != 6 {
		t.Fatalf("vertices = %d, want 6\n%s", n, out)
	}
	if n := strings.Count(out, "\nf "); n != 2 {
		t.Fatalf("faces = %d, want 2\n%s", n, out)
	}
}

func TestCheckPrintsReport(t *testing.T) {
	input := writeTemp(t, "ground.yaml", groundYAML)
	cfg := writeTemp(t, "cfg.yaml", "output:\n  suffix: \" Top\"\n")

	out, _, err := run(t, "check", "-i", input, "-c", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"object:       Ground Top",
		"collections:  [Scene]",
		"polygons:     2 (dropped 0)",
		"result:       6 verts, 7 edges, 2 faces",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPlotWritesSVG(t *testing.T) {
	input := writeTemp(t, "ground.yaml", groundYAML)

	out, _, err := run(t, "plot", "-i", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<svg") || strings.Count(out, "<polygon") != 2 {
		t.Fatalf("got=%s", out)
	}
}

func TestDebugLogsStages(t *testing.T) {
	input := writeTemp(t, "ground.yaml", groundYAML)

	_, stderr, err := run(t, "check", "--debug", "-i", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := strings.Count(stderr, `"msg":"mesh.stage"`); n != 4 {
		t.Fatalf("stage records = %d, want 4\n%s", n, stderr)
	}
}

func TestCommandErrors(t *testing.T) {
	input := writeTemp(t, "ground.yaml", groundYAML)
	badCfg := writeTemp(t, "cfg.yaml", "cleanup:\n  tolerance: -1\n")

	if _, _, err := run(t, "assemble"); err == nil || !strings.Contains(err.Error(), "input") {
		t.Fatalf("err = %v, want missing input flag", err)
	}

	_, _, err := run(t, "assemble", "-i", filepath.Join(t.TempDir(), "none.obj"))
	if !upperenv.IsKind(err, upperenv.KindNotFound) {
		t.Fatalf("err = %v, want not_found", err)
	}

	_, _, err = run(t, "assemble", "-i", input, "-c", badCfg)
	if !upperenv.IsKind(err, upperenv.KindInvalidConfig) {
		t.Fatalf("err = %v, want invalid_config", err)
	}
}
