package upperenv

import (
	"io"
	"log/slog"

	. "github.com/alexozer/upperenv/internal"
)

// Options configures the pipeline. BufferSize goes to the upper-envelope
// collaborator, Tolerance to the cleanup stages; the two are never mixed.
type Options struct {
	BufferSize float64
	Tolerance  float64
	Logger     *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		BufferSize: BufferSize,
		Tolerance:  Tolerance,
	}
}

func (this Options) normalized() Options {
	if this.Tolerance <= 0 {
		this.Tolerance = Tolerance
	}
	if this.BufferSize < 0 {
		this.BufferSize = BufferSize
	}
	if this.Logger == nil {
		this.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return this
}

// Report counts what each stage of the pipeline did.
type Report struct {
	Polygons  int // polygons handed to the builder
	Dropped   int // polygons with fewer than three distinct vertices
	Dissolved int
	Split     SplitResult
	Wires     int
	Lone      int

	Verts, Edges, Faces int // final mesh size
}

// Assemble runs the cleanup pipeline over polygons that already form an
// upper envelope: build, dissolve degenerate geometry, split non-manifold
// edges, delete loose geometry. The returned mesh is at StageClean.
func Assemble(polygons []Polygon, opts Options) (*Mesh, Report) {
	opts = opts.normalized()
	log := opts.Logger

	report := Report{Polygons: len(polygons)}

	mesh := Build(polygons)
	report.Dropped = len(polygons) - mesh.NumFaces()
	logStage(log, mesh, "dropped", report.Dropped)

	report.Dissolved = mesh.DissolveDegenerate(opts.Tolerance)
	logStage(log, mesh, "dissolved", report.Dissolved)

	report.Split = mesh.SplitNonManifold()
	logStage(log, mesh,
		"non_manifold", report.Split.NonManifold,
		"copies", report.Split.Copies,
		"deleted_faces", report.Split.Faces)

	report.Wires, report.Lone = mesh.DeleteLoose()
	logStage(log, mesh, "wires", report.Wires, "lone", report.Lone)

	mesh.Check()

	report.Verts, report.Edges, report.Faces = mesh.NumVerts(), mesh.NumEdges(), mesh.NumFaces()
	return mesh, report
}

// Find reduces polygons to their upper envelope with env, then assembles the
// result. An empty envelope yields an empty mesh, not an error.
func Find(polygons []Polygon, env Envelope, opts Options) (*Mesh, Report, error) {
	opts = opts.normalized()

	upper, err := env.UpperSurface(polygons, opts.BufferSize)
	if err != nil {
		return nil, Report{}, &OpError{Op: "upperenv.find", Kind: KindEnvelope, Err: err}
	}
	opts.Logger.Debug("envelope.computed", "in", len(polygons), "out", len(upper), "buffer_size", opts.BufferSize)

	mesh, report := Assemble(upper, opts)
	return mesh, report, nil
}

func logStage(log *slog.Logger, mesh *Mesh, args ...any) {
	base := []any{
		"stage", mesh.Stage().String(),
		"verts", mesh.NumVerts(),
		"edges", mesh.NumEdges(),
		"faces", mesh.NumFaces(),
	}
	log.Debug("mesh.stage", append(base, args...)...)
}
