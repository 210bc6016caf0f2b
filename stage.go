package upperenv

import "fmt"

// Stage is the position of a Mesh in the assembly pipeline. A mesh moves
// strictly forward: Empty, Built, DegeneracyResolved, ManifoldResolved, Clean.
type Stage int

const (
	StageEmpty Stage = iota
	StageBuilt
	StageDegeneracyResolved
	StageManifoldResolved
	StageClean
)

var stageNames = [...]string{
	StageEmpty:              "empty",
	StageBuilt:              "built",
	StageDegeneracyResolved: "degeneracy-resolved",
	StageManifoldResolved:   "manifold-resolved",
	StageClean:              "clean",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// require panics unless the mesh sits exactly at stage from. Running a stage
// out of order is a programming error, not a runtime condition.
func (this *Mesh) require(from, to Stage) {
	if this.stage != from {
		panic(fmt.Sprintf("upperenv: entering stage %s requires stage %s, mesh is %s", to, from, this.stage))
	}
}
