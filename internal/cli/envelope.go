package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexozer/upperenv"
	"github.com/alexozer/upperenv/config"
	"github.com/alexozer/upperenv/internal/logger"
	"github.com/alexozer/upperenv/scene"
)

// findEnvelope loads the input object and runs the whole pipeline on it.
func findEnvelope(cmd *cobra.Command, g *globalFlags, input string) (scene.Result, error) {
	cfg, err := config.Load(g.config, config.WithDebug(g.debug))
	if err != nil {
		return scene.Result{}, err
	}

	log := logger.Setup(logger.Config{Out: cmd.ErrOrStderr(), Debug: cfg.Debug})

	obj, err := scene.Load(input)
	if err != nil {
		return scene.Result{}, err
	}
	log.Debug("scene.loaded", "path", input, "object", obj.Name,
		"points", len(obj.Points), "faces", len(obj.Faces))

	return scene.FindUpperEnvelope(obj, upperenv.Identity, cfg.Options(log), cfg.Suffix)
}

func inputFlag(c *cobra.Command, input *string) {
	c.Flags().StringVarP(input, "input", "i", "", "Input object, .obj or .yaml (required)")
	_ = c.MarkFlagRequired("input")
}

func assembleCmd(g *globalFlags) *cobra.Command {
	var input string

	c := &cobra.Command{
		Use:   "assemble",
		Short: "Write the cleaned upper-envelope mesh as OBJ to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := findEnvelope(cmd, g, input)
			if err != nil {
				return err
			}
			return scene.WriteOBJ(cmd.OutOrStdout(), res.Object)
		},
	}

	inputFlag(c, &input)
	return c
}

func checkCmd(g *globalFlags) *cobra.Command {
	var input string

	c := &cobra.Command{
		Use:   "check",
		Short: "Run the pipeline and print what each stage did",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := findEnvelope(cmd, g, input)
			if err != nil {
				return err
			}
			printReport(cmd, res)
			return nil
		},
	}

	inputFlag(c, &input)
	return c
}

func printReport(cmd *cobra.Command, res scene.Result) {
	r := res.Report
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "object:       %s\n", res.Object.Name)
	fmt.Fprintf(out, "collections:  %v\n", res.Object.Collections)
	fmt.Fprintf(out, "polygons:     %d (dropped %d)\n", r.Polygons, r.Dropped)
	fmt.Fprintf(out, "dissolved:    %d\n", r.Dissolved)
	fmt.Fprintf(out, "non-manifold: %d (copies %d, deleted faces %d)\n", r.Split.NonManifold, r.Split.Copies, r.Split.Faces)
	fmt.Fprintf(out, "loose:        %d wires, %d vertices\n", r.Wires, r.Lone)
	fmt.Fprintf(out, "result:       %d verts, %d edges, %d faces\n", r.Verts, r.Edges, r.Faces)
}

func plotCmd(g *globalFlags) *cobra.Command {
	var input string

	c := &cobra.Command{
		Use:   "plot",
		Short: "Write a top-down SVG of the cleaned mesh to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := findEnvelope(cmd, g, input)
			if err != nil {
				return err
			}
			scene.Plot(cmd.OutOrStdout(), res.Mesh, res.Object.Name)
			return nil
		},
	}

	inputFlag(c, &input)
	return c
}
