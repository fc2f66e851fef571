package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hedron-dev/hedron/pkg/meshio"
	"github.com/hedron-dev/hedron/pkg/pipeline"
)

// transformCommand creates the transform command. It loads a mesh, applies
// the requested transforms, and writes the result.
func (c *CLI) transformCommand() *cobra.Command {
	var (
		transformsStr string
		factor        float64
		rounds        int
		output        string
		noCache       bool
		refresh       bool
	)

	cmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "Apply transforms to a mesh",
		Long: `Transform loads a mesh and applies one or more transforms in order.
Available transforms:

  triangulate   split every non-triangular face into a triangle fan
  smooth        move each vertex toward the centroid of its neighbors

Smoothing is controlled by --factor (step size in [0, 1]) and --rounds
(number of passes). The result is written as JSON to --output, or to stdout
when no output file is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transforms := parseTransforms(transformsStr)
			if err := pipeline.ValidateTransforms(transforms); err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := pipeline.Options{
				Path:         args[0],
				Refresh:      refresh,
				Transforms:   transforms,
				SmoothFactor: factor,
				SmoothRounds: rounds,
				Logger:       c.Logger,
			}

			m, err := runner.Load(cmd.Context(), opts)
			if err != nil {
				printError("Failed to load %s", args[0])
				return err
			}

			prog := newProgress(c.Logger)
			m, cached, err := runner.TransformWithCacheInfo(cmd.Context(), m, opts)
			if err != nil {
				printError("Transform failed")
				return err
			}
			prog.done(fmt.Sprintf("Applied %d transforms", len(transforms)))

			if output == "" {
				return meshio.WriteJSON(m, os.Stdout)
			}
			if err := exportMesh(m, output); err != nil {
				return err
			}
			printSuccess("Transformed mesh")
			printStats(m.VertexCount(), m.FaceCount(), cached)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&transformsStr, "transforms", "t", pipeline.TransformTriangulate, "comma-separated transforms (triangulate, smooth)")
	cmd.Flags().Float64Var(&factor, "factor", pipeline.DefaultSmoothFactor, "smoothing step size in [0, 1]")
	cmd.Flags().IntVar(&rounds, "rounds", pipeline.DefaultSmoothRounds, "number of smoothing passes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json or .toml); defaults to stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the transform cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached entries and recompute")

	return cmd
}
