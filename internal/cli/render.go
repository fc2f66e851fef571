package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hedron-dev/hedron/pkg/pipeline"
)

// renderCommand creates the render command. It runs the full pipeline and
// writes one artifact file per requested format.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr    string
		transformsStr string
		factor        float64
		rounds        int
		output        string
		detailed      bool
		faces         bool
		noCache       bool
		refresh       bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a mesh connectivity diagram",
		Long: `Render loads a mesh, optionally transforms it, and produces connectivity
diagrams. Vertices become graph nodes, edges become links, and boundary edges
are drawn dashed.

Formats:

  dot    Graphviz source
  svg    vector diagram rendered with the neato layout engine
  png    raster diagram
  json   the mesh itself, normalized

Output files are named <base>.<format>, where <base> defaults to the input
file name without its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := pipeline.Options{
				Path:         args[0],
				Refresh:      refresh,
				Transforms:   parseTransforms(transformsStr),
				SmoothFactor: factor,
				SmoothRounds: rounds,
				Formats:      parseFormats(formatsStr),
				Detailed:     detailed,
				Faces:        faces,
				Logger:       c.Logger,
			}

			spin := newSpinnerWithContext(cmd.Context(), "Rendering...")
			spin.Start()
			result, err := runner.Execute(cmd.Context(), opts)
			spin.Stop()
			if err != nil {
				printError("Render failed")
				return err
			}

			base := output
			if base == "" {
				base = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			}

			printSuccess("Rendered %d formats", len(result.Artifacts))
			printStats(result.Stats.VertexCount, result.Stats.FaceCount, result.CacheInfo.RenderHit)

			names := make([]string, 0, len(result.Artifacts))
			for format := range result.Artifacts {
				names = append(names, format)
			}
			sort.Strings(names)

			for _, format := range names {
				path := fmt.Sprintf("%s.%s", base, format)
				if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "formats", "f", pipeline.FormatSVG, "comma-separated output formats (dot, svg, png, json)")
	cmd.Flags().StringVarP(&transformsStr, "transforms", "t", "", "comma-separated transforms to apply before rendering")
	cmd.Flags().Float64Var(&factor, "factor", pipeline.DefaultSmoothFactor, "smoothing step size in [0, 1]")
	cmd.Flags().IntVar(&rounds, "rounds", pipeline.DefaultSmoothRounds, "number of smoothing passes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (format extension is appended)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label vertices with their positions")
	cmd.Flags().BoolVar(&faces, "faces", false, "include face nodes in the diagram")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached entries and re-render")

	return cmd
}
