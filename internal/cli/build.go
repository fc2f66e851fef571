package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hedron-dev/hedron/pkg/meshio"
	"github.com/hedron-dev/hedron/pkg/pipeline"
)

// buildCommand creates the build command. It imports a mesh file, checks its
// topology, and optionally re-exports it to another format.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Import a mesh file and validate its topology",
		Long: `Build reads a mesh from a JSON or TOML file, constructs the half-edge
representation, and checks topological consistency. With --output the mesh is
re-exported, which normalizes vertex ordering and face winding.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := pipeline.Options{
				Path:    args[0],
				Refresh: refresh,
				Logger:  c.Logger,
			}

			prog := newProgress(c.Logger)
			m, cached, err := runner.LoadWithCacheInfo(cmd.Context(), opts)
			if err != nil {
				printError("Failed to load %s", args[0])
				return err
			}
			prog.done(fmt.Sprintf("Loaded %d faces", m.FaceCount()))

			if err := m.Validate(); err != nil {
				printError("Topology check failed")
				return err
			}

			printSuccess("Mesh is consistent")
			printStats(m.VertexCount(), m.FaceCount(), cached)

			if output != "" {
				if err := exportMesh(m, output); err != nil {
					return err
				}
				printFile(output)
			} else {
				printNextStep("Render it", fmt.Sprintf("hedron render %s", args[0]))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "re-export the mesh to this file (.json or .toml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the mesh cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached entries and rebuild")

	return cmd
}

// exportMesh writes m to path, choosing the format from the file extension.
func exportMesh(m *pipeline.Mesh, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return meshio.ExportJSON(m, path)
	case ".toml":
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return meshio.ExportManifest(m, name, path)
	default:
		return fmt.Errorf("unsupported output file %s: expected .json or .toml", path)
	}
}
