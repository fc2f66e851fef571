package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hedron-dev/hedron/pkg/mesh"
	"github.com/hedron-dev/hedron/pkg/meshio"
	"github.com/hedron-dev/hedron/pkg/pipeline"
)

// statsCommand creates the stats command, which prints topology statistics
// for a mesh file.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Print topology statistics for a mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := meshio.Import(args[0])
			if err != nil {
				printError("Failed to load %s", args[0])
				return err
			}

			printKeyValue("Vertices", fmt.Sprintf("%d", m.VertexCount()))
			printKeyValue("Edges", fmt.Sprintf("%d", m.EdgeCount()))
			printKeyValue("Faces", fmt.Sprintf("%d", m.FaceCount()))
			printKeyValue("Arity", formatArity(m.Arity()))
			printKeyValue("Boundary", fmt.Sprintf("%d edges", boundaryEdgeCount(m)))

			if box, err := m.AABB(); err == nil {
				extent := box.Extent()
				printKeyValue("Extent", fmt.Sprintf("%.3g x %.3g x %.3g", extent.X, extent.Y, extent.Z))
			}

			if err := m.Validate(); err != nil {
				printWarning("Topology check failed: %v", err)
				return err
			}
			printSuccess("Mesh is consistent")
			return nil
		},
	}
}

// formatArity renders an arity as "4" for uniform meshes or "3-5" otherwise.
func formatArity(a mesh.Arity) string {
	if a.IsUniform() {
		return fmt.Sprintf("%d", a.Min)
	}
	return fmt.Sprintf("%d-%d", a.Min, a.Max)
}

func boundaryEdgeCount(m *pipeline.Mesh) int {
	count := 0
	for _, e := range m.Edges() {
		if e.IsBoundary() {
			count++
		}
	}
	return count
}
