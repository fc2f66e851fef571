package meshio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hedron-dev/hedron/pkg/geom"
	"github.com/hedron-dev/hedron/pkg/mesh"
)

type document struct {
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][]int      `json:"faces"`
}

// ReadJSON decodes a JSON mesh document from r.
//
// The input must be a JSON object with "vertices" and "faces" arrays:
//
//	{
//	  "vertices": [[0, 0, 0], [1, 0, 0], [1, 1, 0], [0, 1, 0]],
//	  "faces": [[0, 1, 2, 3]]
//	}
//
// Each vertex is a three-element position; two-dimensional data should
// carry a zero third component. Each face lists the indices of its
// perimeter vertices in winding order; faces of different arity may be
// mixed freely.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - A face references an index outside the vertex array
//   - A face repeats a vertex or has fewer than three sides
//   - A face would make an interior edge non-manifold
//
// Errors are wrapped with context. Use errors.Is to check for the
// topology sentinels in [mesh].
//
// The returned mesh carries [mesh.PointSurface] so position-dependent
// operations (split at midpoint, extrude, smooth) work out of the box.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*mesh.Mesh[geom.Point], error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromDocument(doc)
}

// ImportJSON reads a JSON file at path and returns the decoded mesh.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*mesh.Mesh[geom.Point], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes a mesh as a JSON document and writes it to w.
// The output lists every vertex position and every face as vertex
// indices, and can be re-imported with [ReadJSON] for round-trip
// processing. Vertex order follows key order, so repeated exports of
// the same mesh are byte-identical.
func WriteJSON(m *mesh.Mesh[geom.Point], w io.Writer) error {
	faces, vertices := m.ToRawBuffers()

	doc := document{
		Vertices: make([][3]float64, len(vertices)),
		Faces:    faces,
	}
	for i, p := range vertices {
		doc.Vertices[i] = [3]float64{p.X, p.Y, p.Z}
	}
	if doc.Faces == nil {
		doc.Faces = [][]int{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a mesh to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(m *mesh.Mesh[geom.Point], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(m, f)
}

func fromDocument(doc document) (*mesh.Mesh[geom.Point], error) {
	vertices := make([]geom.Point, len(doc.Vertices))
	for i, v := range doc.Vertices {
		vertices[i] = geom.Point{X: v[0], Y: v[1], Z: v[2]}
	}

	m, err := mesh.FromRawBuffers(doc.Faces, vertices, mesh.WithSurface(mesh.PointSurface()))
	if err != nil {
		return nil, fmt.Errorf("build mesh: %w", err)
	}
	return m, nil
}
