package meshio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/hedron-dev/hedron/pkg/geom"
	"github.com/hedron-dev/hedron/pkg/mesh"
)

type manifest struct {
	Name     string         `toml:"name,omitempty"`
	Vertices []manifestItem `toml:"vertices"`
	Faces    []manifestFace `toml:"faces"`
}

type manifestItem struct {
	Position []float64 `toml:"position"`
}

type manifestFace struct {
	Indices []int `toml:"indices"`
}

// ReadManifest decodes a TOML mesh manifest from r.
//
// The manifest format mirrors the JSON document but uses tables, which
// keeps hand-written input readable:
//
//	name = "quad"
//
//	[[vertices]]
//	position = [0.0, 0.0, 0.0]
//
//	[[faces]]
//	indices = [0, 1, 2, 3]
//
// Positions may have two or three components; a missing third component
// is treated as zero. ReadManifest returns the same topology errors as
// [ReadJSON].
func ReadManifest(r io.Reader) (*mesh.Mesh[geom.Point], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var man manifest
	if err := toml.Unmarshal(data, &man); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	doc := document{
		Vertices: make([][3]float64, len(man.Vertices)),
		Faces:    make([][]int, len(man.Faces)),
	}
	for i, v := range man.Vertices {
		if len(v.Position) < 2 || len(v.Position) > 3 {
			return nil, fmt.Errorf("vertex %d: position needs 2 or 3 components, got %d", i, len(v.Position))
		}
		var p [3]float64
		copy(p[:], v.Position)
		doc.Vertices[i] = p
	}
	for i, f := range man.Faces {
		doc.Faces[i] = f.Indices
	}

	return fromDocument(doc)
}

// ImportManifest reads a TOML manifest file at path and returns the
// decoded mesh.
func ImportManifest(path string) (*mesh.Mesh[geom.Point], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadManifest(f)
}

// WriteManifest encodes a mesh as a TOML manifest and writes it to w.
// The name is recorded in the manifest header and may be empty.
func WriteManifest(m *mesh.Mesh[geom.Point], name string, w io.Writer) error {
	faces, vertices := m.ToRawBuffers()

	man := manifest{
		Name:     name,
		Vertices: make([]manifestItem, len(vertices)),
		Faces:    make([]manifestFace, len(faces)),
	}
	for i, p := range vertices {
		man.Vertices[i] = manifestItem{Position: []float64{p.X, p.Y, p.Z}}
	}
	for i, f := range faces {
		man.Faces[i] = manifestFace{Indices: f}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(man); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportManifest writes a mesh to a TOML manifest file at path.
func ExportManifest(m *mesh.Mesh[geom.Point], name, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteManifest(m, name, f)
}
