package meshio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hedron-dev/hedron/pkg/geom"
	"github.com/hedron-dev/hedron/pkg/mesh"
)

// Import reads a mesh file at path, picking the decoder by extension.
// ".json" files go through [ImportJSON] and ".toml" files through
// [ImportManifest]. Any other extension is an error.
func Import(path string) (*mesh.Mesh[geom.Point], error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ImportJSON(path)
	case ".toml":
		return ImportManifest(path)
	default:
		return nil, fmt.Errorf("unsupported mesh file %s: expected .json or .toml", path)
	}
}
