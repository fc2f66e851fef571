package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hedron-dev/hedron/pkg/meshio"
)

// readSource returns the raw document bytes and the resolved format.
// Inline sources take their format from opts.Format; file sources infer
// it from the extension unless opts.Format overrides it.
func readSource(opts Options) ([]byte, string, error) {
	if opts.Path == "" {
		return []byte(opts.Source), opts.Format, nil
	}

	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", opts.Path, err)
	}

	format := opts.Format
	if format == "" {
		switch strings.ToLower(filepath.Ext(opts.Path)) {
		case ".json":
			format = "json"
		case ".toml":
			format = "toml"
		default:
			return nil, "", fmt.Errorf("unsupported mesh file %s: expected .json or .toml", opts.Path)
		}
	}

	return data, format, nil
}

// decodeSource builds a mesh from raw document bytes.
func decodeSource(data []byte, format string) (*Mesh, error) {
	switch format {
	case "json":
		return meshio.ReadJSON(bytes.NewReader(data))
	case "toml":
		return meshio.ReadManifest(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("invalid source format: %q", format)
	}
}
