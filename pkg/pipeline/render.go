package pipeline

import (
	"fmt"

	"github.com/hedron-dev/hedron/pkg/render"
)

// renderFormats generates one artifact per requested format.
// DOT is generated once and reused for the raster formats.
func renderFormats(m *Mesh, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	needsDOT := false
	for _, format := range opts.Formats {
		if format == FormatDOT || format == FormatSVG || format == FormatPNG {
			needsDOT = true
			break
		}
	}
	if needsDOT {
		dot = render.ToDOT(m, opts.RenderOptions())
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatDOT:
			artifacts[format] = []byte(dot)
		case FormatSVG:
			svg, err := render.RenderSVG(dot)
			if err != nil {
				return nil, fmt.Errorf("render svg: %w", err)
			}
			artifacts[format] = svg
		case FormatPNG:
			png, err := render.RenderPNG(dot)
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[format] = png
		case FormatJSON:
			data, err := marshalMesh(m)
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			artifacts[format] = data
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}

	return artifacts, nil
}
