package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/hedron-dev/hedron/pkg/mesh"
)

// Options configures topology rendering.
type Options struct {
	// Detailed includes vertex positions and face arities in labels.
	// When false, only keys are shown.
	Detailed bool

	// Faces adds a node per face, connected to its perimeter vertices.
	// Useful for seeing the dual structure of small meshes.
	Faces bool
}

// ToDOT converts a mesh to Graphviz DOT format for topology inspection.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Vertices become nodes and composite edges become undirected DOT edges.
// Boundary edges (one side has no face) are rendered dashed to make the
// surface perimeter visible at a glance.
func ToDOT[G any](m *mesh.Mesh[G], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, v := range m.Vertices() {
		label := vertexLabel(v, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", v.Key().String(), label)
	}

	buf.WriteString("\n")
	for _, e := range m.Edges() {
		a, b := e.Key().A, e.Key().B
		attrs := ""
		if e.IsBoundary() {
			attrs = " [style=dashed]"
		}
		fmt.Fprintf(&buf, "  %q -- %q%s;\n", a.String(), b.String(), attrs)
	}

	if opts.Faces {
		buf.WriteString("\n")
		buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=lightgrey, fontsize=10];\n")
		for _, f := range m.Faces() {
			label := f.Key().String()
			if opts.Detailed {
				label = fmt.Sprintf("%s (%d sides)", label, f.Arity())
			}
			fmt.Fprintf(&buf, "  %q [label=%q];\n", f.Key().String(), label)
			for _, v := range f.Vertices() {
				fmt.Fprintf(&buf, "  %q -- %q [style=dotted, len=0.5];\n", f.Key().String(), v.String())
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexLabel[G any](v mesh.VertexView[G], detailed bool) string {
	if !detailed {
		return v.Key().String()
	}
	p, err := v.Position()
	if err != nil {
		return v.Key().String()
	}
	return fmt.Sprintf("%s\n(%.3g, %.3g, %.3g)", v.Key().String(), p.X, p.Y, p.Z)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG, nil)
}

func renderFormat(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
