// Package render provides topology visualization for half-edge meshes.
//
// # Overview
//
// This package converts meshes into Graphviz DOT and renders the result
// as SVG or PNG. The output is a connectivity diagram, not a 3D view:
// it shows which vertices share edges and where the surface boundary
// runs, which is what matters when debugging topology edits.
//
// # DOT Output
//
// [ToDOT] emits an undirected graph with one node per vertex and one
// edge per composite edge. Boundary edges are dashed, so the perimeter
// of an open surface stands out. With Options.Faces enabled the dual
// structure is included: one box per face, dotted lines to its
// perimeter vertices.
//
//	dot := render.ToDOT(m, render.Options{Detailed: true})
//	svg, err := render.RenderSVG(dot)
//
// # Raster Output
//
// [RenderSVG] and [RenderPNG] run Graphviz in-process via the
// goccy/go-graphviz bindings, so no external tools are required. SVG
// output has its viewBox normalized to start at the origin, which makes
// the artifacts embeddable without further processing.
package render
