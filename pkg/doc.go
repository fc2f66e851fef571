// Package pkg provides the core libraries for hedron mesh processing.
//
// # Overview
//
// Hedron represents polygonal surfaces as half-edge meshes, where every edge
// is split into two directed arcs. The pkg directory is organized into three
// main areas:
//
//  1. [mesh] plus [geom] - Domain logic (half-edge topology, editing, geometry)
//  2. [meshio], [render] - Input and output (file formats, connectivity diagrams)
//  3. [pipeline] plus [cache] - Orchestration (load → transform → render, with caching)
//
// # Architecture
//
// The typical data flow through hedron:
//
//	JSON/TOML mesh document
//	         ↓
//	    [meshio] package (decode index/position buffers)
//	         ↓
//	    [mesh] package (half-edge structure + transforms)
//	         ↓
//	    [render] package (Graphviz connectivity diagrams)
//	         ↓
//	    DOT/SVG/PNG/JSON output
//
// # Quick Start
//
// Build a mesh and render its connectivity:
//
//	import (
//	    "github.com/hedron-dev/hedron/pkg/meshio"
//	    "github.com/hedron-dev/hedron/pkg/render"
//	)
//
//	// 1. Import a mesh
//	m, _ := meshio.ImportJSON("quad.json")
//
//	// 2. Transform it
//	_ = m.Triangulate()
//
//	// 3. Render to SVG
//	svg, _ := render.RenderSVG(m, render.Options{})
//
// # Main Packages
//
// ## Core Domain Logic
//
// [mesh] - Half-edge (doubly connected edge list) polygon mesh. Vertices,
// arcs, edges, and faces are addressed by typed keys, read through view
// types, and edited through a validating mutation layer that rolls back on
// inconsistency.
//
// [geom] - Minimal vector geometry: points, vectors, midpoints, centroids,
// and axis-aligned bounding boxes.
//
// ## Input and Output
//
// [meshio] - Mesh documents as JSON buffers or TOML manifests. Exports are
// deterministic, so serialized meshes double as cache keys.
//
// [render] - Graphviz connectivity diagrams. Vertices become nodes, edges
// become links, boundary edges are dashed, and faces can be included as
// their own nodes.
//
// ## Infrastructure
//
// [pipeline] - Complete processing pipeline (load → transform → render) used
// by the CLI and the HTTP API. Ensures consistent behavior across all entry
// points, with content-addressed caching per stage.
//
// [cache] - Cache backends (file, Redis, MongoDB, null) behind a single
// interface, plus key derivation from content hashes.
//
// [errors] - Structured error codes shared by the CLI and the HTTP API, and
// translation from mesh sentinel errors.
//
// [observability] - Hook interfaces for pipeline, cache, and edit events.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/mesh/...   # Specific package
//	go test -run Example     # Examples only
//
// [mesh]: https://pkg.go.dev/github.com/hedron-dev/hedron/pkg/mesh
// [geom]: https://pkg.go.dev/github.com/hedron-dev/hedron/pkg/geom
// [meshio]: https://pkg.go.dev/github.com/hedron-dev/hedron/pkg/meshio
// [render]: https://pkg.go.dev/github.com/hedron-dev/hedron/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/hedron-dev/hedron/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/hedron-dev/hedron/pkg/cache
// [errors]: https://pkg.go.dev/github.com/hedron-dev/hedron/pkg/errors
// [observability]: https://pkg.go.dev/github.com/hedron-dev/hedron/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/hedron-dev/hedron/pkg/buildinfo
package pkg
