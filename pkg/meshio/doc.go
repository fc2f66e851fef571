// Package meshio provides JSON and TOML import and export for half-edge
// meshes.
//
// # Overview
//
// This package serializes meshes to and from flat index buffers, the
// common interchange format for polygon soup. It is designed for:
//
//   - Feeding hand-written or tool-generated geometry into [mesh]
//   - Caching transformed meshes for faster re-rendering
//   - Round-trip preservation: import, edit, export, and re-import
//
// # JSON Format
//
// The format has two required top-level arrays:
//
//	{
//	  "vertices": [
//	    [0, 0, 0],
//	    [1, 0, 0],
//	    [1, 1, 0],
//	    [0, 1, 0]
//	  ],
//	  "faces": [
//	    [0, 1, 2, 3]
//	  ]
//	}
//
// Vertices are three-element positions. Faces list perimeter vertex
// indices in winding order; arities may be mixed. Connectivity is
// recovered on import, so shared edges between faces need no explicit
// encoding.
//
// # TOML Manifests
//
// The same data can be written as a TOML manifest, which is easier to
// author by hand:
//
//	name = "quad"
//
//	[[vertices]]
//	position = [0.0, 0.0, 0.0]
//
//	[[faces]]
//	indices = [0, 1, 2, 3]
//
// Use [ImportManifest] and [ExportManifest] for files, [ReadManifest]
// and [WriteManifest] for streams, or [Import] to pick the decoder by
// file extension.
//
// # Validation
//
// Import validates topology as it builds: out-of-range indices, repeated
// perimeter vertices, sub-triangular faces, and non-manifold edges are
// all rejected with the corresponding [mesh] sentinel wrapped in context.
//
// # Concurrency
//
// All functions are safe to call concurrently with other readers of the
// same mesh, but not with concurrent edits. Imported meshes are
// independent instances that can be edited freely.
package meshio
