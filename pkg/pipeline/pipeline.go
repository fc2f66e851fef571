// Package pipeline provides the core mesh processing pipeline for hedron.
//
// This package implements the complete load → transform → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Import a mesh from a JSON document or TOML manifest
//  2. Transform: Apply topology and geometry edits (triangulate, smooth)
//  3. Render: Generate output in various formats (DOT, SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Stages are cached by content hash, so re-running a pipeline over
// unchanged input skips the stages whose inputs did not change.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:       "terrain.json",
//	    Transforms: []string{"triangulate"},
//	    Formats:    []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	m, err := runner.Load(ctx, opts)
//
//	// Transform an existing mesh
//	m, err = runner.Transform(ctx, m, opts)
//
//	// Render an existing mesh
//	artifacts, err := runner.Render(ctx, m, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hedron-dev/hedron/pkg/cache"
	"github.com/hedron-dev/hedron/pkg/geom"
	"github.com/hedron-dev/hedron/pkg/mesh"
	"github.com/hedron-dev/hedron/pkg/render"
)

// Mesh is the concrete mesh type flowing through the pipeline. Pipelines
// always operate on point geometry so that every transform is available.
type Mesh = mesh.Mesh[geom.Point]

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSmoothFactor is the default blend weight toward the
	// neighborhood centroid for the smooth transform.
	DefaultSmoothFactor = 0.5

	// DefaultSmoothRounds is the default number of smoothing passes.
	DefaultSmoothRounds = 1
)

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// Transform constants for the supported transforms.
const (
	TransformTriangulate = "triangulate"
	TransformSmooth      = "smooth"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidTransforms is the set of supported transforms.
var ValidTransforms = map[string]bool{
	TransformTriangulate: true,
	TransformSmooth:      true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the mesh pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Path    string `json:"path,omitempty"`    // Mesh file (.json or .toml)
	Source  string `json:"source,omitempty"`  // Inline document (used when Path is empty)
	Format  string `json:"format,omitempty"`  // Source format ("json" or "toml"); inferred from Path
	Refresh bool   `json:"refresh,omitempty"` // Bypass the load cache

	// Transform options
	Transforms   []string `json:"transforms,omitempty"`
	SmoothFactor float64  `json:"smooth_factor,omitempty"`
	SmoothRounds int      `json:"smooth_rounds,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Positions and arities in labels
	Faces    bool     `json:"faces,omitempty"`    // Include face nodes in diagrams

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string

	// Mesh is the loaded and transformed mesh.
	Mesh *Mesh

	// MeshHash is the content hash of the transformed mesh.
	MeshHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount   int
	EdgeCount     int
	FaceCount     int
	LoadTime      time.Duration
	TransformTime time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit      bool // Whether the loaded mesh came from cache
	TransformHit bool // Whether the transformed mesh came from cache
	RenderHit    bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTransform checks that a transform is valid.
func ValidateTransform(transform string) error {
	if !ValidTransforms[transform] {
		return fmt.Errorf("invalid transform: %q (must be one of: triangulate, smooth)", transform)
	}
	return nil
}

// ValidateTransforms checks that all transforms are valid.
func ValidateTransforms(transforms []string) error {
	for _, tr := range transforms {
		if err := ValidateTransform(tr); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForTransform(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Path == "" && o.Source == "" {
		return fmt.Errorf("path or source is required")
	}
	if o.Source != "" && o.Format == "" {
		return fmt.Errorf("format is required with inline source")
	}
	if o.Format != "" && o.Format != "json" && o.Format != "toml" {
		return fmt.Errorf("invalid source format: %q (must be json or toml)", o.Format)
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetTransformDefaults sets default values for the transform stage.
func (o *Options) SetTransformDefaults() {
	if o.SmoothFactor == 0 {
		o.SmoothFactor = DefaultSmoothFactor
	}
	if o.SmoothRounds == 0 {
		o.SmoothRounds = DefaultSmoothRounds
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForTransform validates and sets defaults for the transform stage.
func (o *Options) ValidateForTransform() error {
	o.SetTransformDefaults()
	if o.SmoothFactor < 0 || o.SmoothFactor > 1 {
		return fmt.Errorf("smooth factor %g out of range [0, 1]", o.SmoothFactor)
	}
	if o.SmoothRounds < 1 {
		return fmt.Errorf("smooth rounds must be positive, got %d", o.SmoothRounds)
	}
	return ValidateTransforms(o.Transforms)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// RenderOptions returns the diagram options for the render package.
func (o *Options) RenderOptions() render.Options {
	return render.Options{
		Detailed: o.Detailed,
		Faces:    o.Faces,
	}
}

// MeshKeyOpts returns cache key options for the load stage.
func (o *Options) MeshKeyOpts() cache.MeshKeyOpts {
	return cache.MeshKeyOpts{
		Format: o.Format,
	}
}

// TransformKeyOpts returns cache key options for the transform stage.
func (o *Options) TransformKeyOpts() cache.TransformKeyOpts {
	return cache.TransformKeyOpts{
		Transforms:   o.Transforms,
		SmoothFactor: o.SmoothFactor,
		SmoothRounds: o.SmoothRounds,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Detailed: o.Detailed,
	}
}
