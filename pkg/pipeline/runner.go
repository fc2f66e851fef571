package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/hedron-dev/hedron/pkg/cache"
	"github.com/hedron-dev/hedron/pkg/meshio"
	"github.com/hedron-dev/hedron/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → transform → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("run", result.RunID)

	// Stage 1: Load
	loadStart := time.Now()
	m, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Mesh = m
	result.Stats.LoadTime = time.Since(loadStart)
	result.CacheInfo.LoadHit = loadHit

	logger.Info("loaded mesh",
		"vertices", m.VertexCount(),
		"faces", m.FaceCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Transform
	transformStart := time.Now()
	m, transformHit, err := r.TransformWithCacheInfo(ctx, m, opts)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	result.Mesh = m
	result.Stats.TransformTime = time.Since(transformStart)
	result.CacheInfo.TransformHit = transformHit
	result.Stats.VertexCount = m.VertexCount()
	result.Stats.EdgeCount = m.EdgeCount()
	result.Stats.FaceCount = m.FaceCount()

	// Compute mesh hash for cache keys and API responses
	if data, err := marshalMesh(m); err == nil {
		result.MeshHash = cache.Hash(data)
	}

	if len(opts.Transforms) > 0 {
		logger.Info("applied transforms",
			"transforms", opts.Transforms,
			"faces", m.FaceCount(),
			"duration", result.Stats.TransformTime)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, m, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo imports a mesh with caching and returns cache hit info.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*Mesh, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	source := opts.Path
	if source == "" {
		source = "<inline>"
	}
	observability.Pipeline().OnLoadStart(ctx, source)
	start := time.Now()

	data, format, err := readSource(opts)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, source, 0, time.Since(start), err)
		return nil, false, err
	}
	opts.Format = format

	cacheKey := r.Keyer.MeshKey(cache.Hash(data), opts.MeshKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if m, err := meshio.ReadJSON(bytes.NewReader(cached)); err == nil {
				observability.Cache().OnCacheHit(ctx, "mesh")
				observability.Pipeline().OnLoadComplete(ctx, source, m.FaceCount(), time.Since(start), nil)
				return m, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "mesh")
	}

	m, err := decodeSource(data, format)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, source, 0, time.Since(start), err)
		return nil, false, err
	}

	// Cache the normalized mesh
	if !opts.Refresh {
		if normalized, err := marshalMesh(m); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, normalized, cache.TTLMesh)
			observability.Cache().OnCacheSet(ctx, "mesh", len(normalized))
		}
	}

	observability.Pipeline().OnLoadComplete(ctx, source, m.FaceCount(), time.Since(start), nil)
	return m, false, nil // Cache miss
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*Mesh, error) {
	m, _, err := r.LoadWithCacheInfo(ctx, opts)
	return m, err
}

// TransformWithCacheInfo applies transforms with caching and returns cache hit info.
// The input mesh is never modified; the returned mesh is a fresh instance.
func (r *Runner) TransformWithCacheInfo(ctx context.Context, m *Mesh, opts Options) (*Mesh, bool, error) {
	if err := opts.ValidateForTransform(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if len(opts.Transforms) == 0 {
		return m, false, nil
	}

	observability.Pipeline().OnTransformStart(ctx, opts.Transforms, m.FaceCount())
	start := time.Now()

	data, err := marshalMesh(m)
	if err != nil {
		return nil, false, fmt.Errorf("serialize mesh for cache key: %w", err)
	}
	cacheKey := r.Keyer.TransformKey(cache.Hash(data), opts.TransformKeyOpts())

	// Try cache first
	if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		if out, err := meshio.ReadJSON(bytes.NewReader(cached)); err == nil {
			observability.Cache().OnCacheHit(ctx, "transform")
			observability.Pipeline().OnTransformComplete(ctx, opts.Transforms, time.Since(start), nil)
			return out, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "transform")

	// Transforms mutate in place, so work on a copy decoded from the
	// serialized snapshot.
	work, err := meshio.ReadJSON(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("clone mesh: %w", err)
	}
	if err := applyTransforms(ctx, work, opts); err != nil {
		observability.Pipeline().OnTransformComplete(ctx, opts.Transforms, time.Since(start), err)
		return nil, false, err
	}

	// Cache the result
	if out, err := marshalMesh(work); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, out, cache.TTLTransform)
		observability.Cache().OnCacheSet(ctx, "transform", len(out))
	}

	observability.Pipeline().OnTransformComplete(ctx, opts.Transforms, time.Since(start), nil)
	return work, false, nil // Cache miss
}

// Transform is a convenience wrapper that calls TransformWithCacheInfo and discards the cache hit info.
func (r *Runner) Transform(ctx context.Context, m *Mesh, opts Options) (*Mesh, error) {
	out, _, err := r.TransformWithCacheInfo(ctx, m, opts)
	return out, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, m *Mesh, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	// Compute cache key from the mesh content
	data, err := marshalMesh(m)
	if err != nil {
		return nil, false, fmt.Errorf("serialize mesh for cache key: %w", err)
	}
	meshHash := cache.Hash(data)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(meshHash, opts.ArtifactKeyOpts(format))
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = cached
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := renderFormats(m, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
		return nil, false, err
	}

	// Cache each format
	for format, artifact := range rendered {
		cacheKey := r.Keyer.ArtifactKey(meshHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, artifact, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(artifact))
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, m *Mesh, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, m, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// marshalMesh serializes a mesh to its canonical JSON document.
func marshalMesh(m *Mesh) ([]byte, error) {
	var buf bytes.Buffer
	if err := meshio.WriteJSON(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
