package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful when a shared backend (Redis, Mongo) serves several
// projects or users that need separate cache namespaces.
//
// Example usage:
//
//	// Project-specific keys on a shared Redis instance
//	projectKeyer := NewScopedKeyer(NewDefaultKeyer(), "proj:terrain:")
//
//	// Global keys for a single-tenant file cache
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// MeshKey generates a prefixed key for an imported mesh.
func (k *ScopedKeyer) MeshKey(sourceHash string, opts MeshKeyOpts) string {
	return k.prefix + k.inner.MeshKey(sourceHash, opts)
}

// TransformKey generates a prefixed key for a transformed mesh.
func (k *ScopedKeyer) TransformKey(meshHash string, opts TransformKeyOpts) string {
	return k.prefix + k.inner.TransformKey(meshHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(meshHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(meshHash, opts)
}

// Ensure ScopedKeyer implements Keyer.
var _ Keyer = (*ScopedKeyer)(nil)
