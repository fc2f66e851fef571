package cache

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

// quadSnapshot is a serialized single-quad mesh, the kind of payload
// the pipeline stores under mesh and transform keys.
const quadSnapshot = `{"vertices":[[0,0,0],[1,0,0],[1,1,0],[0,1,0]],"faces":[[0,1,2,3]]}`

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	keyer := NewDefaultKeyer()
	meshKey := keyer.MeshKey(Hash([]byte(quadSnapshot)), MeshKeyOpts{Format: "json"})

	// Miss before Set
	_, hit, err := c.Get(ctx, meshKey)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get before Set should miss")
	}

	// Round trip under the mesh TTL
	want := []byte(quadSnapshot)
	if err := c.Set(ctx, meshKey, want, TTLMesh); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, meshKey)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get after Set should hit")
	}
	if !bytes.Equal(data, want) {
		t.Errorf("Get data = %q, want %q", data, want)
	}

	// Delete removes the entry
	if err := c.Delete(ctx, meshKey); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, meshKey); hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting an absent key is not an error
	if err := c.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete absent key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// A negative TTL stores an already-expired entry
	if err := c.Set(ctx, "stale", []byte(quadSnapshot), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "stale"); hit {
		t.Error("expired entry should miss")
	}

	// A zero TTL stores without expiry
	if err := c.Set(ctx, "pinned", []byte(quadSnapshot), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "pinned"); !hit {
		t.Error("zero-TTL entry should hit")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "artifact", []byte("<svg/>"), TTLArtifact); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "artifact")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache must never hit")
	}
	if err := c.Delete(ctx, "artifact"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte(quadSnapshot))
	if h2 := Hash([]byte(quadSnapshot)); h1 != h2 {
		t.Error("Hash must be deterministic")
	}
	// SHA-256 digests are 64 hex characters
	if len(h1) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h1))
	}
	// Perturbing one coordinate changes the digest
	perturbed := strings.Replace(quadSnapshot, "[0,0,0]", "[0,0,1]", 1)
	if Hash([]byte(perturbed)) == h1 {
		t.Error("different snapshots should hash differently")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	sourceHash := Hash([]byte(quadSnapshot))

	// MeshKey folds the source format into the key
	mk1 := k.MeshKey(sourceHash, MeshKeyOpts{Format: "json"})
	mk2 := k.MeshKey(sourceHash, MeshKeyOpts{Format: "toml"})
	if mk1 == mk2 {
		t.Error("different MeshKeyOpts should produce different keys")
	}

	// TransformKey folds the transform chain into the key
	tk1 := k.TransformKey(sourceHash, TransformKeyOpts{Transforms: []string{"triangulate"}})
	tk2 := k.TransformKey(sourceHash, TransformKeyOpts{Transforms: []string{"smooth"}})
	if tk1 == tk2 {
		t.Error("different TransformKeyOpts should produce different keys")
	}

	// ArtifactKey folds the render format into the key
	ak1 := k.ArtifactKey(sourceHash, ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey(sourceHash, ArtifactKeyOpts{Format: "dot"})
	if ak1 == ak2 {
		t.Error("different ArtifactKeyOpts should produce different keys")
	}

	// Same inputs produce the same key
	if got := k.MeshKey(sourceHash, MeshKeyOpts{Format: "json"}); got != mk1 {
		t.Errorf("MeshKey should be deterministic: %s != %s", got, mk1)
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "proj:terrain:")

	meshKey := scoped.MeshKey("hash123", MeshKeyOpts{Format: "json"})
	if !strings.HasPrefix(meshKey, "proj:terrain:") {
		t.Errorf("ScopedKeyer MeshKey should be prefixed: %s", meshKey)
	}
	if strings.TrimPrefix(meshKey, "proj:terrain:") != inner.MeshKey("hash123", MeshKeyOpts{Format: "json"}) {
		t.Error("ScopedKeyer should delegate to the inner keyer")
	}

	artifactKey := scoped.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(artifactKey, "proj:terrain:") {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", artifactKey)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Falls back to DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.TransformKey("abc", TransformKeyOpts{})
	want := "prefix:" + NewDefaultKeyer().TransformKey("abc", TransformKeyOpts{})
	if key != want {
		t.Errorf("unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should wrap a non-nil error")
	}
	if !IsRetryable(err) {
		t.Error("wrapped error should report retryable")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("wrapping changed the message: %s", err.Error())
	}
	if IsRetryable(ErrNotFound) {
		t.Error("unwrapped error should not report retryable")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// First-try success calls once
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("RetryWithBackoff: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// Non-retryable errors stop immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrNotFound
	})
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// Retryable errors are retried until success
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil {
		t.Errorf("RetryWithBackoff: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
