package mesh

import "testing"

func TestMintingStorage(t *testing.T) {
	s := NewMintingStorage[VertexKey, string](func(n uint64) VertexKey { return VertexKey(n) })

	first, ok := s.Insert("a")
	if !ok {
		t.Fatal("Insert failed on minting storage")
	}
	second, _ := s.Insert("b")
	if first == second {
		t.Fatalf("minted duplicate key %v", first)
	}
	if got, want := s.Len(), 2; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}

	payload, ok := s.Get(first)
	if !ok || *payload != "a" {
		t.Errorf("Get(%v) = %v, %v", first, payload, ok)
	}

	// Keys are never reused after removal.
	if _, ok := s.Remove(second); !ok {
		t.Fatal("Remove failed")
	}
	third, _ := s.Insert("c")
	if third == second {
		t.Errorf("key %v reused after removal", second)
	}
}

func TestStorageDerivedKeys(t *testing.T) {
	s := NewStorage[ArcKey, int]()

	if _, ok := s.Insert(1); ok {
		t.Error("Insert minted a key on a derived-key storage")
	}

	key := ArcBetween(1, 2)
	if !s.InsertWithKey(key, 10) {
		t.Fatal("InsertWithKey failed")
	}
	if s.InsertWithKey(key, 20) {
		t.Error("InsertWithKey overwrote an existing payload")
	}
	if payload, _ := s.Get(key); *payload != 10 {
		t.Errorf("payload = %d, want 10", *payload)
	}

	if _, ok := s.Remove(ArcBetween(9, 9)); ok {
		t.Error("Remove reported ok for an absent key")
	}
}

func TestStorageKeysSorted(t *testing.T) {
	s := NewStorage[ArcKey, struct{}]()
	for _, key := range []ArcKey{ArcBetween(3, 1), ArcBetween(1, 2), ArcBetween(2, 3), ArcBetween(1, 1)} {
		s.InsertWithKey(key, struct{}{})
	}
	keys := s.Keys()
	for i := 1; i < len(keys); i++ {
		if !keys[i-1].Less(keys[i]) {
			t.Fatalf("keys out of order: %v before %v", keys[i-1], keys[i])
		}
	}
}

func TestKeyDerivation(t *testing.T) {
	arc := ArcBetween(2, 7)
	if got, want := arc.Opposite(), ArcBetween(7, 2); got != want {
		t.Errorf("Opposite = %v, want %v", got, want)
	}
	if got, want := arc.Edge(), EdgeBetween(7, 2); got != want {
		t.Errorf("Edge = %v, want %v", got, want)
	}
	if got, want := arc.Opposite().Edge(), arc.Edge(); got != want {
		t.Errorf("opposite edge = %v, want %v", got, want)
	}
	if got, want := arc.String(), "v2->v7"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
	if got, want := arc.Edge().String(), "v2--v7"; got != want {
		t.Errorf("edge String = %q, want %q", got, want)
	}
}
