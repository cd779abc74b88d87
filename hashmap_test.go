package rowan

import (
	"fmt"
	"sort"
	"testing"
)

func TestMapSetGet(t *testing.T) {
	m := NewMap[int](0)

	if !m.Set("one", 1) || !m.Set("two", 2) {
		t.Fatal("Set failed")
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}

	if v := m.Get("one"); v == nil || *v != 1 {
		t.Errorf("Get(one) = %v, want 1", v)
	}
	if v := m.Get("missing"); v != nil {
		t.Errorf("Get(missing) = %v, want nil", v)
	}
}

func TestMapSetOverwrites(t *testing.T) {
	m := NewMap[string](0)
	m.Set("key", "old")
	m.Set("key", "new")

	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
	if v := m.Get("key"); v == nil || *v != "new" {
		t.Errorf("Get = %v, want new", v)
	}
}

func TestMapGetReturnsMutablePointer(t *testing.T) {
	m := NewMap[int](0)
	m.Set("counter", 1)
	*m.Get("counter")++

	if v := m.Get("counter"); *v != 2 {
		t.Errorf("Get = %d, want 2", *v)
	}
}

func TestMapDelete(t *testing.T) {
	m := NewMap[int](0)
	m.Set("a", 1)
	m.Set("b", 2)

	if !m.Delete("a") {
		t.Error("expected Delete of a live key to report true")
	}
	if m.Delete("a") {
		t.Error("expected Delete of a removed key to report false")
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
	if m.Get("a") != nil {
		t.Error("expected deleted key to be gone")
	}
	if m.Get("b") == nil {
		t.Error("expected surviving key to remain")
	}
}

func TestMapGrowsPastLoadFactor(t *testing.T) {
	m := NewMap[int](4)

	// Push well past 4 * 0.75 entries; all must stay reachable across the
	// rehash.
	for i := 0; i < 100; i++ {
		m.Set(fmt.Sprintf("key%03d", i), i)
	}
	if m.Len() != 100 {
		t.Fatalf("Len = %d, want 100", m.Len())
	}
	if len(m.buckets) <= 4 {
		t.Errorf("bucket count = %d, want growth past 4", len(m.buckets))
	}
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key%03d", i)
		if v := m.Get(key); v == nil || *v != i {
			t.Fatalf("Get(%s) = %v, want %d", key, v, i)
		}
	}
}

func TestMapLoadFactorAfterEachInsert(t *testing.T) {
	m := NewMap[int](4)

	// The load factor must never exceed 0.75 after a Set returns, so the
	// table has to grow before the insertion that would cross it.
	for i := 0; i < 100; i++ {
		m.Set(fmt.Sprintf("key%03d", i), i)
		load := float64(m.Len()) / float64(len(m.buckets))
		if load > 0.75 {
			t.Fatalf("after %d inserts: load factor = %d/%d = %.4f, want <= 0.75",
				i+1, m.Len(), len(m.buckets), load)
		}
	}

	// Overwrites do not add entries and must not grow the table.
	bucketCount := len(m.buckets)
	m.Set("key000", -1)
	if len(m.buckets) != bucketCount {
		t.Errorf("bucket count after overwrite = %d, want %d", len(m.buckets), bucketCount)
	}
	if v := m.Get("key000"); v == nil || *v != -1 {
		t.Errorf("Get(key000) = %v, want -1", v)
	}
}

func TestMapKeysAndValues(t *testing.T) {
	m := NewMap[int](0)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	keys := m.Keys()
	if keys.Len() != 3 {
		t.Fatalf("Keys.Len = %d, want 3", keys.Len())
	}
	sorted := keys.Items()
	sort.Strings(sorted)
	for i, want := range []string{"a", "b", "c"} {
		if sorted[i] != want {
			t.Errorf("key %d = %q, want %q", i, sorted[i], want)
		}
	}

	values := m.Values()
	if values.Len() != 3 {
		t.Fatalf("Values.Len = %d, want 3", values.Len())
	}
	sum := 0
	for i := 0; i < values.Len(); i++ {
		sum += *values.Get(i)
	}
	if sum != 6 {
		t.Errorf("value sum = %d, want 6", sum)
	}
}

func TestMapNilSafety(t *testing.T) {
	var m *Map[int]
	if m.Len() != 0 {
		t.Error("nil Len should be 0")
	}
	if m.Get("x") != nil {
		t.Error("nil Get should be nil")
	}
	if m.Delete("x") {
		t.Error("nil Delete should report false")
	}
	if m.Keys() != nil || m.Values() != nil {
		t.Error("nil Keys/Values should be nil")
	}
}

func TestHashStringIsFNV1a(t *testing.T) {
	// Reference values for the 32-bit FNV-1a parameters.
	if got := hashString(""); got != 2166136261 {
		t.Errorf("hash(\"\") = %d, want 2166136261", got)
	}
	if got := hashString("a"); got != 0xe40c292c {
		t.Errorf("hash(\"a\") = %#x, want 0xe40c292c", got)
	}
}
