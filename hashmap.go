package rowan

// hmapDefaultCapacity is the bucket count used when none is given.
const hmapDefaultCapacity = 16

// hmapLoadFactor is the maximum entries-per-bucket ratio before the table
// grows.
const hmapLoadFactor = 0.75

// hmapGrowthFactor is the bucket count multiplier applied on resize.
const hmapGrowthFactor = 2

// FNV-1a parameters (32-bit variant).
const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// hashString hashes a key with FNV-1a over its bytes.
func hashString(key string) uint32 {
	hash := fnvOffsetBasis
	for i := 0; i < len(key); i++ {
		hash ^= uint32(key[i])
		hash *= fnvPrime
	}
	return hash
}

type hmapEntry[V any] struct {
	key   string
	value V
	next  *hmapEntry[V]
}

// Map is a string-keyed hash table with separate chaining. The table grows
// by doubling whenever an insertion would push the load factor past 0.75,
// so lookups stay O(1) amortized. Insertion order is not observable.
//
// Pointers returned by Get point into the map's storage and are invalidated
// by any mutation.
type Map[V any] struct {
	buckets []*hmapEntry[V]
	length  int
}

// NewMap creates a map with the given initial bucket count. A count of 0
// selects the default (16).
func NewMap[V any](initialCapacity int) *Map[V] {
	if initialCapacity <= 0 {
		initialCapacity = hmapDefaultCapacity
	}
	return &Map[V]{buckets: make([]*hmapEntry[V], initialCapacity)}
}

// Len returns the number of live entries. A nil map has length 0.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.length
}

// resize rehashes every live entry into a table of newCapacity buckets.
func (m *Map[V]) resize(newCapacity int) bool {
	if newCapacity < m.length {
		return false
	}

	buckets := make([]*hmapEntry[V], newCapacity)
	for _, entry := range m.buckets {
		for entry != nil {
			next := entry.next
			index := int(hashString(entry.key) % uint32(newCapacity))
			entry.next = buckets[index]
			buckets[index] = entry
			entry = next
		}
	}
	m.buckets = buckets
	return true
}

func (m *Map[V]) bucketIndex(key string) int {
	return int(hashString(key) % uint32(len(m.buckets)))
}

// Set stores value under key, overwriting any existing entry with the same
// key. The table is resized first when the insertion would exceed the load
// factor.
func (m *Map[V]) Set(key string, value V) bool {
	if m == nil {
		LogError("invalid parameters for hashmap set operation")
		return false
	}

	index := m.bucketIndex(key)
	for entry := m.buckets[index]; entry != nil; entry = entry.next {
		if entry.key == key {
			entry.value = value
			return true
		}
	}

	if float64(m.length+1) > float64(len(m.buckets))*hmapLoadFactor {
		if !m.resize(len(m.buckets) * hmapGrowthFactor) {
			LogError("failed to resize hashmap during set operation")
			return false
		}
		index = m.bucketIndex(key)
	}

	m.buckets[index] = &hmapEntry[V]{key: key, value: value, next: m.buckets[index]}
	m.length++
	return true
}

// Get returns a pointer to the value stored under key, or nil when the key
// is absent. The pointer is invalidated by any mutation of the map.
func (m *Map[V]) Get(key string) *V {
	if m == nil {
		return nil
	}

	index := m.bucketIndex(key)
	for entry := m.buckets[index]; entry != nil; entry = entry.next {
		if entry.key == key {
			return &entry.value
		}
	}
	return nil
}

// Delete removes the entry stored under key. Reports whether a match was
// found.
func (m *Map[V]) Delete(key string) bool {
	if m == nil {
		return false
	}

	index := m.bucketIndex(key)
	entry := m.buckets[index]
	if entry == nil {
		return false
	}

	if entry.key == key {
		m.buckets[index] = entry.next
		m.length--
		return true
	}

	for prev := entry; prev.next != nil; prev = prev.next {
		if prev.next.key == key {
			prev.next = prev.next.next
			m.length--
			return true
		}
	}
	return false
}

// Keys returns a new list holding a copy of every live key, in no
// particular order. Returns nil for a nil map.
func (m *Map[V]) Keys() *List[string] {
	if m == nil {
		return nil
	}

	capacity := m.length
	if capacity == 0 {
		capacity = listDefaultCapacity
	}
	keys := NewList[string](capacity)
	for _, entry := range m.buckets {
		for ; entry != nil; entry = entry.next {
			keys.Push(entry.key)
		}
	}
	return keys
}

// Values returns a new list holding a copy of every live value, in no
// particular order. Returns nil for a nil map.
func (m *Map[V]) Values() *List[V] {
	if m == nil {
		return nil
	}

	capacity := m.length
	if capacity == 0 {
		capacity = listDefaultCapacity
	}
	values := NewList[V](capacity)
	for _, entry := range m.buckets {
		for ; entry != nil; entry = entry.next {
			values.Push(entry.value)
		}
	}
	return values
}
