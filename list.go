package rowan

import "sort"

// listDefaultCapacity is used when no initial capacity is given, and is the
// floor for any nonzero resize.
const listDefaultCapacity = 8

// listGrowthFactor is the capacity multiplier applied when a list grows.
const listGrowthFactor = 2

// List is a growable contiguous sequence of values of a single type. The
// zero capacity rule, growth policy, and operation contracts mirror the
// rest of the library's containers: capacity doubles when a write would
// exceed it, with a floor of listDefaultCapacity.
//
// Pointers returned by Get point into the backing storage and are
// invalidated by any operation that may grow, shrink, or reorder the list.
type List[T any] struct {
	data []T // len(data) is the element count, cap(data) the capacity
}

// NewList creates a list with the given initial capacity. A capacity of 0
// selects the default (8).
func NewList[T any](initialCapacity int) *List[T] {
	if initialCapacity <= 0 {
		initialCapacity = listDefaultCapacity
	}
	return &List[T]{data: make([]T, 0, initialCapacity)}
}

// Len returns the number of elements. A nil list has length 0.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.data)
}

// Cap returns the current capacity in elements.
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return cap(l.data)
}

// Reserve grows the capacity to at least capacity. It does nothing when the
// list already has room.
func (l *List[T]) Reserve(capacity int) bool {
	if l == nil {
		return false
	}
	if capacity <= cap(l.data) {
		return true
	}
	return l.Resize(capacity)
}

// Resize changes the capacity. The new capacity is never taken below the
// current length, and any positive capacity below the default is raised to
// the default.
func (l *List[T]) Resize(newCapacity int) bool {
	if l == nil {
		return false
	}
	if newCapacity < len(l.data) {
		newCapacity = len(l.data)
	}
	if newCapacity == cap(l.data) {
		return true
	}
	if newCapacity > 0 && newCapacity < listDefaultCapacity {
		newCapacity = listDefaultCapacity
	}

	data := make([]T, len(l.data), newCapacity)
	copy(data, l.data)
	l.data = data
	return true
}

// ensureCapacity makes room for one more element, doubling the capacity or
// falling back to the default when the list is empty of capacity.
func (l *List[T]) ensureCapacity() {
	if len(l.data) < cap(l.data) {
		return
	}
	newCapacity := cap(l.data) * listGrowthFactor
	if newCapacity == 0 {
		newCapacity = listDefaultCapacity
	}
	l.Resize(newCapacity)
}

// Get returns a pointer to the element at index, or nil when the index is
// out of range or the list is nil. The pointer is invalidated by any
// operation that may grow the list.
func (l *List[T]) Get(index int) *T {
	if l == nil || index < 0 || index >= len(l.data) {
		return nil
	}
	return &l.data[index]
}

// Set overwrites the element at index. Fails when the index is out of
// range.
func (l *List[T]) Set(index int, value T) bool {
	if l == nil || index < 0 || index >= len(l.data) {
		return false
	}
	l.data[index] = value
	return true
}

// Push appends a value, growing the list if necessary.
func (l *List[T]) Push(value T) bool {
	if l == nil {
		return false
	}
	l.ensureCapacity()
	l.data = append(l.data, value)
	return true
}

// PushBatch appends all values in one operation. When the batch does not
// fit, the capacity is raised to double the required length up front so a
// run of batches does not reallocate per call.
func (l *List[T]) PushBatch(values []T) bool {
	if l == nil || len(values) == 0 {
		return false
	}

	needed := len(l.data) + len(values)
	if needed > cap(l.data) {
		if !l.Resize(needed * listGrowthFactor) {
			return false
		}
	}
	l.data = append(l.data, values...)
	return true
}

// Pop removes the last element and returns it. ok is false on an empty or
// nil list.
func (l *List[T]) Pop() (value T, ok bool) {
	if l == nil || len(l.data) == 0 {
		return value, false
	}
	value = l.data[len(l.data)-1]
	l.data = l.data[:len(l.data)-1]
	return value, true
}

// Unshift inserts a value at the front, shifting existing elements right.
func (l *List[T]) Unshift(value T) bool {
	if l == nil {
		return false
	}
	l.ensureCapacity()
	var zero T
	l.data = append(l.data, zero)
	copy(l.data[1:], l.data)
	l.data[0] = value
	return true
}

// Shift removes the first element and returns it, shifting the rest left.
// ok is false on an empty or nil list.
func (l *List[T]) Shift() (value T, ok bool) {
	if l == nil || len(l.data) == 0 {
		return value, false
	}
	value = l.data[0]
	copy(l.data, l.data[1:])
	l.data = l.data[:len(l.data)-1]
	return value, true
}

// SliceToEnd selects "to the end of the list" as the end index of Slice.
const SliceToEnd = -1

// Slice returns a new list holding a copy of the elements in [start, end).
// Pass SliceToEnd (or any end beyond the length) to slice to the end.
// Returns nil when start exceeds the length or end.
func (l *List[T]) Slice(start, end int) *List[T] {
	if l == nil {
		LogError("cannot slice nil list")
		return nil
	}

	if end == SliceToEnd || end > len(l.data) {
		end = len(l.data)
	}
	if start < 0 || start > len(l.data) || start > end {
		LogError("invalid slice indices: start=%d, end=%d, length=%d", start, end, len(l.data))
		return nil
	}

	length := end - start
	capacity := length
	if capacity == 0 {
		capacity = listDefaultCapacity
	}
	result := &List[T]{data: make([]T, length, capacity)}
	copy(result.data, l.data[start:end])
	return result
}

// Concat returns a new list holding the elements of l followed by the
// elements of other. Returns nil when either list is nil.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	if l == nil || other == nil {
		LogError("cannot concatenate nil lists")
		return nil
	}

	total := len(l.data) + len(other.data)
	capacity := total
	if capacity == 0 {
		capacity = listDefaultCapacity
	}
	result := &List[T]{data: make([]T, 0, capacity)}
	result.data = append(result.data, l.data...)
	result.data = append(result.data, other.data...)
	return result
}

// Clone returns a deep copy with the same capacity and contents.
func (l *List[T]) Clone() *List[T] {
	if l == nil {
		LogError("cannot clone nil list")
		return nil
	}
	result := &List[T]{data: make([]T, len(l.data), cap(l.data))}
	copy(result.data, l.data)
	return result
}

// Reverse reverses the list in place by swapping from both ends.
func (l *List[T]) Reverse() bool {
	if l == nil {
		return false
	}
	for i, j := 0, len(l.data)-1; i < j; i, j = i+1, j-1 {
		l.data[i], l.data[j] = l.data[j], l.data[i]
	}
	return true
}

// Sort sorts the list in place with the given comparator, which returns a
// negative value when a orders before b, zero when equal, and a positive
// value otherwise. The sort is not stable.
func (l *List[T]) Sort(compare func(a, b T) int) bool {
	if l == nil || compare == nil {
		LogError("invalid parameters for list sort")
		return false
	}
	sort.Slice(l.data, func(i, j int) bool {
		return compare(l.data[i], l.data[j]) < 0
	})
	return true
}

// Filter returns a new list holding the elements for which keep reports
// true, in their original order. The result is allocated at exactly the
// match count (or the default capacity when nothing matches).
func (l *List[T]) Filter(keep func(value T) bool) *List[T] {
	if l == nil || keep == nil {
		LogError("invalid parameters for list filter")
		return nil
	}

	// Count first so the result is allocated exactly once.
	matches := 0
	for i := range l.data {
		if keep(l.data[i]) {
			matches++
		}
	}

	capacity := matches
	if capacity == 0 {
		capacity = listDefaultCapacity
	}
	result := &List[T]{data: make([]T, 0, capacity)}

	if matches == len(l.data) {
		result.data = append(result.data, l.data...)
		return result
	}
	for i := range l.data {
		if keep(l.data[i]) {
			result.data = append(result.data, l.data[i])
		}
	}
	return result
}

// Clear removes all elements without changing capacity.
func (l *List[T]) Clear() bool {
	if l == nil {
		return false
	}
	l.data = l.data[:0]
	return true
}

// Trim shrinks the capacity to exactly the length. An empty list is reset
// to the default capacity instead.
func (l *List[T]) Trim() bool {
	if l == nil {
		return false
	}
	if len(l.data) == 0 {
		return l.Resize(listDefaultCapacity)
	}
	if cap(l.data) > len(l.data) {
		data := make([]T, len(l.data))
		copy(data, l.data)
		l.data = data
	}
	return true
}

// Items exposes the backing slice for read-only iteration. The slice is
// invalidated by any operation that may grow the list.
func (l *List[T]) Items() []T {
	if l == nil {
		return nil
	}
	return l.data
}
