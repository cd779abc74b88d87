package rowan

// strDefaultCapacity is the byte capacity used when none is given.
const strDefaultCapacity = 16

// strGrowthFactor is the capacity multiplier applied when a string grows.
const strGrowthFactor = 2

// strWhitespace holds the byte set stripped by Trim and friends.
const strWhitespace = " \t\n\r\f\v"

// String is a growable byte string. Every transformation method returns a
// fresh value and leaves the receiver untouched; the only in-place
// operations are Append and Clear. Methods on a nil receiver return nil
// (or the zero value for scalar results), so transformation chains
// propagate failure without checks at every step.
type String struct {
	data []byte
}

// NewString creates an empty string with the given byte capacity. A
// capacity of 0 selects the default (16).
func NewString(initialCapacity int) *String {
	if initialCapacity <= 0 {
		initialCapacity = strDefaultCapacity
	}
	return &String{data: make([]byte, 0, initialCapacity)}
}

// FromString creates a dynamic string holding a copy of s.
func FromString(s string) *String {
	capacity := len(s)
	if capacity < strDefaultCapacity {
		capacity = strDefaultCapacity
	}
	out := &String{data: make([]byte, len(s), capacity)}
	copy(out.data, s)
	return out
}

// Clone returns a deep copy sharing no storage with the receiver.
func (s *String) Clone() *String {
	if s == nil {
		return nil
	}
	out := &String{data: make([]byte, len(s.data), cap(s.data))}
	copy(out.data, s.data)
	return out
}

// String returns the contents as a native Go string.
func (s *String) String() string {
	if s == nil {
		return ""
	}
	return string(s.data)
}

// Len returns the length in bytes. A nil string has length 0.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Cap returns the current byte capacity.
func (s *String) Cap() int {
	if s == nil {
		return 0
	}
	return cap(s.data)
}

// Clear empties the string in place, keeping its capacity.
func (s *String) Clear() {
	if s == nil {
		return
	}
	s.data = s.data[:0]
}

// ensureCapacity grows the backing array by doubling until needed bytes
// fit.
func (s *String) ensureCapacity(needed int) {
	if needed <= cap(s.data) {
		return
	}
	capacity := cap(s.data)
	if capacity == 0 {
		capacity = strDefaultCapacity
	}
	for capacity < needed {
		capacity *= strGrowthFactor
	}
	data := make([]byte, len(s.data), capacity)
	copy(data, s.data)
	s.data = data
}

// Append appends text to the receiver in place, growing by doubling when
// the capacity is exhausted.
func (s *String) Append(text string) bool {
	if s == nil {
		LogError("invalid parameters for string append operation")
		return false
	}
	s.ensureCapacity(len(s.data) + len(text))
	s.data = append(s.data, text...)
	return true
}

// Concat returns a fresh string equal to the receiver followed by other.
// A nil operand is treated as empty.
func (s *String) Concat(other *String) *String {
	total := s.Len() + other.Len()
	capacity := total
	if capacity < strDefaultCapacity {
		capacity = strDefaultCapacity
	}
	out := &String{data: make([]byte, 0, capacity)}
	if s != nil {
		out.data = append(out.data, s.data...)
	}
	if other != nil {
		out.data = append(out.data, other.data...)
	}
	return out
}

// StartsWith reports whether the string begins with prefix. An empty
// prefix always matches.
func (s *String) StartsWith(prefix string) bool {
	if s == nil {
		return false
	}
	if len(prefix) > len(s.data) {
		return false
	}
	return string(s.data[:len(prefix)]) == prefix
}

// EndsWith reports whether the string ends with suffix. An empty suffix
// always matches.
func (s *String) EndsWith(suffix string) bool {
	if s == nil {
		return false
	}
	if len(suffix) > len(s.data) {
		return false
	}
	return string(s.data[len(s.data)-len(suffix):]) == suffix
}

// Includes reports whether needle occurs anywhere in the string. An empty
// needle always matches.
func (s *String) Includes(needle string) bool {
	if s == nil {
		return false
	}
	return s.indexOf(needle, 0) >= 0
}

// indexOf returns the byte offset of the first occurrence of needle at or
// after from, or -1.
func (s *String) indexOf(needle string, from int) int {
	if len(needle) == 0 {
		return from
	}
	for i := from; i+len(needle) <= len(s.data); i++ {
		if string(s.data[i:i+len(needle)]) == needle {
			return i
		}
	}
	return -1
}

// PadStart returns a copy left-padded with pad bytes up to targetLength.
// A string already at or past the target length is returned as a clone.
func (s *String) PadStart(targetLength int, pad byte) *String {
	if s == nil {
		return nil
	}
	if len(s.data) >= targetLength {
		return s.Clone()
	}
	out := NewString(targetLength)
	for i := len(s.data); i < targetLength; i++ {
		out.data = append(out.data, pad)
	}
	out.data = append(out.data, s.data...)
	return out
}

// PadEnd returns a copy right-padded with pad bytes up to targetLength.
func (s *String) PadEnd(targetLength int, pad byte) *String {
	if s == nil {
		return nil
	}
	if len(s.data) >= targetLength {
		return s.Clone()
	}
	out := NewString(targetLength)
	out.data = append(out.data, s.data...)
	for len(out.data) < targetLength {
		out.data = append(out.data, pad)
	}
	return out
}

// Repeat returns the string repeated count times. A count of 0 yields an
// empty string.
func (s *String) Repeat(count int) *String {
	if s == nil || count < 0 {
		return nil
	}
	out := NewString(len(s.data) * count)
	for i := 0; i < count; i++ {
		out.data = append(out.data, s.data...)
	}
	return out
}

// Replace returns a copy with the first occurrence of needle replaced by
// replacement. Without a match (or with an empty needle) the result is a
// clone.
func (s *String) Replace(needle, replacement string) *String {
	if s == nil {
		return nil
	}
	if len(needle) == 0 {
		return s.Clone()
	}
	index := s.indexOf(needle, 0)
	if index < 0 {
		return s.Clone()
	}
	out := NewString(len(s.data) - len(needle) + len(replacement))
	out.data = append(out.data, s.data[:index]...)
	out.data = append(out.data, replacement...)
	out.data = append(out.data, s.data[index+len(needle):]...)
	return out
}

// ReplaceAll returns a copy with every non-overlapping occurrence of
// needle replaced left to right. An empty needle yields a clone.
func (s *String) ReplaceAll(needle, replacement string) *String {
	if s == nil {
		return nil
	}
	if len(needle) == 0 {
		return s.Clone()
	}
	out := NewString(len(s.data))
	from := 0
	for {
		index := s.indexOf(needle, from)
		if index < 0 {
			break
		}
		out.data = append(out.data, s.data[from:index]...)
		out.data = append(out.data, replacement...)
		from = index + len(needle)
	}
	out.data = append(out.data, s.data[from:]...)
	return out
}

// Split cuts the string at every occurrence of delimiter and returns the
// segments in order. The trailing segment is always included, even when
// empty. An empty delimiter or empty input yields a single-element list
// holding a clone.
func (s *String) Split(delimiter string) *List[*String] {
	if s == nil {
		return nil
	}
	if len(delimiter) == 0 || len(s.data) == 0 {
		out := NewList[*String](1)
		out.Push(s.Clone())
		return out
	}

	out := NewList[*String](0)
	from := 0
	for {
		index := s.indexOf(delimiter, from)
		if index < 0 {
			break
		}
		out.Push(FromString(string(s.data[from:index])))
		from = index + len(delimiter)
	}
	out.Push(FromString(string(s.data[from:])))
	return out
}

// ToLowercase returns a copy with ASCII uppercase bytes mapped down.
func (s *String) ToLowercase() *String {
	if s == nil {
		return nil
	}
	out := s.Clone()
	for i, b := range out.data {
		if b >= 'A' && b <= 'Z' {
			out.data[i] = b + ('a' - 'A')
		}
	}
	return out
}

// ToUppercase returns a copy with ASCII lowercase bytes mapped up.
func (s *String) ToUppercase() *String {
	if s == nil {
		return nil
	}
	out := s.Clone()
	for i, b := range out.data {
		if b >= 'a' && b <= 'z' {
			out.data[i] = b - ('a' - 'A')
		}
	}
	return out
}

func isStrWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// TrimStart returns a copy with leading whitespace removed.
func (s *String) TrimStart() *String {
	if s == nil {
		return nil
	}
	start := 0
	for start < len(s.data) && isStrWhitespace(s.data[start]) {
		start++
	}
	return FromString(string(s.data[start:]))
}

// TrimEnd returns a copy with trailing whitespace removed.
func (s *String) TrimEnd() *String {
	if s == nil {
		return nil
	}
	end := len(s.data)
	for end > 0 && isStrWhitespace(s.data[end-1]) {
		end--
	}
	return FromString(string(s.data[:end]))
}

// Trim returns a copy with whitespace removed from both ends. Fully
// whitespace input yields an empty string.
func (s *String) Trim() *String {
	if s == nil {
		return nil
	}
	start := 0
	for start < len(s.data) && isStrWhitespace(s.data[start]) {
		start++
	}
	end := len(s.data)
	for end > start && isStrWhitespace(s.data[end-1]) {
		end--
	}
	return FromString(string(s.data[start:end]))
}

// Substring returns the bytes starting at start, clamped to the remaining
// length. A start past the end yields an empty string.
func (s *String) Substring(start, length int) *String {
	if s == nil || start < 0 || length < 0 {
		return nil
	}
	if start > len(s.data) {
		return NewString(0)
	}
	if length > len(s.data)-start {
		length = len(s.data) - start
	}
	return FromString(string(s.data[start : start+length]))
}

// Equals reports byte equality of the two strings. A nil operand on
// either side compares unequal.
func (s *String) Equals(other *String) bool {
	if s == nil || other == nil {
		return false
	}
	return string(s.data) == string(other.data)
}
