package rowan

import (
	"fmt"
	"sync"
)

// The last-error register. The supported threading model is a single caller
// thread (see package doc); the mutex keeps accidental cross-goroutine use
// from racing.
var errSlot struct {
	mu  sync.Mutex
	msg string
}

// SetError records a formatted message in the last-error register and emits
// it once at Error priority. It always returns false so failing operations
// can end with:
//
//	return SetError("window creation failed: %v", err)
func SetError(format string, args ...any) bool {
	msg := fmt.Sprintf(format, args...)

	errSlot.mu.Lock()
	errSlot.msg = msg
	errSlot.mu.Unlock()

	LogError("%s", msg)
	return false
}

// GetError returns the last recorded error message, or "" if none is set.
func GetError() string {
	errSlot.mu.Lock()
	defer errSlot.mu.Unlock()
	return errSlot.msg
}

// ClearError empties the last-error register.
func ClearError() {
	errSlot.mu.Lock()
	errSlot.msg = ""
	errSlot.mu.Unlock()
}
