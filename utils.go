package rowan

import (
	"math/rand"
	"os/exec"
	"runtime"
	"sync"
)

var (
	randMu  sync.Mutex
	randSrc = rand.New(rand.NewSource(1))
)

// SetRandomSeed reseeds the random number generator used by
// GetRandomValue and LoadRandomSequence.
func SetRandomSeed(seed int64) {
	randMu.Lock()
	randSrc = rand.New(rand.NewSource(seed))
	randMu.Unlock()
}

// GetRandomValue returns a random value in [min, max], both inclusive.
// Reversed bounds are swapped.
func GetRandomValue(min, max int32) int32 {
	if min > max {
		min, max = max, min
	}
	randMu.Lock()
	value := randSrc.Int63n(int64(max) - int64(min) + 1)
	randMu.Unlock()
	return min + int32(value)
}

// LoadRandomSequence returns a list of count unique random values in
// [min, max]. Returns nil when count is not positive or the range holds
// fewer than count values.
func LoadRandomSequence(count, min, max int32) *List[int32] {
	if count <= 0 || min > max {
		return nil
	}
	if int64(max)-int64(min)+1 < int64(count) {
		return nil
	}

	sequence := NewList[int32](int(count))
	for sequence.Len() < int(count) {
		value := GetRandomValue(min, max)

		exists := false
		for i := 0; i < sequence.Len(); i++ {
			if *sequence.Get(i) == value {
				exists = true
				break
			}
		}
		if !exists {
			sequence.Push(value)
		}
	}
	return sequence
}

// UnloadRandomSequence releases a sequence returned by
// LoadRandomSequence.
func UnloadRandomSequence(sequence *List[int32]) {
	if sequence != nil {
		sequence.Clear()
	}
}

// OpenURL opens url with the system's default browser. When a host is
// initialized its opener is used; otherwise the platform's URL handler
// is invoked directly.
func OpenURL(url string) {
	if active != nil && active.host != nil {
		if err := active.host.OpenURL(url); err != nil {
			LogError("failed to open URL %s: %v", url, err)
		}
		return
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		LogError("failed to open URL %s: %v", url, err)
	}
}
