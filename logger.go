package rowan

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogCategory groups log messages by subsystem. Each category carries its
// own minimum priority threshold.
type LogCategory uint8

const (
	LogCategoryDefault LogCategory = iota
	LogCategoryError
	LogCategorySystem
	LogCategoryAudio
	LogCategoryVideo
	LogCategoryRender
	LogCategoryInput

	logCategoryCount
)

// LogLevel is a message priority. A message is emitted iff its level is at
// or above its category's threshold.
type LogLevel uint8

const (
	LogLevelVerbose LogLevel = iota + 1
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelCritical
)

var logPrefixes = map[LogLevel]string{
	LogLevelVerbose:  "[VERBOSE] ",
	LogLevelDebug:    "[DEBUG] ",
	LogLevelInfo:     "[INFO] ",
	LogLevelWarn:     "[WARN] ",
	LogLevelError:    "[ERROR] ",
	LogLevelCritical: "[CRITICAL] ",
}

var logger = struct {
	mu     sync.Mutex
	out    io.Writer
	levels [logCategoryCount]LogLevel
}{
	out: os.Stderr,
	levels: [logCategoryCount]LogLevel{
		LogCategoryDefault: LogLevelInfo,
		LogCategoryError:   LogLevelError,
		LogCategorySystem:  LogLevelInfo,
		LogCategoryAudio:   LogLevelInfo,
		LogCategoryVideo:   LogLevelInfo,
		LogCategoryRender:  LogLevelInfo,
		LogCategoryInput:   LogLevelInfo,
	},
}

// SetLogOutput redirects log output. The default is os.Stderr.
func SetLogOutput(w io.Writer) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	logger.out = w
}

// SetLogLevel sets the minimum priority threshold for one category.
func SetLogLevel(category LogCategory, level LogLevel) {
	if category >= logCategoryCount {
		return
	}
	logger.mu.Lock()
	defer logger.mu.Unlock()
	logger.levels[category] = level
}

// SetAllLogLevels sets the minimum priority threshold for every category.
func SetAllLogLevels(level LogLevel) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	for i := range logger.levels {
		logger.levels[i] = level
	}
}

// Log emits a formatted message for the given category and priority, if the
// category's threshold allows it.
func Log(category LogCategory, level LogLevel, format string, args ...any) {
	if category >= logCategoryCount || level < LogLevelVerbose || level > LogLevelCritical {
		return
	}
	logger.mu.Lock()
	defer logger.mu.Unlock()
	if level < logger.levels[category] {
		return
	}
	fmt.Fprintf(logger.out, logPrefixes[level]+format+"\n", args...)
}

// LogVerbose logs a message at Verbose priority in the default category.
func LogVerbose(format string, args ...any) {
	Log(LogCategoryDefault, LogLevelVerbose, format, args...)
}

// LogDebug logs a message at Debug priority in the default category.
func LogDebug(format string, args ...any) {
	Log(LogCategoryDefault, LogLevelDebug, format, args...)
}

// LogInfo logs a message at Info priority in the default category.
func LogInfo(format string, args ...any) {
	Log(LogCategoryDefault, LogLevelInfo, format, args...)
}

// LogWarn logs a message at Warn priority in the default category.
func LogWarn(format string, args ...any) {
	Log(LogCategoryDefault, LogLevelWarn, format, args...)
}

// LogError logs a message at Error priority in the error category.
func LogError(format string, args ...any) {
	Log(LogCategoryError, LogLevelError, format, args...)
}

// LogCritical logs a message at Critical priority in the error category.
func LogCritical(format string, args ...any) {
	Log(LogCategoryError, LogLevelCritical, format, args...)
}
