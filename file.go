package rowan

import (
	"math"
	"os"
	"path/filepath"
)

// isPathSeparator reports whether b is one of the two recognized path
// separators. Paths are treated as raw bytes; no OS-specific rules apply.
func isPathSeparator(b byte) bool {
	return b == '/' || b == '\\'
}

// lastSeparatorIndex returns the byte offset of the last separator in
// path, or -1.
func lastSeparatorIndex(path string) int {
	for i := len(path) - 1; i >= 0; i-- {
		if isPathSeparator(path[i]) {
			return i
		}
	}
	return -1
}

// GetFileExtension returns the extension of path including the leading
// dot. The dot must come after the last separator and must not be the
// first byte of the path; otherwise the result is empty.
func GetFileExtension(path string) string {
	sep := lastSeparatorIndex(path)
	for i := len(path) - 1; i > sep; i-- {
		if path[i] == '.' {
			if i == 0 {
				return ""
			}
			return path[i:]
		}
	}
	return ""
}

// GetFileName returns the bytes after the last separator, or the whole
// path when it has none.
func GetFileName(path string) string {
	return path[lastSeparatorIndex(path)+1:]
}

// GetFileNameWithoutExt returns the file name with its extension removed.
func GetFileNameWithoutExt(path string) string {
	name := GetFileName(path)
	return name[:len(name)-len(GetFileExtension(name))]
}

// GetDirectoryPath returns the bytes up to (not including) the last
// separator, or "." when the path has none.
func GetDirectoryPath(path string) string {
	sep := lastSeparatorIndex(path)
	if sep < 0 {
		return "."
	}
	return path[:sep]
}

// GetParentDirectoryPath returns the parent directory of path. Trailing
// separators are ignored, so "/root/dir/" and "/root/dir" share the
// parent "/root". A path with no separator yields "."; the root yields
// "/".
func GetParentDirectoryPath(path string) string {
	end := len(path)
	for end > 0 && isPathSeparator(path[end-1]) {
		end--
	}
	if end == 0 {
		return "/"
	}

	sep := lastSeparatorIndex(path[:end])
	if sep < 0 {
		return "."
	}
	if sep == 0 {
		return "/"
	}
	return path[:sep]
}

// IsFileExtension reports whether path's extension equals ext with
// ASCII-case-insensitive comparison. ext must include the leading dot.
func IsFileExtension(path, ext string) bool {
	actual := GetFileExtension(path)
	if len(actual) == 0 || len(actual) != len(ext) {
		return false
	}
	for i := 0; i < len(ext); i++ {
		a, b := actual[i], ext[i]
		if a >= 'A' && a <= 'Z' {
			a += 'a' - 'A'
		}
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	if len(path) == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirectoryExists reports whether path names an existing directory.
func DirectoryExists(path string) bool {
	if len(path) == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsPathFile reports whether path exists and is a regular file.
func IsPathFile(path string) bool {
	return FileExists(path)
}

// IsPathDirectory reports whether path exists and is a directory.
func IsPathDirectory(path string) bool {
	return DirectoryExists(path)
}

// GetFileLength returns the size of the file at path in bytes, clamped to
// the int32 range. Returns -1 when the path cannot be inspected or does
// not name a regular file.
func GetFileLength(path string) int32 {
	if len(path) == 0 {
		SetError("failed to get file length: empty path")
		return -1
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		SetError("failed to get length of file [%s]", path)
		return -1
	}
	if info.Size() > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(info.Size())
}

// GetFileModTime returns the modification time of the file at path in
// seconds since the Unix epoch. Returns -1 for errors and non-files.
func GetFileModTime(path string) int64 {
	if len(path) == 0 {
		SetError("failed to get file modification time: empty path")
		return -1
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		SetError("failed to get modification time of file [%s]", path)
		return -1
	}
	return info.ModTime().Unix()
}

// GetApplicationDirectory returns the directory holding the running
// program, terminated with a path separator. When a host is initialized
// its base path is used; otherwise the executable's directory is
// resolved directly.
func GetApplicationDirectory() string {
	if active != nil && active.host != nil {
		if base, err := active.host.BasePath(); err == nil && base != "" {
			return base
		}
	}
	exe, err := os.Executable()
	if err != nil {
		SetError("failed to get application directory: %v", err)
		return ""
	}
	dir := filepath.Dir(exe)
	if len(dir) == 0 || !isPathSeparator(dir[len(dir)-1]) {
		dir += string(os.PathSeparator)
	}
	return dir
}
