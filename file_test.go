package rowan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetFileExtension(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"/root/dir/image.tar.gz", ".gz"},
		{"file.txt", ".txt"},
		{"file", ""},
		{"archive.d/file", ""},
		{".hidden", ""},
		{"dir/.hidden", ""},
		{"dir/.hidden.txt", ".txt"},
		{"", ""},
	}
	for _, c := range cases {
		if got := GetFileExtension(c.path); got != c.want {
			t.Errorf("GetFileExtension(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestGetFileName(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"/root/dir/image.png", "image.png"},
		{`C:\dir\image.png`, "image.png"},
		{"image.png", "image.png"},
		{"/root/dir/", ""},
	}
	for _, c := range cases {
		if got := GetFileName(c.path); got != c.want {
			t.Errorf("GetFileName(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestGetFileNameWithoutExt(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"/root/dir/image.png", "image"},
		{"/root/dir/image.tar.gz", "image.tar"},
		{"noext", "noext"},
		{"dir/.hidden", ".hidden"},
	}
	for _, c := range cases {
		if got := GetFileNameWithoutExt(c.path); got != c.want {
			t.Errorf("GetFileNameWithoutExt(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestGetDirectoryPath(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"/root/dir/image.png", "/root/dir"},
		{"image.png", "."},
		{"/image.png", ""},
		{`dir\sub\file`, `dir\sub`},
	}
	for _, c := range cases {
		if got := GetDirectoryPath(c.path); got != c.want {
			t.Errorf("GetDirectoryPath(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestGetParentDirectoryPath(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"/root/dir/", "/root"},
		{"/root/dir", "/root"},
		{"/root", "/"},
		{"/", "/"},
		{"///", "/"},
		{"relative", "."},
		{"a/b", "a"},
	}
	for _, c := range cases {
		if got := GetParentDirectoryPath(c.path); got != c.want {
			t.Errorf("GetParentDirectoryPath(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestIsFileExtension(t *testing.T) {
	if !IsFileExtension("image.PNG", ".png") {
		t.Error("expected case-insensitive match")
	}
	if !IsFileExtension("image.png", ".PNG") {
		t.Error("expected case-insensitive match the other way")
	}
	if IsFileExtension("image.png", ".jpg") {
		t.Error("expected mismatch for a different extension")
	}
	if IsFileExtension("image", ".png") {
		t.Error("expected mismatch for a path with no extension")
	}
}

func TestFileQueries(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(file, []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("expected FileExists for a regular file")
	}
	if FileExists(dir) {
		t.Error("expected FileExists false for a directory")
	}
	if !DirectoryExists(dir) {
		t.Error("expected DirectoryExists for a directory")
	}
	if DirectoryExists(file) {
		t.Error("expected DirectoryExists false for a file")
	}
	if FileExists("") || DirectoryExists("") {
		t.Error("expected empty paths to report false")
	}
	if !IsPathFile(file) || IsPathFile(dir) {
		t.Error("IsPathFile mismatch")
	}
	if !IsPathDirectory(dir) || IsPathDirectory(file) {
		t.Error("IsPathDirectory mismatch")
	}
}

func TestGetFileLength(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(file, []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := GetFileLength(file); got != 5 {
		t.Errorf("GetFileLength = %d, want 5", got)
	}
	if got := GetFileLength(filepath.Join(dir, "missing")); got != -1 {
		t.Errorf("GetFileLength(missing) = %d, want -1", got)
	}
	if got := GetFileLength(dir); got != -1 {
		t.Errorf("GetFileLength(dir) = %d, want -1", got)
	}
	ClearError()
}

func TestGetFileModTime(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := GetFileModTime(file); got <= 0 {
		t.Errorf("GetFileModTime = %d, want a positive timestamp", got)
	}
	if got := GetFileModTime(filepath.Join(dir, "missing")); got != -1 {
		t.Errorf("GetFileModTime(missing) = %d, want -1", got)
	}
	ClearError()
}

func TestGetApplicationDirectory(t *testing.T) {
	dir := GetApplicationDirectory()
	if dir == "" {
		t.Fatalf("GetApplicationDirectory failed: %s", GetError())
	}
	if !isPathSeparator(dir[len(dir)-1]) {
		t.Errorf("directory %q does not end with a separator", dir)
	}
}
