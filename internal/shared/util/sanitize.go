package util

import (
	"path"
	"path/filepath"
	"strings"
)

// FallbackFileName replaces names that sanitize to nothing.
const FallbackFileName = "upload"

// SanitizeFileName reduces name to a safe base name. Directory components are
// dropped and any remaining ".." runs are replaced, so the result never
// escapes the directory it is joined to.
func SanitizeFileName(name string) string {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, "\\", "/")
	s = strings.TrimRight(s, "/")
	if s == "" {
		return FallbackFileName
	}
	s = path.Base(s)
	s = strings.ReplaceAll(s, "..", "_")
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == "/" {
		return FallbackFileName
	}
	return s
}

// Extension returns the lowercased extension of name without the leading dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(strings.TrimSpace(name)), "."))
}
