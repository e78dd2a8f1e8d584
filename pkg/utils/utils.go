package utils

import (
	"path/filepath"
	"strings"
)

// ReplaceExt swaps the extension of path, e.g. cards.html -> cards.pdf.
func ReplaceExt(path, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// OutputPath joins dir and name, falling back to the working directory when
// dir is empty.
func OutputPath(dir, name string) string {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}
