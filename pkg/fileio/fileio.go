// Package fileio carries small helpers for option and dataset file naming.
package fileio

import (
	"log"
	"path/filepath"
	"strings"
)

// FormatFromPath infers a file format identifier from the path extension,
// e.g. "structures.xyz" yields ".xyz". It returns the empty string when the
// path carries no extension.
func FormatFromPath(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// CheckFileExtension appends the expected extension when the file name does
// not already carry it, logging a notice so the caller knows the output name
// changed.
func CheckFileExtension(filename, extension string) string {
	if filepath.Ext(filename) == extension {
		return filename
	}

	log.Printf("fileio: file name %q should have a %q extension, saving as %q", filename, extension, filename+extension)
	return filename + extension
}
