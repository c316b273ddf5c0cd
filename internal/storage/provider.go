// Package storage defines the notebook file-system abstraction.
package storage

import "io/fs"

// Provider is the interface for notebook file operations. All paths are
// relative to the notebook root.
type Provider interface {
	// Read returns the raw bytes of the page at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path, creating parent
	// directories as needed.
	Write(path string, content []byte) error
	// Exists reports whether a regular file exists at path.
	Exists(path string) (bool, error)
	// Stat returns file info for path (the page's recorded mtime drives
	// change detection).
	Stat(path string) (fs.FileInfo, error)
	// ListPages returns the base names (without extension) of the .txt
	// pages directly under dir.
	ListPages(dir string) ([]string, error)
}
