// Package sink provides the output sinks consumed by export sessions:
// file creation in the document's storage root and the system clipboard.
package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// Dir creates export files inside a fixed root directory.
// Subfolder placement is a declared future option; exports currently
// always land in the root itself.
type Dir struct {
	Root string
}

// NewDir returns a storage sink rooted at dir.
func NewDir(dir string) *Dir {
	return &Dir{Root: dir}
}

// Create writes content under name inside the root. An existing file of
// the same name is never overwritten; the rotating counter exists to
// keep names distinct, so a collision is surfaced as an error.
func (d *Dir) Create(name, content string) error {
	path := filepath.Join(d.Root, name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", name)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	return nil
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// Write places content on the system clipboard.
func (SystemClipboard) Write(content string) error {
	return clipboard.WriteAll(content)
}
