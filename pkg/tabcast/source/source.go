// Package source discovers tables in documents. Sources expose the
// document's view mode and its tables in document order; they never
// modify the document.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/tabcast-go/pkg/tabcast/models"
)

// ViewMode is the presentation mode of a document view.
type ViewMode int

const (
	// ModeReading is the non-editable rendered presentation. Table
	// discovery is only valid in this mode.
	ModeReading ViewMode = iota
	// ModeEditing is a live-edit presentation; exports are refused.
	ModeEditing
)

// Source supplies the tables discovered in one document.
type Source interface {
	// Mode reports the document's view mode.
	Mode() ViewMode
	// Tables returns all discovered tables in document order.
	Tables() ([]models.Table, error)
}

// Open picks a source implementation by file extension.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return OpenMarkdown(path)
	case ".xlsx", ".xlsm":
		return OpenXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported document type %q", filepath.Ext(path))
	}
}
