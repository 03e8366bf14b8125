package tabcast

import (
	"fmt"
	"strings"

	"github.com/ukaji3/tabcast-go/pkg/tabcast/models"
)

// Storage persists an export body under a filename in the document's
// storage root.
type Storage interface {
	Create(name, content string) error
}

// Clipboard writes an export body to the system clipboard.
type Clipboard interface {
	Write(content string) error
}

// SessionOptions configures one export session.
type SessionOptions struct {
	// BaseName is the filename stem; the output is {BaseName}-{counter}.csv.
	BaseName string
	// Counter is the current rotating counter value (see PadCounter).
	Counter string
	// CopyToClipboard requests a clipboard write after the file is created.
	CopyToClipboard bool

	Storage   Storage
	Clipboard Clipboard

	// PersistCounter saves the advanced counter after a successful storage
	// write. May be nil.
	PersistCounter func(next string) error
}

// Result reports the outcome of a successful export.
type Result struct {
	// Filename is the name the export was created under.
	Filename string
	// TableCount is the number of tables included.
	TableCount int
	// NextCounter is the advanced counter value.
	NextCounter string
	// Copied is true when the requested clipboard write succeeded.
	Copied bool
	// ClipboardErr is set when a clipboard write was requested and failed.
	// The file was still created and the counter advanced.
	ClipboardErr error
	// PersistErr is set when saving the advanced counter failed.
	// The file was still created.
	PersistErr error
}

// Session coordinates one selection-and-export pass over the tables
// discovered in a document. One session serves at most one export; the
// selection is discarded afterwards.
type Session struct {
	tables []models.Table
	cfg    Config
	opts   SessionOptions
	sel    *Selection
	done   bool
}

// NewSession starts a session over the discovered tables.
// Returns ErrNoTables when the table list is empty.
func NewSession(tables []models.Table, cfg Config, opts SessionOptions) (*Session, error) {
	if len(tables) == 0 {
		return nil, ErrNoTables
	}
	return &Session{
		tables: tables,
		cfg:    cfg,
		opts:   opts,
		sel:    NewSelection(),
	}, nil
}

// Tables returns the tables the session was opened over.
func (s *Session) Tables() []models.Table {
	return s.tables
}

// Toggle includes or excludes a table by index.
func (s *Session) Toggle(index int, included bool) {
	if index < 0 || index >= len(s.tables) {
		return
	}
	s.sel.Toggle(index, included)
}

// Export converts the selected tables in ascending index order, joins
// the per-table outputs with a blank line, and hands the body to the
// sinks. The counter advances and is persisted only after the storage
// write succeeds; a clipboard failure after that point does not roll
// anything back.
func (s *Session) Export() (*Result, error) {
	if s.done {
		return nil, fmt.Errorf("export session already consumed")
	}

	picked := s.sel.Confirm()
	s.done = true
	if len(picked) == 0 {
		return nil, ErrEmptySelection
	}

	parts := make([]string, len(picked))
	for i, idx := range picked {
		parts[i] = Convert(s.tables[idx], s.cfg)
	}
	body := strings.Join(parts, "\n\n")
	if body == "" {
		return nil, ErrEmptyResult
	}

	name := fmt.Sprintf("%s-%s.csv", s.opts.BaseName, PadCounter(s.opts.Counter))
	if err := s.opts.Storage.Create(name, body); err != nil {
		return nil, &SinkError{Sink: "storage", Err: err}
	}

	res := &Result{
		Filename:    name,
		TableCount:  len(picked),
		NextCounter: NextCounter(s.opts.Counter),
	}
	if s.opts.PersistCounter != nil {
		res.PersistErr = s.opts.PersistCounter(res.NextCounter)
	}

	if s.opts.CopyToClipboard {
		if err := s.opts.Clipboard.Write(body); err != nil {
			res.ClipboardErr = &SinkError{Sink: "clipboard", Err: err}
		} else {
			res.Copied = true
		}
	}
	return res, nil
}
