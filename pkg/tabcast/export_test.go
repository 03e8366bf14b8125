package tabcast

import (
	"errors"
	"testing"

	"github.com/ukaji3/tabcast-go/pkg/tabcast/models"
)

type fakeStorage struct {
	name    string
	content string
	err     error
	calls   int
}

func (f *fakeStorage) Create(name, content string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.name = name
	f.content = content
	return nil
}

type fakeClipboard struct {
	content string
	err     error
	calls   int
}

func (f *fakeClipboard) Write(content string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.content = content
	return nil
}

func singleCellTables(cells ...string) []models.Table {
	tables := make([]models.Table, len(cells))
	for i, c := range cells {
		if c == "" {
			continue // leave the table empty
		}
		tables[i] = table([]string{c})
	}
	return tables
}

func newTestSession(t *testing.T, tables []models.Table, opts SessionOptions) *Session {
	t.Helper()
	sess, err := NewSession(tables, DefaultConfig(), opts)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return sess
}

func TestNewSessionNoTables(t *testing.T) {
	_, err := NewSession(nil, DefaultConfig(), SessionOptions{})
	if !errors.Is(err, ErrNoTables) {
		t.Errorf("Expected ErrNoTables, got %v", err)
	}
}

func TestExportAscendingOrderRegardlessOfToggleOrder(t *testing.T) {
	storage := &fakeStorage{}
	sess := newTestSession(t, singleCellTables("A", "middle", "B"), SessionOptions{
		BaseName: "table-export",
		Counter:  "001",
		Storage:  storage,
	})

	// Toggle in reverse document order.
	sess.Toggle(2, true)
	sess.Toggle(0, true)

	res, err := sess.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if storage.content != "A\n\nB" {
		t.Errorf("Expected body %q, got %q", "A\n\nB", storage.content)
	}
	if res.TableCount != 2 {
		t.Errorf("Expected 2 tables, got %d", res.TableCount)
	}
}

func TestExportFilenameAndCounterAdvance(t *testing.T) {
	storage := &fakeStorage{}
	var persisted string
	sess := newTestSession(t, singleCellTables("x"), SessionOptions{
		BaseName: "table-export",
		Counter:  "005",
		Storage:  storage,
		PersistCounter: func(next string) error {
			persisted = next
			return nil
		},
	})
	sess.Toggle(0, true)

	res, err := sess.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if res.Filename != "table-export-005.csv" {
		t.Errorf("Expected filename table-export-005.csv, got %s", res.Filename)
	}
	if res.NextCounter != "006" {
		t.Errorf("Expected next counter 006, got %s", res.NextCounter)
	}
	if persisted != "006" {
		t.Errorf("Expected persisted counter 006, got %q", persisted)
	}
}

func TestExportCounterWrapsAt999(t *testing.T) {
	storage := &fakeStorage{}
	sess := newTestSession(t, singleCellTables("x"), SessionOptions{
		BaseName: "t",
		Counter:  "999",
		Storage:  storage,
	})
	sess.Toggle(0, true)

	res, err := sess.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if res.Filename != "t-999.csv" {
		t.Errorf("Expected filename t-999.csv, got %s", res.Filename)
	}
	if res.NextCounter != "001" {
		t.Errorf("Expected counter to wrap to 001, got %s", res.NextCounter)
	}
}

func TestExportPadsShortCounter(t *testing.T) {
	storage := &fakeStorage{}
	sess := newTestSession(t, singleCellTables("x"), SessionOptions{
		BaseName: "t",
		Counter:  "7",
		Storage:  storage,
	})
	sess.Toggle(0, true)

	res, err := sess.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if res.Filename != "t-007.csv" {
		t.Errorf("Expected at least three rendered digits, got %s", res.Filename)
	}
}

func TestExportEmptySelection(t *testing.T) {
	storage := &fakeStorage{}
	sess := newTestSession(t, singleCellTables("x"), SessionOptions{Storage: storage})

	_, err := sess.Export()
	if !errors.Is(err, ErrEmptySelection) {
		t.Errorf("Expected ErrEmptySelection, got %v", err)
	}
	if storage.calls != 0 {
		t.Error("Storage must not be touched for an empty selection")
	}
}

func TestExportEmptyResult(t *testing.T) {
	storage := &fakeStorage{}
	sess := newTestSession(t, singleCellTables(""), SessionOptions{Storage: storage})
	sess.Toggle(0, true)

	_, err := sess.Export()
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("Expected ErrEmptyResult, got %v", err)
	}
	if storage.calls != 0 {
		t.Error("Storage must not be touched for an empty result")
	}
}

func TestExportStorageFailureLeavesCounterUntouched(t *testing.T) {
	storage := &fakeStorage{err: errors.New("disk full")}
	persistCalls := 0
	clip := &fakeClipboard{}
	sess := newTestSession(t, singleCellTables("x"), SessionOptions{
		BaseName:        "t",
		Counter:         "001",
		CopyToClipboard: true,
		Storage:         storage,
		Clipboard:       clip,
		PersistCounter: func(string) error {
			persistCalls++
			return nil
		},
	})
	sess.Toggle(0, true)

	_, err := sess.Export()

	var sinkErr *SinkError
	if !errors.As(err, &sinkErr) || sinkErr.Sink != "storage" {
		t.Fatalf("Expected storage SinkError, got %v", err)
	}
	if persistCalls != 0 {
		t.Error("Counter must not be persisted after a storage failure")
	}
	if clip.calls != 0 {
		t.Error("Clipboard must not be attempted after a storage failure")
	}
}

func TestExportClipboardFailureDoesNotRollBack(t *testing.T) {
	storage := &fakeStorage{}
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	persisted := ""
	sess := newTestSession(t, singleCellTables("x"), SessionOptions{
		BaseName:        "t",
		Counter:         "001",
		CopyToClipboard: true,
		Storage:         storage,
		Clipboard:       clip,
		PersistCounter: func(next string) error {
			persisted = next
			return nil
		},
	})
	sess.Toggle(0, true)

	res, err := sess.Export()
	if err != nil {
		t.Fatalf("Export must succeed despite clipboard failure, got %v", err)
	}
	if res.Copied {
		t.Error("Copied must be false after clipboard failure")
	}
	if res.ClipboardErr == nil {
		t.Error("ClipboardErr must be set")
	}
	if storage.calls != 1 {
		t.Error("File creation must have happened")
	}
	if persisted != "002" {
		t.Errorf("Counter must still advance, got %q", persisted)
	}
}

func TestExportClipboardSuccess(t *testing.T) {
	storage := &fakeStorage{}
	clip := &fakeClipboard{}
	sess := newTestSession(t, singleCellTables("x"), SessionOptions{
		BaseName:        "t",
		Counter:         "001",
		CopyToClipboard: true,
		Storage:         storage,
		Clipboard:       clip,
	})
	sess.Toggle(0, true)

	res, err := sess.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !res.Copied {
		t.Error("Expected Copied to be true")
	}
	if clip.content != storage.content {
		t.Error("Clipboard must receive the same body as storage")
	}
}

func TestExportSessionConsumedOnce(t *testing.T) {
	storage := &fakeStorage{}
	sess := newTestSession(t, singleCellTables("x"), SessionOptions{Storage: storage})
	sess.Toggle(0, true)

	if _, err := sess.Export(); err != nil {
		t.Fatalf("First export failed: %v", err)
	}
	if _, err := sess.Export(); err == nil {
		t.Error("Second export on the same session must fail")
	}
}

func TestToggleOutOfRangeIgnored(t *testing.T) {
	storage := &fakeStorage{}
	sess := newTestSession(t, singleCellTables("x"), SessionOptions{Storage: storage})
	sess.Toggle(-1, true)
	sess.Toggle(5, true)

	_, err := sess.Export()
	if !errors.Is(err, ErrEmptySelection) {
		t.Errorf("Out-of-range toggles must not select anything, got %v", err)
	}
}
