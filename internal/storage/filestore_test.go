package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Minimal valid magic bytes for MIME detection.
var (
	pdfBytes = []byte("%PDF-1.4\n%fake test document\n")
	pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), 5<<20)
	if err != nil {
		t.Fatalf("NewFileStore() unexpected error: %v", err)
	}
	return store
}

func TestSaveAndPromote(t *testing.T) {
	store := newTestStore(t)

	pending, err := store.Save(bytes.NewReader(pdfBytes), "resume.pdf")
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	if !strings.HasSuffix(pending.Name(), ".pdf") {
		t.Errorf("Name() = %q, want .pdf suffix", pending.Name())
	}
	if pending.Path() != "/uploads/"+pending.Name() {
		t.Errorf("Path() = %q, want /uploads/%s", pending.Path(), pending.Name())
	}

	// Before promotion only the temporary file exists.
	if store.Exists(pending.Name()) {
		t.Error("Exists() = true before Promote()")
	}

	if err := pending.Promote(); err != nil {
		t.Fatalf("Promote() unexpected error: %v", err)
	}
	if !store.Exists(pending.Name()) {
		t.Error("Exists() = false after Promote()")
	}
}

func TestSaveDiscard(t *testing.T) {
	store := newTestStore(t)

	pending, err := store.Save(bytes.NewReader(pngBytes), "photo.png")
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	pending.Discard()

	if _, err := os.Stat(filepath.Join(store.Dir(), pending.Name()+".tmp")); !os.IsNotExist(err) {
		t.Error("Discard() left the temporary file behind")
	}
	if store.Exists(pending.Name()) {
		t.Error("Exists() = true after Discard()")
	}
}

func TestSaveRejectsDisallowedType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(strings.NewReader("just some plain text"), "resume.txt")
	if err != ErrInvalidFileType {
		t.Errorf("expected ErrInvalidFileType, got %v", err)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), 16)
	if err != nil {
		t.Fatalf("NewFileStore() unexpected error: %v", err)
	}

	_, err = store.Save(bytes.NewReader(pdfBytes), "big.pdf")
	if err != ErrFileTooLarge {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		pending, err := store.Save(bytes.NewReader(pdfBytes), "resume.pdf")
		if err != nil {
			t.Fatalf("Save() unexpected error: %v", err)
		}
		if seen[pending.Name()] {
			t.Fatalf("Save() generated duplicate name %q", pending.Name())
		}
		seen[pending.Name()] = true
	}
}

func TestResolveRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"", "../etc/passwd", "a/b.pdf", ".hidden"} {
		if _, err := store.Resolve(name); err == nil {
			t.Errorf("Resolve(%q) expected error", name)
		}
	}
}

func TestResolveRejectsPendingFiles(t *testing.T) {
	store := newTestStore(t)

	pending, err := store.Save(bytes.NewReader(pdfBytes), "resume.pdf")
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	defer pending.Discard()

	// An unpromoted upload must not be reachable through its temporary name.
	if _, err := store.Resolve(pending.Name() + ".tmp"); err == nil {
		t.Errorf("Resolve(%q) expected error for an unpromoted file", pending.Name()+".tmp")
	}
	if store.Exists(pending.Name() + ".tmp") {
		t.Error("Exists() = true for a temporary name")
	}
}

func TestWritable(t *testing.T) {
	store := newTestStore(t)

	if !store.Writable() {
		t.Error("Writable() = false for a fresh temp directory")
	}
}
