package storage

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrInvalidFileType = errors.New("Invalid file type. Only PDF, JPEG, and PNG files are allowed.")
	ErrFileTooLarge    = errors.New("File exceeds the maximum allowed size of 5MB")
	ErrInvalidFilename = errors.New("invalid filename")
)

// allowedMIMEs is the upload allow-list, enforced on every upload path.
var allowedMIMEs = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// FileStore persists uploaded files under a single directory on local disk.
// Files are first written under a temporary name and only promoted to their
// final name once the caller's database write has committed, so a failed
// submission never leaves a referenced-by-nobody file behind.
type FileStore struct {
	dir     string
	maxSize int64
}

// NewFileStore creates a FileStore rooted at dir, creating the directory if absent.
func NewFileStore(dir string, maxSize int64) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	return &FileStore{dir: dir, maxSize: maxSize}, nil
}

// Dir returns the directory files are stored under.
func (s *FileStore) Dir() string {
	return s.dir
}

// PendingFile is an uploaded file sitting under its temporary name. Call
// Promote once the owning record is persisted, or Discard to drop it.
type PendingFile struct {
	store    *FileStore
	name     string
	promoted bool
}

// Save validates and writes an uploaded file under a temporary name. The
// detected MIME type must be on the allow-list and the size under the limit.
// The generated name combines a nanosecond timestamp, a random component and
// the original extension, so concurrent uploads cannot collide.
func (s *FileStore) Save(r io.Reader, originalName string) (*PendingFile, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !allowedMIMEs[mtype.String()] {
		return nil, ErrInvalidFileType
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = mtype.Extension()
	}

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixNano(), randomComponent(), ext)

	if err := os.WriteFile(filepath.Join(s.dir, name+".tmp"), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing upload: %w", err)
	}

	return &PendingFile{store: s, name: name}, nil
}

// Name returns the final filename the file will have once promoted.
func (p *PendingFile) Name() string {
	return p.name
}

// Path returns the servable relative path, suitable for persisting on a record.
func (p *PendingFile) Path() string {
	return "/uploads/" + p.name
}

// Promote renames the file from its temporary to its final name.
func (p *PendingFile) Promote() error {
	if p.promoted {
		return nil
	}
	if err := os.Rename(filepath.Join(p.store.dir, p.name+".tmp"), filepath.Join(p.store.dir, p.name)); err != nil {
		return fmt.Errorf("promoting upload: %w", err)
	}
	p.promoted = true
	return nil
}

// Discard removes the temporary file. Calling it after Promote is a no-op.
func (p *PendingFile) Discard() {
	if p.promoted {
		return
	}
	os.Remove(filepath.Join(p.store.dir, p.name+".tmp"))
}

// Resolve maps a client-supplied filename to an absolute path inside the
// store, rejecting anything that would escape the directory. Names with the
// temporary suffix are rejected too: unpromoted files are not servable.
func (s *FileStore) Resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrInvalidFilename
	}
	if strings.HasSuffix(name, ".tmp") {
		return "", ErrInvalidFilename
	}
	return filepath.Join(s.dir, name), nil
}

// Exists reports whether a promoted file with the given name is present.
func (s *FileStore) Exists(name string) bool {
	path, err := s.Resolve(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Writable probes whether the store directory accepts new files. Used by the
// health endpoint.
func (s *FileStore) Writable() bool {
	f, err := os.CreateTemp(s.dir, ".probe-*")
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(f.Name())
	return true
}

// randomComponent returns a random suffix for generated filenames.
func randomComponent() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint32(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint32(b[:])
}
