package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

const contentFileName = "content.txt"

// ContentStorage provides filesystem-based storage for the demo content.
// All lines are appended to a single file named "content.txt" within the
// root directory, which is expected to be backed by a mounted Docker volume.
type ContentStorage struct {
	root string
}

// NewContentStorage creates a new ContentStorage instance that keeps the
// content file in the specified root directory.
func NewContentStorage(root string) *ContentStorage {
	return &ContentStorage{
		root: root,
	}
}

// Init creates the root directory if it does not exist. It must be called
// once at startup, before any request is served.
func (cs *ContentStorage) Init() error {
	if err := os.MkdirAll(cs.root, os.ModePerm); err != nil {
		return fmt.Errorf("make content root directory: %w", err)
	}
	return nil
}

// Append writes line followed by a newline at the end of the content file,
// creating the file on first use. The file handle is scoped to the call and
// released on every exit path.
//
// Each call issues a single write on an O_APPEND handle so individual lines
// stay intact, but concurrent callers may interleave in any order.
func (cs *ContentStorage) Append(line string) error {
	f, err := os.OpenFile(cs.contentPath(), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open content file: %w", err)
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append to content file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close content file: %w", err)
	}

	return nil
}

// ReadAll returns the full current contents of the content file. If the file
// has not been created yet it returns the empty string rather than an error,
// so callers never have to distinguish "never written" from "written empty".
func (cs *ContentStorage) ReadAll() (string, error) {
	data, err := os.ReadFile(cs.contentPath())
	if os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("read content file: %w", err)
	}

	return string(data), nil
}

func (cs *ContentStorage) contentPath() string {
	return filepath.Join(cs.root, contentFileName)
}
