// Package adapter contains the infrastructure adapters for the textutils CLI.
package adapter

import (
	"errors"
	"io"
	"io/fs"
	"os"

	m "github.com/miglja/textutils/internal/model"
)

// SourceOpener abstracts resolving a source name to a readable stream. It
// intentionally hides direct `os` access so the engine can be tested without
// touching the disk or the real standard input.
type SourceOpener interface {
	// Open resolves a source name. The placeholder "-" binds to standard
	// input and always succeeds; any other name is opened as a file.
	Open(name m.SourceName) (io.ReadCloser, error)
}

// LocalSourceOpener is the concrete SourceOpener backed by the os package.
type LocalSourceOpener struct {
	stdin io.Reader
}

// NewLocalSourceOpener constructs a LocalSourceOpener whose "-" entries read
// from stdin. Callers pass os.Stdin outside of tests.
func NewLocalSourceOpener(stdin io.Reader) *LocalSourceOpener {
	return &LocalSourceOpener{stdin: stdin}
}

// Open implements SourceOpener.
func (o *LocalSourceOpener) Open(name m.SourceName) (io.ReadCloser, error) {
	if name.IsStdin() {
		return io.NopCloser(o.stdin), nil
	}

	f, err := os.Open(string(name))
	if err != nil {
		return nil, err
	}

	return f, nil
}

// OpenCause strips the path prefix from filesystem errors so diagnostics can
// render as "<name>: <cause>" without repeating the name.
func OpenCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
