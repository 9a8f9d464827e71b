// Package domain implements the streaming text engine behind the textutils
// commands. One engine invocation processes an ordered list of sources
// strictly in order, one fully consumed before the next is opened, which
// keeps output deterministic and lets run state (running totals, the
// squeeze-blank flag) carry across source boundaries.
package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/miglja/textutils/internal/adapter"
	m "github.com/miglja/textutils/internal/model"
)

// Engine runs one of the four tool behaviors over an ordered list of
// sources, writing results to the output sink and per-source open failures
// to the diagnostic sink.
type Engine interface {
	Display(ctx context.Context, args DisplayArgs) error
	Head(ctx context.Context, args HeadArgs) error
	Count(ctx context.Context, args CountArgs) error
	Echo(ctx context.Context, args EchoArgs) error
}

type engine struct {
	opener adapter.SourceOpener
	out    io.Writer
	errOut io.Writer
}

// NewEngine creates an Engine bound to an opener and its two sinks.
func NewEngine(opener adapter.SourceOpener, out, errOut io.Writer) Engine {
	return &engine{
		opener: opener,
		out:    out,
		errOut: errOut,
	}
}

// sourceFunc processes one successfully opened source. index counts all
// requested names, including ones that failed to open, so header numbering
// stays stable when a source is skipped.
type sourceFunc func(index int, name m.SourceName, src io.Reader) error

// forEachSource opens each named source in order and hands it to fn. An open
// failure is reported to the diagnostic sink and the remaining sources are
// still processed; an error returned by fn is fatal and aborts the run.
func (e *engine) forEachSource(ctx context.Context, names []m.SourceName, fn sourceFunc) error {
	if len(names) == 0 {
		names = []m.SourceName{m.Stdin}
	}

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		src, err := e.opener.Open(name)
		if err != nil {
			slog.Warn("skipping source", "name", name, "error", err)
			fmt.Fprintf(e.errOut, "%s: %v\n", name, adapter.OpenCause(err))

			continue
		}

		err = fn(i, name, src)

		if closeErr := src.Close(); closeErr != nil {
			slog.Warn("failed to close source", "name", name, "error", closeErr)
		}

		if err != nil {
			return err
		}

		slog.Debug("source processed", "name", name)
	}

	return nil
}

// readFailure wraps a mid-stream read error with the source name. Unlike an
// open failure this aborts the whole run.
func readFailure(name m.SourceName, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
