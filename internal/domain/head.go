package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	m "github.com/miglja/textutils/internal/model"
	"github.com/miglja/textutils/pkg/linescan"
)

// HeadArgs bounds the prefix emitted from each source. Bytes > 0 selects
// byte mode; otherwise Lines applies. The two limits are mutually exclusive
// and validated by the flag layer, but the engine still refuses a
// configuration where neither limit is usable.
type HeadArgs struct {
	Names []m.SourceName
	Lines int
	Bytes int
}

// Head emits a bounded prefix of each source. With more than one source each
// block gets a "==> name <==" header and blocks after the first are preceded
// by one blank line, counting skipped sources so ordering stays stable.
func (e *engine) Head(ctx context.Context, args HeadArgs) error {
	if args.Bytes <= 0 && args.Lines <= 0 {
		return errors.New("head: line and byte limits must be at least 1")
	}

	withHeaders := len(args.Names) > 1

	return e.forEachSource(ctx, args.Names, func(index int, name m.SourceName, src io.Reader) error {
		if withHeaders {
			if err := writeHeadHeader(e.out, index, name); err != nil {
				return err
			}
		}

		if args.Bytes > 0 {
			return e.headBytes(name, src, args.Bytes)
		}

		return e.headLines(name, src, args.Lines)
	})
}

// headBytes emits at most limit raw bytes in one bounded read. Invalid UTF-8
// in the window is replaced, never fatal, so binary content is safe.
func (e *engine) headBytes(name m.SourceName, src io.Reader, limit int) error {
	window, err := linescan.New(src).Window(limit)
	if err != nil {
		return readFailure(name, err)
	}

	_, err = e.out.Write(bytes.ToValidUTF8(window, []byte("�")))

	return err
}

// headLines emits at most limit lines, terminators preserved, stopping early
// without error when the source ends first.
func (e *engine) headLines(name m.SourceName, src io.Reader, limit int) error {
	sc := linescan.New(src)

	for read := 0; read < limit; read++ {
		line, err := sc.Line()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return readFailure(name, err)
		}

		if _, err := e.out.Write(line); err != nil {
			return err
		}
	}

	return nil
}

// writeHeadHeader prints the per-source block header used when heading
// multiple sources.
func writeHeadHeader(w io.Writer, index int, name m.SourceName) error {
	separator := ""
	if index > 0 {
		separator = "\n"
	}

	_, err := fmt.Fprintf(w, "%s==> %s <==\n", separator, name)

	return err
}
