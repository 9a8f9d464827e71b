package domain

import (
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	m "github.com/miglja/textutils/internal/model"
	"github.com/miglja/textutils/pkg/linescan"
)

// CountArgs configures one count (wc) run.
type CountArgs struct {
	Names []m.SourceName
	Kinds m.CountKinds
}

// Count scans each source line by line with terminators preserved,
// accumulating the active aggregates per source and folding them into a
// running total. Each source's row is printed as soon as the source is
// consumed; with more than one requested source a final total row follows.
func (e *engine) Count(ctx context.Context, args CountArgs) error {
	kinds := args.Kinds.Normalize()

	var total m.Counts

	err := e.forEachSource(ctx, args.Names, func(_ int, name m.SourceName, src io.Reader) error {
		counts, err := countSource(src, kinds)
		if err != nil {
			return readFailure(name, err)
		}

		total.Add(counts)

		return writeCountRow(e.out, kinds, counts, name.Label())
	})
	if err != nil {
		return err
	}

	if len(args.Names) > 1 {
		return writeCountRow(e.out, kinds, total, "total")
	}

	return nil
}

// countSource accumulates the active aggregates over one source. Byte counts
// include line terminators; word counts treat any whitespace run as one
// separator; character counts are decoded runes, which diverge from bytes
// under multi-byte encodings.
func countSource(src io.Reader, kinds m.CountKinds) (m.Counts, error) {
	var counts m.Counts

	sc := linescan.New(src)

	for {
		line, err := sc.Line()
		if errors.Is(err, io.EOF) {
			return counts, nil
		}

		if err != nil {
			return counts, err
		}

		counts.Lines++

		if kinds.Bytes {
			counts.Bytes += len(line)
		}

		if kinds.Words {
			counts.Words += len(strings.Fields(string(line)))
		}

		if kinds.Chars {
			counts.Chars += utf8.RuneCount(line)
		}
	}
}
