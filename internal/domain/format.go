package domain

import (
	"fmt"
	"io"
	"strings"

	m "github.com/miglja/textutils/internal/model"
)

// writeCountRow renders one row of count output: each active aggregate
// right-aligned in an 8-character field in the fixed order lines, words,
// bytes, chars, with no separators, then a space and the label unless the
// label is empty (standard input rows carry no name).
func writeCountRow(w io.Writer, kinds m.CountKinds, counts m.Counts, label string) error {
	var b strings.Builder

	if kinds.Lines {
		fmt.Fprintf(&b, "%8d", counts.Lines)
	}

	if kinds.Words {
		fmt.Fprintf(&b, "%8d", counts.Words)
	}

	if kinds.Bytes {
		fmt.Fprintf(&b, "%8d", counts.Bytes)
	}

	if kinds.Chars {
		fmt.Fprintf(&b, "%8d", counts.Chars)
	}

	if label != "" {
		b.WriteByte(' ')
		b.WriteString(label)
	}

	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())

	return err
}
