package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	m "github.com/miglja/textutils/internal/model"
	"github.com/miglja/textutils/pkg/linescan"
)

// DisplayArgs configures one display (cat) run.
type DisplayArgs struct {
	Names   []m.SourceName
	Options m.DisplayOptions
}

// displayState is the mutable run state threaded through the per-source
// loop. The line counter resets at the start of each source; lastBlank
// deliberately does not, so squeeze-blank sees the end of one source and the
// start of the next as contiguous.
type displayState struct {
	lineNum   int
	lastBlank bool
}

// Display streams every source through the per-line transformer, emitting
// each surviving line immediately.
func (e *engine) Display(ctx context.Context, args DisplayArgs) error {
	opts := args.Options.Expand()
	state := &displayState{}

	return e.forEachSource(ctx, args.Names, func(_ int, name m.SourceName, src io.Reader) error {
		state.lineNum = 1
		sc := linescan.New(src)

		for {
			raw, err := sc.Line()
			if errors.Is(err, io.EOF) {
				return nil
			}

			if err != nil {
				return readFailure(name, err)
			}

			rendered, keep := renderLine(strings.TrimSuffix(string(raw), "\n"), opts, state)
			if !keep {
				continue
			}

			if _, err := io.WriteString(e.out, rendered); err != nil {
				return err
			}
		}
	})
}

// renderLine applies the active transformations to one terminator-stripped
// line, in fixed order: tabs, caret encoding, squeeze, numbering, end
// marker. It reports keep=false when squeeze-blank suppresses the line; the
// blank flag is updated either way.
func renderLine(line string, opts m.DisplayOptions, state *displayState) (string, bool) {
	if opts.ShowTabs {
		line = strings.ReplaceAll(line, "\t", "^I")
	}

	if opts.ShowNonprinting {
		line = caretEncode(line)
	}

	blank := line == ""

	if opts.SqueezeBlank && blank && state.lastBlank {
		return "", false
	}

	state.lastBlank = blank

	var b strings.Builder

	if opts.NumberAll || (opts.NumberNonblank && !blank) {
		fmt.Fprintf(&b, "%6d\t", state.lineNum)
		state.lineNum++
	}

	b.WriteString(line)

	if opts.ShowEnds {
		b.WriteByte('$')
	}

	b.WriteByte('\n')

	return b.String(), true
}

// caretEncode rewrites every control byte as its caret notation: 0x00-0x1F
// become '^' plus the byte 0x40 positions above (0x00 -> ^@, 0x1B -> ^[),
// and 0x7F becomes ^?. TAB and LF are exempt regardless of other options.
// All other bytes, including non-ASCII ones, pass through untouched.
func caretEncode(line string) string {
	var b strings.Builder

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case c == '\t' || c == '\n':
			b.WriteByte(c)
		case c < 0x20:
			b.WriteByte('^')
			b.WriteByte(c + 0x40)
		case c == 0x7F:
			b.WriteString("^?")
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
