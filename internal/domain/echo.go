package domain

import (
	"context"
	"io"
	"strings"
)

// EchoArgs carries the literal tokens to print.
type EchoArgs struct {
	Tokens      []string
	OmitNewline bool
}

// Echo joins the tokens with single spaces and writes them to the output
// sink, followed by a newline unless suppressed.
func (e *engine) Echo(ctx context.Context, args EchoArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(strings.Join(args.Tokens, " "))

	if !args.OmitNewline {
		b.WriteByte('\n')
	}

	_, err := io.WriteString(e.out, b.String())

	return err
}
