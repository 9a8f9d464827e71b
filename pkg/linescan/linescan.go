// Package linescan provides memory-bounded readers for line-oriented byte
// streams. A Scanner yields one line at a time with its terminator preserved,
// or a bounded byte window, so arbitrarily large streams can be processed
// without proportional memory growth.
package linescan

import (
	"bufio"
	"errors"
	"io"
)

// Scanner reads successive units from an underlying stream. Memory use is
// bounded by the longest line (or the requested window size), never by the
// stream length.
type Scanner struct {
	r *bufio.Reader
}

// New wraps r in a Scanner.
func New(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Line returns the next line including its '\n' terminator when present. A
// final line with no terminator is returned as-is; the io.EOF is deferred to
// the following call. At end of stream Line returns nil, io.EOF.
func (s *Scanner) Line() ([]byte, error) {
	line, err := s.r.ReadBytes('\n')
	if len(line) > 0 && errors.Is(err, io.EOF) {
		return line, nil
	}

	return line, err
}

// Window reads up to n bytes from the stream. A stream shorter than n yields
// the available bytes without error; only a genuine read failure is returned.
func (s *Scanner) Window(n int) ([]byte, error) {
	buf := make([]byte, n)

	read, err := io.ReadFull(s.r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}

	return buf[:read], err
}
