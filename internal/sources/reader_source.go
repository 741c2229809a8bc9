package sources

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReaderSource reads lines from an io.Reader, e.g. an HTTP request body.
// It can be opened once.
type ReaderSource struct {
	name   string
	reader io.Reader
	opened bool
}

func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, reader: r}
}

func (s *ReaderSource) Name() string {
	return "reader:" + s.name
}

func (s *ReaderSource) Open(ctx context.Context) (LineReader, error) {
	if s.reader == nil {
		return nil, fmt.Errorf("%w: %s: nil reader", ErrSourceUnavailable, s.Name())
	}
	if s.opened {
		return nil, fmt.Errorf("%w: %s: already consumed", ErrSourceUnavailable, s.Name())
	}
	s.opened = true
	return newLineReader(s.reader, nil), nil
}

// lineReader reads newline-terminated lines from a bufio.Reader. A line over
// MaxLineBytes is discarded up to its newline and reported as ErrLineTooLong,
// after which reading continues with the next line.
type lineReader struct {
	reader *bufio.Reader
	closer func() error
}

func newLineReader(r io.Reader, closer func() error) *lineReader {
	return &lineReader{reader: bufio.NewReaderSize(r, 64*1024), closer: closer}
}

func (r *lineReader) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var line []byte
	tooLong := false
	for {
		chunk, err := r.reader.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			// room for a trailing "\r\n"
			if len(line) > MaxLineBytes+2 {
				tooLong = true
				line = nil
			}
		}

		switch {
		case err == nil:
			return r.finish(line, tooLong)
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if !tooLong && len(line) == 0 {
				return "", io.EOF
			}
			return r.finish(line, tooLong)
		default:
			return "", fmt.Errorf("read line: %w", err)
		}
	}
}

func (r *lineReader) finish(line []byte, tooLong bool) (string, error) {
	text := strings.TrimSuffix(strings.TrimSuffix(string(line), "\n"), "\r")
	if tooLong || len(text) > MaxLineBytes {
		return "", fmt.Errorf("%w: longer than %d bytes", ErrLineTooLong, MaxLineBytes)
	}
	return text, nil
}

func (r *lineReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
