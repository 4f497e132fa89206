package frame

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	DefaultMaxLineLength = 8 << 10
	DefaultMaxLines      = 100
)

var (
	ErrNoRequest    = errors.New("connection closed before a request line")
	ErrNotText      = errors.New("request line is not valid text")
	ErrLineTooLong  = errors.New("request line too long")
	ErrTooManyLines = errors.New("too many request lines")
)

// A Framer cuts the head of a request, a run of lines ended by an
// empty line, out of a byte stream.
type Framer struct {
	Incoming *bufio.Reader
	MaxLines int
}

// NewFramer buffers `rd` so that no line longer than
// `maxLineLength` bytes is accepted. Non-positive limits fall back
// to the defaults.
func NewFramer(rd io.Reader, maxLineLength, maxLines int) *Framer {
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Framer{
		Incoming: bufio.NewReaderSize(rd, maxLineLength),
		MaxLines: maxLines,
	}
}

// readLine returns the next line without its "\n" or "\r\n".
func (this *Framer) readLine() (string, error) {
	l, more, err := this.Incoming.ReadLine()
	if err != nil {
		return "", err
	}
	if more {
		return "", ErrLineTooLong
	}
	if !utf8.Valid(l) {
		return "", ErrNotText
	}
	return string(l), nil
}

// ReadRequest reads lines until the first empty one and returns
// them, the empty line excluded. If the stream ends after at least
// one line the lines read so far are returned. If it ends before
// any line ReadRequest fails with ErrNoRequest.
func (this *Framer) ReadRequest() ([]string, error) {
	lines := []string{}
	for {
		line, err := this.readLine()
		if err == io.EOF {
			if len(lines) == 0 {
				return nil, ErrNoRequest
			}
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(lines)+1, err)
		}
		if line == "" {
			return lines, nil
		}
		if len(lines) >= this.MaxLines {
			return nil, ErrTooManyLines
		}
		lines = append(lines, line)
	}
}
