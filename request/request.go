package request

import (
	"errors"
	"fmt"
	"strings"

	"fileserver/header"
)

var (
	ErrInvalidStatusLine = errors.New("invalid status line")
	ErrInvalidMethod     = errors.New("invalid method")
	ErrInvalidHeaderLine = errors.New("invalid header line")
)

// A Request is the parsed head of an HTTP/1.1 request. It is
// never modified after Parse returns it.
type Request struct {
	method  Method
	target  string
	version string
	headers header.List
}

// Parse builds a Request from the lines of a request head. The
// first line is the status line, every following line is a
// header. The terminating blank line must already be removed.
func Parse(lines []string) (*Request, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidStatusLine)
	}
	parts := strings.Fields(lines[0])
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %d tokens in %q", ErrInvalidStatusLine, len(parts), lines[0])
	}
	method, err := ParseMethod(parts[0])
	if err != nil {
		return nil, err
	}

	req := &Request{
		method:  method,
		target:  parts[1],
		version: parts[2],
	}
	for i, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d has no colon", ErrInvalidHeaderLine, i+2)
		}
		req.headers.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return req, nil
}

func (req *Request) Method() Method {
	return req.method
}

// Target is the raw request-target, e.g. "/index.html".
func (req *Request) Target() string {
	return req.target
}

func (req *Request) Version() string {
	return req.version
}

func (req *Request) Header(name string) (string, bool) {
	return req.headers.Get(name)
}

// Headers returns the header fields in the order they were sent.
func (req *Request) Headers() []header.Field {
	return req.headers.Fields()
}

func (req *Request) String() string {
	return fmt.Sprintf("%s %s %s (%d headers)", req.method, req.target, req.version, req.headers.Len())
}
