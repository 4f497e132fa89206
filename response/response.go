package response

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fileserver/header"
)

const Version = "HTTP/1.1"

var (
	ErrMalformed      = errors.New("malformed response")
	ErrLengthMismatch = errors.New("content-length does not match body")
)

// A Response is a status code and a body. The only header
// written is Content-Length.
type Response struct {
	Code HttpCode
	Body []byte
}

func New(code HttpCode, body []byte) *Response {
	return &Response{Code: code, Body: body}
}

func (res *Response) StatusLine() string {
	code := res.Code
	if code == CodeUnset {
		code = Ok
	}
	return fmt.Sprintf("%s %d %s", Version, int(code), code.Reason())
}

// Marshal serializes the response as
//
//	<status-line>\r\nContent-Length: <n>\r\n\r\n<body>
func (res *Response) Marshal() []byte {
	var buf bytes.Buffer
	buf.Grow(len(res.Body) + 64)
	buf.WriteString(res.StatusLine())
	buf.WriteString("\r\nContent-Length: ")
	buf.WriteString(strconv.Itoa(len(res.Body)))
	buf.WriteString("\r\n\r\n")
	buf.Write(res.Body)
	return buf.Bytes()
}

func (res *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(res.Marshal())
	return int64(n), err
}

// Split breaks a serialized response into its status line,
// headers and body. The body must be exactly as long as the
// Content-Length header says, when one is present.
func Split(data []byte) (string, *header.List, []byte, error) {
	head, body, ok := bytes.Cut(data, []byte("\r\n\r\n"))
	if !ok {
		return "", nil, nil, fmt.Errorf("%w: no end of head", ErrMalformed)
	}
	lines := strings.Split(string(head), "\r\n")
	hl := header.NewList()
	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return "", nil, nil, fmt.Errorf("%w: bad header %q", ErrMalformed, line)
		}
		hl.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	if cl, ok := hl.Get("Content-Length"); ok {
		n, err := strconv.Atoi(cl)
		if err != nil {
			return "", nil, nil, fmt.Errorf("%w: bad content-length %q", ErrMalformed, cl)
		}
		if n != len(body) {
			return "", nil, nil, fmt.Errorf("%w: header says %d, body has %d", ErrLengthMismatch, n, len(body))
		}
	}
	return lines[0], hl, body, nil
}

// ParseStatusLine extracts the code from a status line such as
// "HTTP/1.1 404 NOT FOUND".
func ParseStatusLine(sl string) (HttpCode, error) {
	parts := strings.SplitN(sl, " ", 3)
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "HTTP/") {
		return CodeUnset, fmt.Errorf("%w: status line %q", ErrMalformed, sl)
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil || code/100 < 1 || code/100 > 5 {
		return CodeUnset, fmt.Errorf("%w: status code %q", ErrMalformed, parts[1])
	}
	return HttpCode(code), nil
}
