package histReader

import (
	"bytes"
	"encoding/hex"
	"io"
)

// DefaultLimit caps how much of a connection is remembered.
const DefaultLimit = 16 << 10

// A HistReader passes reads through while keeping a copy of the
// first `limit` bytes, so a rejected request can be dumped.
type HistReader struct {
	rd    io.Reader
	hist  bytes.Buffer
	limit int
}

func NewHistReader(rd io.Reader, limit int) *HistReader {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &HistReader{rd: rd, limit: limit}
}

func (hr *HistReader) Read(b []byte) (int, error) {
	n, err := hr.rd.Read(b)
	if room := hr.limit - hr.hist.Len(); n > 0 && room > 0 {
		hr.hist.Write(b[:min(n, room)])
	}
	return n, err
}

// Len is the number of bytes remembered so far.
func (hr *HistReader) Len() int {
	return hr.hist.Len()
}

func (hr *HistReader) Bytes() []byte {
	return hr.hist.Bytes()
}

// Dump renders the remembered bytes in `hexdump -C` form.
func (hr *HistReader) Dump() string {
	return hex.Dump(hr.hist.Bytes())
}

func (hr *HistReader) Clear() {
	hr.hist.Reset()
}
