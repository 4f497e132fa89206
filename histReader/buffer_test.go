package histReader

import (
	"encoding/hex"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistReaderRecords(t *testing.T) {
	src := "GET / HTTP/1.1\r\n\r\n"
	hr := NewHistReader(iotest.OneByteReader(strings.NewReader(src)), 0)

	data, err := io.ReadAll(hr)
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
	assert.Equal(t, src, string(hr.Bytes()))
	assert.Equal(t, hex.Dump([]byte(src)), hr.Dump())
}

func TestHistReaderLimit(t *testing.T) {
	hr := NewHistReader(strings.NewReader(strings.Repeat("x", 100)), 10)

	data, err := io.ReadAll(hr)
	require.NoError(t, err)
	assert.Len(t, data, 100)
	assert.Equal(t, 10, hr.Len())
}

func TestHistReaderKeepsDataReadWithError(t *testing.T) {
	hr := NewHistReader(iotest.DataErrReader(strings.NewReader("abc")), 0)

	buf := make([]byte, 8)
	n, err := hr.Read(buf)
	assert.Equal(t, 3, n)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "abc", string(hr.Bytes()))

	hr.Clear()
	assert.Equal(t, 0, hr.Len())
}
