package main

import (
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fileserver/config"
	"fileserver/docroot"
	"fileserver/logging"
	"fileserver/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html": "<h1>index</h1>",
		"404.html":   "<h1>404</h1>",
		"foo.txt":    "foo",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	cfg := config.Default()
	cfg.Root = dir
	cfg.ReadTimeout = 2 * time.Second
	cfg.WriteTimeout = 2 * time.Second
	root, err := docroot.New(dir)
	require.NoError(t, err)
	return NewServer(cfg, root, logging.Discard())
}

// roundTrip writes `raw` on one end of a pipe, serves the other
// end and returns everything the server wrote.
func roundTrip(t *testing.T, srv *Server, raw string) ([]byte, error) {
	t.Helper()
	client, server := net.Pipe()
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.HandleConnection(server)
	}()
	go func() {
		client.Write([]byte(raw))
	}()
	data, _ := io.ReadAll(client)
	client.Close()
	return data, <-errCh
}

func TestHandleConnection(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		Name string
		Raw  string
		Code response.HttpCode
		Body string
	}{
		{"Root", "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n", response.Ok, "<h1>index</h1>"},
		{"File", "GET /foo.txt HTTP/1.1\r\n\r\n", response.Ok, "foo"},
		{"Missing", "GET /nope HTTP/1.1\r\n\r\n", response.NotFound, "<h1>404</h1>"},
		{"Traversal", "GET /../../../etc/passwd HTTP/1.1\r\n\r\n", response.NotFound, "<h1>404</h1>"},
		{"BadMethod", "DROP / HTTP/1.1\r\n\r\n", response.BadRequest, "400 Bad Request\n"},
		{"BadHeader", "GET / HTTP/1.1\r\nbroken\r\n\r\n", response.BadRequest, "400 Bad Request\n"},
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			data, err := roundTrip(t, srv, c.Raw)
			require.NoError(t, err)

			sl, _, body, err := response.Split(data)
			require.NoError(t, err)
			code, err := response.ParseStatusLine(sl)
			require.NoError(t, err)
			assert.Equal(t, c.Code, code)
			assert.Equal(t, c.Body, string(body))
		})
	}
}

func TestHandleConnection_DropsOnReadFailure(t *testing.T) {
	srv := newTestServer(t)

	data, err := roundTrip(t, srv, "GET /\xff HTTP/1.1\r\n\r\n")
	assert.Error(t, err)
	assert.Empty(t, data)
}

func TestHandleConnection_ReadTimeout(t *testing.T) {
	srv := newTestServer(t)
	srv.Config.ReadTimeout = 50 * time.Millisecond

	client, server := net.Pipe()
	defer client.Close()

	start := time.Now()
	err := srv.HandleConnection(server)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestServeKeepsAcceptingAfterFailures(t *testing.T) {
	srv := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, ln)
	}()

	get := func(raw string) []byte {
		conn, err := net.Dial("tcp", ln.Addr().String())
		require.NoError(t, err)
		defer conn.Close()
		_, err = conn.Write([]byte(raw))
		require.NoError(t, err)
		if tc, ok := conn.(*net.TCPConn); ok {
			tc.CloseWrite()
		}
		data, _ := io.ReadAll(conn)
		return data
	}

	assert.Empty(t, get(""))
	assert.Empty(t, get("\xff\xfe\r\n\r\n"))
	assert.Contains(t, string(get("DROP / HTTP/1.1\r\n\r\n")), "400 BAD REQUEST")
	assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 3\r\n\r\nfoo", string(get("GET /foo.txt HTTP/1.1\r\n\r\n")))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
