package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"fileserver/config"
	"fileserver/docroot"
	"fileserver/histReader"
	"fileserver/session"

	"github.com/astaxie/beego/logs"
	"github.com/google/uuid"
)

// A Server accepts connections and hands each one to a session.
// Nothing is shared between connections except read-only
// settings, so each gets its own goroutine.
type Server struct {
	Config *config.Config
	Root   *docroot.Root
	Log    *logs.BeeLogger

	wg sync.WaitGroup
}

func NewServer(cfg *config.Config, root *docroot.Root, log *logs.BeeLogger) *Server {
	return &Server{
		Config: cfg,
		Root:   root,
		Log:    log,
	}
}

func (srv *Server) options() session.Options {
	return session.Options{
		IndexFile:     srv.Config.IndexFile,
		NotFoundFile:  srv.Config.NotFoundFile,
		MaxLineLength: srv.Config.MaxLineLength,
		MaxLines:      srv.Config.MaxLines,
	}
}

// Serve accepts until `ctx` is cancelled, then waits for open
// connections to finish. A failing connection never stops it.
func (srv *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			srv.Log.Warn("accept: %v", err)
			time.Sleep(10 * time.Millisecond)
			continue
		}
		srv.wg.Add(1)
		go func() {
			defer srv.wg.Done()
			srv.HandleConnection(conn)
		}()
	}
	srv.Log.Info("listener closed, waiting for open connections")
	srv.wg.Wait()
	return nil
}

// HandleConnection serves one request on `conn` and closes it.
func (srv *Server) HandleConnection(conn net.Conn) (err error) {
	defer conn.Close()

	tag := fmt.Sprintf("[%s %s]", uuid.New(), conn.RemoteAddr())
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			srv.Log.Critical("%s %v", tag, err)
		}
	}()

	now := time.Now()
	if t := srv.Config.ReadTimeout; t > 0 {
		conn.SetReadDeadline(now.Add(t))
	}
	if t := srv.Config.WriteTimeout; t > 0 {
		conn.SetWriteDeadline(now.Add(t))
	}

	// Instrument with a histReader so rejected requests can be dumped
	lg := histReader.NewHistReader(conn, srv.Config.MaxLineLength*2)
	sess := session.NewSession(lg, conn, srv.Root, srv.options(), srv.Log)
	sess.Tag = tag

	srv.Log.Debug("%s connection accepted", tag)
	if err = sess.Serve(); err != nil {
		srv.Log.Error("%s dropped in state %s: %v", tag, sess.State, err)
		srv.Log.Debug("%s bytes read:\n%s", tag, lg.Dump())
		return err
	}
	if sess.Recovered != nil && sess.Recovered.ErrorKind == session.KindBadRequest {
		srv.Log.Debug("%s bytes read:\n%s", tag, lg.Dump())
	}
	srv.Log.Info("%s %d, %d bytes", tag, int(sess.Code), sess.Written)
	return nil
}
