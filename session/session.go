package session

import (
	"errors"
	"io"
	"strings"

	"fileserver/docroot"
	"fileserver/frame"
	"fileserver/request"
	"fileserver/response"

	"github.com/astaxie/beego/logs"
)

const badRequestBody = "400 Bad Request\n"

// Options are the per-server settings every session shares.
type Options struct {
	IndexFile     string
	NotFoundFile  string
	MaxLineLength int
	MaxLines      int
}

// A Session drives one request/response cycle over a connection.
// Sessions are not reused.
type Session struct {
	Incoming io.Reader
	Outgoing io.Writer

	Root *docroot.Root
	Opts Options
	Log  *logs.BeeLogger
	// Prefixed to every log line.
	Tag string

	State   State
	Request *request.Request
	Code    response.HttpCode
	Written int64

	// A parse or routing failure that was answered with a 400 or
	// 404 rather than dropping the connection.
	Recovered *Error
}

func NewSession(rd io.Reader, wr io.Writer, root *docroot.Root, opts Options, log *logs.BeeLogger) *Session {
	return &Session{
		Incoming: rd,
		Outgoing: wr,
		Root:     root,
		Opts:     opts,
		Log:      log,
		State:    StateReading,
	}
}

// Serve reads one request, answers it and returns. A non-nil
// error is always a *Error of kind KindIoFailure and means no
// response was written.
func (sess *Session) Serve() error {
	framer := frame.NewFramer(sess.Incoming, sess.Opts.MaxLineLength, sess.Opts.MaxLines)
	lines, err := framer.ReadRequest()
	if err != nil {
		return sess.fail(err)
	}
	sess.State = sess.State.ReceivedRequest()

	req, err := request.Parse(lines)
	if err != nil {
		sess.Recovered = &Error{KindBadRequest, err}
		sess.Log.Warn("%s bad request: %v", sess.Tag, err)
		sess.State = sess.State.Rejected()
		return sess.write(response.New(response.BadRequest, []byte(badRequestBody)))
	}
	sess.Request = req
	sess.Log.Info("%s %s", sess.Tag, req)
	sess.State = sess.State.Parsed()

	rel := sess.route(req.Target())
	sess.State = sess.State.Routed()

	res, err := sess.readFile(rel)
	if err != nil {
		return sess.fail(err)
	}
	sess.State = sess.State.ReadFile()
	return sess.write(res)
}

// route maps a request target onto a path relative to the root.
func (sess *Session) route(target string) string {
	if target == "/" {
		return sess.Opts.IndexFile
	}
	return strings.TrimPrefix(target, "/")
}

// readFile builds the response for `rel`. Any failure to read the
// target becomes a 404 carrying the not-found document; only a
// failure to read that document is returned.
func (sess *Session) readFile(rel string) (*response.Response, error) {
	body, err := sess.Root.ReadText(rel)
	if err == nil {
		return response.New(response.Ok, body), nil
	}

	kind := KindNotFound
	if errors.Is(err, docroot.ErrTraversal) {
		kind = KindTraversalRejected
		sess.Log.Warn("%s rejected %q: %v", sess.Tag, rel, err)
	} else {
		sess.Log.Debug("%s not found %q: %v", sess.Tag, rel, err)
	}
	sess.Recovered = &Error{kind, err}

	body, err = sess.Root.ReadText(sess.Opts.NotFoundFile)
	if err != nil {
		return nil, err
	}
	return response.New(response.NotFound, body), nil
}

func (sess *Session) write(res *response.Response) error {
	n, err := res.WriteTo(sess.Outgoing)
	sess.Written = n
	if err != nil {
		return sess.fail(err)
	}
	sess.Code = res.Code
	sess.State = sess.State.Wrote()
	return nil
}

func (sess *Session) fail(err error) error {
	sess.State = sess.State.Failed()
	return &Error{KindIoFailure, err}
}
