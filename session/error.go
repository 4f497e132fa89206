package session

import "fmt"

type ErrorKind int

const (
	KindUnset ErrorKind = iota
	// Reading the request or writing the response failed, or the
	// not-found document could not be read. No response was sent.
	KindIoFailure
	// The request head did not parse. Answered with 400.
	KindBadRequest
	// The target does not exist or cannot be read. Answered with 404.
	KindNotFound
	// The target resolves outside the serving root. Answered with 404.
	KindTraversalRejected
)

var kindNames = [...]string{
	KindUnset:             "Unset",
	KindIoFailure:         "IoFailure",
	KindBadRequest:        "BadRequest",
	KindNotFound:          "NotFound",
	KindTraversalRejected: "TraversalRejected",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is returned by Serve, and recorded on the session for
// failures that were turned into a response.
type Error struct {
	ErrorKind
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.ErrorKind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
