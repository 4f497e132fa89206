package request

import "fmt"

type Method uint8

const (
	MethodUnset Method = iota
	MethodGet
	MethodPost
	MethodPut
	// Not a registered HTTP method. Accepted for compatibility
	// with existing clients of this server.
	MethodUpdate
	MethodDelete
)

var methodNames = [...]string{
	MethodUnset:  "UNSET",
	MethodGet:    "GET",
	MethodPost:   "POST",
	MethodPut:    "PUT",
	MethodUpdate: "UPDATE",
	MethodDelete: "DELETE",
}

func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", m)
}

// ParseMethod matches `tok` case-sensitively against the
// supported methods.
func ParseMethod(tok string) (Method, error) {
	switch tok {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	case "PUT":
		return MethodPut, nil
	case "UPDATE":
		return MethodUpdate, nil
	case "DELETE":
		return MethodDelete, nil
	}
	return MethodUnset, fmt.Errorf("%w: %q", ErrInvalidMethod, tok)
}
