package response

import "strconv"

type HttpCode int

const (
	CodeUnset HttpCode = 0

	Ok = 200

	BadRequest = 400
	NotFound   = 404

	ServerError = 500
)

var reasons = map[HttpCode]string{
	Ok:          "OK",
	BadRequest:  "BAD REQUEST",
	NotFound:    "NOT FOUND",
	ServerError: "INTERNAL SERVER ERROR",
}

// Reason returns the reason phrase sent after the code on the
// status line.
func (c HttpCode) Reason() string {
	if r, ok := reasons[c]; ok {
		return r
	}
	return "UNKNOWN"
}

func (c HttpCode) String() string {
	return strconv.Itoa(int(c)) + " " + c.Reason()
}
