package launcher

import (
	"bytes"
	"encoding/json"
	"errors"
)

const (
	NotAuthorizedMsg       = "Not Authorized"
	InternalServerErrorMsg = "Internal server error"
)

// Error is the only error returned to the Lambda runtime. Its message is the
// JSON object {"msg": "..."}.
type Error struct {
	Msg string `json:"msg"`
	Err error  `json:"-"`
}

func (e *Error) Error() string {
	return ToJSON(e)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(msg string, err error) *Error {
	return &Error{Msg: msg, Err: err}
}

func NotAuthorizedError() *Error {
	return &Error{Msg: NotAuthorizedMsg}
}

func InternalServerError(err error) *Error {
	return &Error{Msg: InternalServerErrorMsg, Err: err}
}

func IsNotAuthorizedError(err error) bool {
	e := new(Error)
	return errors.As(err, &e) && e.Msg == NotAuthorizedMsg
}

func IsInternalServerError(err error) bool {
	e := new(Error)
	return errors.As(err, &e) && e.Msg == InternalServerErrorMsg
}

// ToJSON encodes v without HTML escaping so upstream text is kept verbatim.
func ToJSON(v interface{}) string {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
