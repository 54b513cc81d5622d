package parse

import "errors"

var (
	ErrParse   = errors.New("parse error")
	ErrBadLine = errors.New("malformed config line")
	ErrBadKey  = errors.New("unsupported map key")
)
