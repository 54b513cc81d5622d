package token

import "errors"

var (
	ErrUnbalanced = errors.New("unbalanced bracket")
	ErrNoPairSep  = errors.New("map entry without escaped '=' separator")
)
