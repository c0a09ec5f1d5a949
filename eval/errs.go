package eval

import "errors"

var (
	ErrCompile = errors.New("compile error")
	ErrEval    = errors.New("eval error")
)
