package libdiff

import "errors"

var (
	ErrPatch      = errors.New("patch failed")
	ErrEditScript = errors.New("edit script does not match sequences")
)
