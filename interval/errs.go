package interval

import "errors"

var ErrInvalid = errors.New("invalid interval")
