package commission

import "errors"

var ErrRowIndex = errors.New("commission row index out of range")
