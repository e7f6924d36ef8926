package candidates

import "errors"

var ErrNotFound = errors.New("candidate not found")
