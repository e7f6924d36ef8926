package jobpostings

import "errors"

var ErrNotFound = errors.New("job posting not found")
