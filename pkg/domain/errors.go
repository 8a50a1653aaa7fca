package domain

import "errors"

// ErrNotFound is returned by stores when the requested record doesn't exist
var ErrNotFound = errors.New("not found")
