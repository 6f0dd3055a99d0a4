package appointment

import "errors"

// ErrNotFound is returned by Directory and Store lookups for missing records.
var ErrNotFound = errors.New("record not found")
