package usecase

import "errors"

// Marker for storage failures that are not client errors.
var ErrDatabaseOperationFailed = errors.New("database operation failed")
