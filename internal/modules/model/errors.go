package model

import "errors"

// Domain error sentinels. Repos translate store-level "record not found"
// into these; the serializer maps them to HTTP statuses at the boundary.
var (
	ErrProjectNotFound = errors.New("project does not exist")
	ErrUserNotFound    = errors.New("user does not exist")
	ErrUserLocked      = errors.New("user is locked")
)
