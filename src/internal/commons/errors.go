package commons

import "errors"

var ErrSessionNotFound = errors.New("Session not found")
