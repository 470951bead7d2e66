package notification

import "errors"

// ErrUnknownEventType indicates an event type name outside the closed set.
var ErrUnknownEventType = errors.New("unknown event type")
