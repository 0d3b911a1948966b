package domain

import "errors"

// ErrBackendUnavailable signals that the on-device model capability is
// absent on this host (wrong platform, or the local bridge is not running).
var ErrBackendUnavailable = errors.New("on-device model unavailable")
