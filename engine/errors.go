package engine

import "errors"

// ErrUnhandledMode reports a mode that reached workflow dispatch without
// a handler. The mode router is total, so this can only happen when a
// new Mode constant was added without extending the dispatch — a defect,
// not a runtime input problem.
var ErrUnhandledMode = errors.New("unhandled mode")
