// Package engine sequences the pipeline from snapshot to change
// proposal: mode resolution, prompt assembly, the single model call and
// diff materialization. Every component here is stateless; the same
// inputs always take the same path (the model response itself is not
// deterministic and is not cached).
package engine

import (
	"go.uber.org/zap"
)

// Mode identifies an execution route through the workflow. The set is
// closed: new modes are added here first and then handled explicitly in
// the workflow dispatch.
type Mode string

const (
	ModeDev    Mode = "dev"
	ModeCasual Mode = "casual"
)

// ModeRouter resolves a requested mode string to a Mode. Resolution is
// total: any string, including the empty one, resolves to a member of
// the closed set.
type ModeRouter struct {
	logger *zap.Logger
}

// NewModeRouter initializes a mode router.
func NewModeRouter(logger *zap.Logger) *ModeRouter {
	return &ModeRouter{logger: logger}
}

// Resolve maps the requested mode to a Mode, falling back to dev. An
// absent value is normal operation and logged at info; a present but
// unknown value usually means caller misconfiguration and is logged at
// warn.
func (r *ModeRouter) Resolve(requested string) Mode {
	if requested == "" {
		r.logger.Info("no mode specified, falling back to dev mode")
		return ModeDev
	}

	switch Mode(requested) {
	case ModeDev:
		return ModeDev
	case ModeCasual:
		return ModeCasual
	default:
		r.logger.Warn("invalid mode specified, falling back to dev mode",
			zap.String("requested_mode", requested),
		)
		return ModeDev
	}
}
