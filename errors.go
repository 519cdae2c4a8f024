package pageflow

import (
	"fmt"

	"github.com/inkwell-labs/pageflow/internal/solver"
)

// UsageError reports a caller mistake — an unmatched CloseContainer, a
// Render with no page open, or an out-of-range config value. Usage errors
// abort immediately and leave no externally visible output.
type UsageError struct {
	Op     string
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("pageflow: %s: %s", e.Op, e.Reason)
}

func usageError(op, reason string) *UsageError {
	return &UsageError{Op: op, Reason: reason}
}

// Warning is a non-fatal condition collected in the side-channel list
// Render returns alongside the command vector.
type Warning = solver.Warning

// WarningKind classifies a Warning.
type WarningKind = solver.WarningKind

const (
	MeasurementFallback = solver.MeasurementFallback
	Overconstraint      = solver.Overconstraint
	ImageUnavailable    = solver.ImageUnavailable
)
