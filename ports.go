package pageflow

import "github.com/inkwell-labs/pageflow/internal/ports"

// FontFace names one of the five logical font roles a StyledWord can render
// in.
type FontFace = ports.FontFace

const (
	Regular    = ports.Regular
	Bold       = ports.Bold
	Italic     = ports.Italic
	BoldItalic = ports.BoldItalic
	Emoji      = ports.Emoji
)

// FontConfig maps logical font roles to concrete face ids understood by the
// caller's FontMetrics implementation, with a bold/italic/emoji fallback
// chain for roles left unset.
type FontConfig = ports.FontConfig

// FontMetrics is the port the engine consults for advance widths; line
// heights come from TextConfig, and the engine does not call LineHeight.
// Implementations must be pure over (faceID, sizePt, text).
type FontMetrics = ports.FontMetrics

// ImageMetrics describes an opaque image source's intrinsic size, used only
// when both of an IMAGE element's axes are Fit.
type ImageMetrics = ports.ImageMetrics

// Logger is the minimal structured-logging port the engine accepts. A nil
// Logger passed to WithLogger is replaced by a no-op at construction.
type Logger = ports.Logger
