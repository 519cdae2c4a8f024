// Package ports defines the external collaborator interfaces the layout
// core consumes: font metrics, image metrics, and a structured logger. The
// core never implements these itself — concrete adapters live under
// adapters/ and are wired only by callers.
package ports

import "fmt"

// FontFace names one of the five logical font roles a styled word can
// select.
type FontFace uint8

const (
	Regular FontFace = iota
	Bold
	Italic
	BoldItalic
	Emoji
)

func (f FontFace) String() string {
	switch f {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "boldItalic"
	case Emoji:
		return "emoji"
	default:
		return fmt.Sprintf("FontFace(%d)", uint8(f))
	}
}

// FontConfig maps logical font roles to face identifiers understood by a
// FontMetrics implementation.
type FontConfig struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
	Emoji      string // optional; empty means "no dedicated emoji face"
}

// Resolve returns the face id to use for the given logical role, applying
// the fallback chain boldItalic -> bold -> regular, italic -> regular, and
// emoji -> regular when no emoji face is configured.
func (c FontConfig) Resolve(face FontFace) string {
	switch face {
	case Bold:
		if c.Bold != "" {
			return c.Bold
		}
		return c.Regular
	case Italic:
		if c.Italic != "" {
			return c.Italic
		}
		return c.Regular
	case BoldItalic:
		if c.BoldItalic != "" {
			return c.BoldItalic
		}
		if c.Bold != "" {
			return c.Bold
		}
		return c.Regular
	case Emoji:
		if c.Emoji != "" {
			return c.Emoji
		}
		return c.Regular
	default:
		return c.Regular
	}
}

// FontMetrics is the port the word measurer consumes to turn styled text
// into advance widths. The layout core takes line heights from TextConfig
// and does not call LineHeight. Implementations must be pure over
// (faceID, sizePt, text): same inputs, same output.
type FontMetrics interface {
	// WidthOfString returns the advance width, in points, of text set in
	// faceID at sizePt.
	WidthOfString(faceID string, sizePt float64, text string) (float64, error)
	// LineHeight returns the face's nominal line box height, in points, at
	// sizePt. The engine may override this via explicit textConfig.lineHeight.
	LineHeight(faceID string, sizePt float64) (float64, error)
}

// ImageMetrics describes intrinsic image dimensions, consulted only when
// both axes of an IMAGE element are Fit.
type ImageMetrics interface {
	// Describe returns the intrinsic width/height, in points, of source.
	Describe(source string) (width, height float64, err error)
}

// Logger is the minimal structured-logging port the engine uses to record
// non-fatal warnings. A nil Logger is valid; the engine treats it as a
// no-op sink.
type Logger interface {
	Warn(msg string, kv ...any)
	Debug(msg string, kv ...any)
}

// NopLogger discards everything. Used when no Logger is supplied.
type NopLogger struct{}

func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Debug(string, ...any) {}
