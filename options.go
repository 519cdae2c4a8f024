package pageflow

import "github.com/inkwell-labs/pageflow/internal/ports"

// Options configures an Engine at construction time.
type Options struct {
	pageWidthPt, pageHeightPt float64
	fonts                     FontConfig
	fontMetrics               FontMetrics
	imageMetrics              ImageMetrics
	lineSpacingFactor         float64
	useImageForEmojis         bool
	logger                    Logger
}

// Option mutates an Options value, in the functional-options style the
// example corpus's PDF layout engine uses for its own NewEngine.
type Option func(*Options)

// WithPageSize sets the default page size new pages inherit when
// OpenPage is called without an explicit override.
func WithPageSize(widthPt, heightPt float64) Option {
	return func(o *Options) { o.pageWidthPt, o.pageHeightPt = widthPt, heightPt }
}

// WithFonts supplies the logical-role-to-face-id mapping the FontMetrics
// port resolves against.
func WithFonts(fonts FontConfig) Option {
	return func(o *Options) { o.fonts = fonts }
}

// WithFontMetrics supplies the advance-width/line-height port. Required —
// NewEngine returns a UsageError if it is never set.
func WithFontMetrics(fm FontMetrics) Option {
	return func(o *Options) { o.fontMetrics = fm }
}

// WithImageMetrics supplies the intrinsic-image-size port. Optional; a
// nil ImageMetrics is fine as long as no IMAGE element sizes both axes
// to Fit.
func WithImageMetrics(im ImageMetrics) Option {
	return func(o *Options) { o.imageMetrics = im }
}

// WithLineSpacingFactor overrides the default 1.2 line-spacing factor
// applied to TEXT elements that do not set an explicit LineHeight.
func WithLineSpacingFactor(f float64) Option {
	return func(o *Options) { o.lineSpacingFactor = f }
}

// WithUseImageForEmojis toggles whether emoji tokens are flagged for
// image-glyph fallback rendering; defaults to true.
func WithUseImageForEmojis(b bool) Option {
	return func(o *Options) { o.useImageForEmojis = b }
}

// WithLogger supplies the structured logger that non-fatal warnings are
// recorded through. Defaults to a no-op.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.logger = l }
}

func newOptions(opts []Option) Options {
	o := Options{
		lineSpacingFactor: 1.2,
		useImageForEmojis: true,
	}
	for _, apply := range opts {
		apply(&o)
	}
	if o.logger == nil {
		o.logger = ports.NopLogger{}
	}
	return o
}
