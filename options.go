package tess

// Option configures a Tessellation during construction.
// Use functional options to customize construction behavior.
//
// Example:
//
//	// Default construction
//	t, err := tess.New(dev, tess.Triangle, vertices)
//
//	// Labeled buffers for debugging tools
//	t, err := tess.New(dev, tess.Triangle, vertices, tess.WithLabel("terrain"))
type Option func(*options)

// options holds optional configuration for Tessellation construction.
type options struct {
	label string
}

// defaultOptions returns the default construction options.
func defaultOptions() options {
	return options{}
}

// WithLabel sets a debug label. Buffers are labeled "<label>.vertices"
// and "<label>.indices"; the label is also attached to log records.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// bufferLabel returns the label for one of the tessellation's buffers.
func (o *options) bufferLabel(suffix string) string {
	if o.label == "" {
		return ""
	}
	return o.label + "." + suffix
}

// DrawOption configures a single Draw call.
type DrawOption func(*drawOptions)

// drawOptions holds per-draw parameters.
type drawOptions struct {
	size float32
}

// defaultDrawOptions returns the per-draw defaults: point size and line
// width 1.
func defaultDrawOptions() drawOptions {
	return drawOptions{size: 1}
}

// WithSize sets the point size (Point mode) or line width (Line and
// LineStrip modes) for this draw. Other modes ignore it.
//
// Example:
//
//	points.Draw(dev, 1, tess.WithSize(5))
func WithSize(size float32) DrawOption {
	return func(o *drawOptions) {
		o.size = size
	}
}
