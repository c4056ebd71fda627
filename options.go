package pagemesh

// Origin selects which page edge row 0 of the mesh lies on.
type Origin uint8

const (
	// OriginTopLeft places row 0 at y=0 with y growing downward, matching
	// screen and bitmap coordinates. This is the default.
	OriginTopLeft Origin = iota

	// OriginBottomLeft places row 0 at y=PageHeight so that y grows upward
	// as the row index grows, for y-up coordinate systems.
	OriginBottomLeft
)

// String returns the flag spelling of the origin.
func (o Origin) String() string {
	switch o {
	case OriginTopLeft:
		return "top-left"
	case OriginBottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// ParseOrigin parses the String form of an Origin.
func ParseOrigin(s string) (Origin, bool) {
	switch s {
	case "top-left", "":
		return OriginTopLeft, true
	case "bottom-left":
		return OriginBottomLeft, true
	default:
		return OriginTopLeft, false
	}
}

// Option configures mesh generation.
//
// Example:
//
//	// Flat grid in screen coordinates
//	err := pagemesh.Generate(verts, spec)
//
//	// Grid mirrored about the fold line
//	err := pagemesh.Generate(verts, spec, pagemesh.WithTransform(pagemesh.Reflect(p, dir)))
type Option func(*options)

// options holds optional configuration for Generate and NewGrid.
type options struct {
	origin    Origin
	transform Matrix
}

// defaultOptions returns the default generation options.
func defaultOptions() options {
	return options{
		origin:    OriginTopLeft,
		transform: Identity(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithOrigin sets the page edge row 0 lies on.
func WithOrigin(origin Origin) Option {
	return func(o *options) {
		o.origin = origin
	}
}

// WithTransform maps every generated vertex through m.
// Successive WithTransform options compose: the later one is applied last.
func WithTransform(m Matrix) Option {
	return func(o *options) {
		o.transform = m.Multiply(o.transform)
	}
}
