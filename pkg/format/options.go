package format

// Options controls how StringifyList lays out a list. Indent is the nesting
// depth expressed in Tab units; zero renders the list on a single line.
type Options struct {
	Indent        int
	Tab           string
	TrailingComma bool
	Quotes        bool
}

// DefaultOptions returns the layout used by generated class bodies: two levels
// of four-space indentation, quoted values and no trailing comma.
func DefaultOptions() Options {
	return Options{
		Indent:        2,
		Tab:           "    ",
		TrailingComma: false,
		Quotes:        true,
	}
}

// Option mutates Options before a list is rendered.
type Option func(*Options)

// WithIndent sets the nesting depth. Negative values are treated as zero.
func WithIndent(indent int) Option {
	return func(opts *Options) {
		if indent < 0 {
			indent = 0
		}
		opts.Indent = indent
	}
}

// WithTab overrides the indentation unit.
func WithTab(tab string) Option {
	return func(opts *Options) {
		opts.Tab = tab
	}
}

// WithTrailingComma toggles the comma emitted after the last entry.
func WithTrailingComma(enabled bool) Option {
	return func(opts *Options) {
		opts.TrailingComma = enabled
	}
}

// WithQuotes toggles single-quote wrapping of values.
func WithQuotes(enabled bool) Option {
	return func(opts *Options) {
		opts.Quotes = enabled
	}
}

// WithOptions replaces every setting at once.
func WithOptions(options Options) Option {
	return func(opts *Options) {
		*opts = options
		if opts.Indent < 0 {
			opts.Indent = 0
		}
	}
}

// NewOptions applies options on top of DefaultOptions.
func NewOptions(options ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
