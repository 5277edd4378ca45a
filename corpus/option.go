package corpus

// Options configures how corpus sources are decoded.
type Options struct {
	// IDField names the document identifier column/key (default "id")
	IDField string
	// TextField names the text column/key (default "text")
	TextField string
	// DateField names the date column/key (default "date")
	DateField string
	// DateLayout is the time.Parse layout for dates (default "2006-01-02")
	DateLayout string
}

// Option is a function that modifies Options
type Option func(*Options)

// NewOptions creates Options with defaults applied
func NewOptions(opts ...Option) *Options {
	options := &Options{
		IDField:    "id",
		TextField:  "text",
		DateField:  "date",
		DateLayout: "2006-01-02",
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithIDField sets the identifier column/key
func WithIDField(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.IDField = name
		}
	}
}

// WithTextField sets the text column/key
func WithTextField(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.TextField = name
		}
	}
}

// WithDateField sets the date column/key
func WithDateField(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.DateField = name
		}
	}
}

// WithDateLayout sets the date parse layout
func WithDateLayout(layout string) Option {
	return func(o *Options) {
		if layout != "" {
			o.DateLayout = layout
		}
	}
}
