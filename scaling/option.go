package scaling

// Options configures model fitting.
type Options struct {
	// Query is the topic glob anchoring the candidate vocabulary
	Query string
	// Window is the context window (tokens on each side of a query match)
	Window int
	// MinTermFreq is the minimum corpus-wide term frequency
	MinTermFreq int
	// TopTerms caps the keyness-ranked candidate vocabulary
	TopTerms int
	// Dim is the dimensionality of the latent term space
	Dim int
	// TermPattern restricts the vocabulary (default alphanumeric terms only)
	TermPattern string
}

// Option is a function that modifies Options
type Option func(*Options)

// NewOptions creates Options with the demonstration defaults applied
func NewOptions(opts ...Option) *Options {
	options := &Options{
		Query:       "econom*",
		Window:      10,
		MinTermFreq: 5,
		TopTerms:    500,
		Dim:         300,
		TermPattern: "^[a-z0-9]+$",
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithQuery sets the topic query glob
func WithQuery(query string) Option {
	return func(o *Options) {
		if query != "" {
			o.Query = query
		}
	}
}

// WithWindow sets the context window size
func WithWindow(window int) Option {
	return func(o *Options) {
		if window > 0 {
			o.Window = window
		}
	}
}

// WithMinTermFreq sets the minimum term frequency
func WithMinTermFreq(freq int) Option {
	return func(o *Options) {
		if freq > 0 {
			o.MinTermFreq = freq
		}
	}
}

// WithTopTerms caps the candidate vocabulary size
func WithTopTerms(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.TopTerms = n
		}
	}
}

// WithDim sets the latent space dimensionality
func WithDim(dim int) Option {
	return func(o *Options) {
		if dim > 0 {
			o.Dim = dim
		}
	}
}

// WithTermPattern sets the vocabulary restriction pattern
func WithTermPattern(pattern string) Option {
	return func(o *Options) {
		if pattern != "" {
			o.TermPattern = pattern
		}
	}
}
