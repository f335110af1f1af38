package markup

import "log/slog"

// Option configures a Parser or a Serializer.
type Option func(*options)

type options struct {
	rules              Rules
	sanitize           bool
	collapseWhitespace bool
	alignStyle         bool
	logger             *slog.Logger
}

func defaultOptions() options {
	return options{
		rules:  DefaultRules(),
		logger: slog.New(slog.DiscardHandler),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRules replaces the tag vocabulary used by the parser.
func WithRules(r Rules) Option {
	return func(o *options) {
		o.rules = r.clone()
	}
}

// WithSanitize strips every tag and attribute outside the recognized
// vocabulary before parsing. Script and style contents are dropped.
func WithSanitize() Option {
	return func(o *options) {
		o.sanitize = true
	}
}

// WithCollapseWhitespace collapses insignificant whitespace the way a browser
// would before parsing.
func WithCollapseWhitespace() Option {
	return func(o *options) {
		o.collapseWhitespace = true
	}
}

// WithAlignStyle maps block alignment to and from a text-align style
// attribute. Without it alignment is dropped on export and ignored on load.
func WithAlignStyle() Option {
	return func(o *options) {
		o.alignStyle = true
	}
}

// WithLogger sets the logger for diagnostics. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
