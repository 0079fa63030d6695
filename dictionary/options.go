package dictionary

import "go.uber.org/zap"

// Option configures a ChainingHashTable at construction.
type Option func(*options)

type options struct {
	logger *zap.Logger
	name   string
}

// WithLogger sets the logger used to report resizes. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName tags every log line of the table with a "dictionary" field.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name != "" {
		o.logger = o.logger.With(zap.String("dictionary", o.name))
	}
	return o
}
