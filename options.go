package gfkit

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	strict           bool
}

// Option configures Kernels.
type Option func(*options)

// WithLogger sets the logger used to report calls and rejected input.
//
// If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified after every call.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithStrictValidation enables checks that cost a full pass over an input,
// currently the ascending order of reference keys for NotIsIn.
//
// Grouping of the key table is never checked.
func WithStrictValidation(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}
