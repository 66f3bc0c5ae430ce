package lsq

import "github.com/rs/zerolog"

// Defaults used by NewDefault and by callers that do not care about the
// interval or sample count.
const (
	DefaultIntervalStart = 0.0
	DefaultIntervalEnd   = 1.0
	DefaultSampleCount   = 100
)

// options holds optional Session collaborators.
type options struct {
	logger   zerolog.Logger
	observer Observer
	id       string
}

// Option configures a Session at construction.
type Option func(*options)

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// WithLogger sets the logger fits are reported to. The session id is added
// to every event as the "session" field. Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithObserver registers o to be notified after every Fit, successful or not.
func WithObserver(o Observer) Option {
	return func(opt *options) {
		opt.observer = o
	}
}

// WithID overrides the generated session id (a random UUID by default).
// An empty id keeps the default.
func WithID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.id = id
		}
	}
}
