package fuzzy

import "go.uber.org/zap"

type options struct {
	logger **zap.SugaredLogger
}

// Option configures a Hasher.
type Option interface {
	apply(*options)
}

type loggerOption struct{ log *zap.SugaredLogger }

func (o loggerOption) apply(opts *options) { *opts.logger = o.log }

// WithLogger attaches a zap.SugaredLogger that receives Debug-level
// events for block-hash slot forks and reductions.
func WithLogger(log *zap.SugaredLogger) Option { return loggerOption{log: log} }
