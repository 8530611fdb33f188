package lzw

import "go.uber.org/zap"

type options struct {
	logger **zap.SugaredLogger
}

// Option configures an Encoder or Decoder, following the same
// functional-options shape used throughout this module.
type Option interface {
	apply(*options)
}

type loggerOption struct{ log *zap.SugaredLogger }

func (o loggerOption) apply(opts *options) { *opts.logger = o.log }

// WithLogger attaches a zap.SugaredLogger that receives Debug-level
// events for dictionary resets and width freezes. The zero value
// (nil Option not supplied) logs nothing.
func WithLogger(log *zap.SugaredLogger) Option { return loggerOption{log: log} }
