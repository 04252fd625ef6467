package bitvector

import (
	"github.com/RichieSams/containers/array"
	"github.com/RichieSams/containers/util"
	"github.com/sirupsen/logrus"
)

type options struct {
	wordCapacity int
	log          *logrus.Logger
}

// Option configures a BitVector created with NewWithOptions.
type Option func(*options)

// WithWordCapacity sets how many 64-bit words the backing array starts with.
func WithWordCapacity(words int) Option {
	return func(o *options) {
		o.wordCapacity = words
	}
}

// WithLogger sets the logger that word and growth events are reported to. The
// same logger is handed to the backing array.
//
// If nil is passed, log output is discarded.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) {
		if log == nil {
			log = util.DiscardLogger()
		}
		o.log = log
	}
}

func defaultOptions() options {
	return options{
		wordCapacity: array.DefaultCapacity,
		log:          util.DiscardLogger(),
	}
}
