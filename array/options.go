package array

import (
	"errors"
	"fmt"

	"github.com/RichieSams/containers/util"
	"github.com/sirupsen/logrus"
)

// DefaultCapacity is the number of slots a new Array starts with
const DefaultCapacity = 64

var (
	// ErrInvalidCapacity is returned when the starting capacity is less than one slot.
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

type options struct {
	capacity int
	log      *logrus.Logger
}

// Option configures an Array created with NewWithOptions.
type Option func(*options)

// WithCapacity sets the starting number of slots.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithLogger sets the logger growth events are reported to.
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
		capacity: DefaultCapacity,
		log:      util.DiscardLogger(),
	}
}

func (o options) validate() error {
	if o.capacity < 1 {
		return fmt.Errorf("Invalid starting capacity %d - %w", o.capacity, ErrInvalidCapacity)
	}
	return nil
}
