package queue

import "github.com/pkg/errors"

var (
	ErrInvalidCapacity = errors.New("capacity is less than 0")
	ErrInvalidElement  = errors.New("element is invalid")
	ErrQueueFull       = errors.New("queue is full")
	ErrQueueEmpty      = errors.New("queue is empty")
)

// IsRangeError reports whether err is caused by an out-of-range argument
// (a negative capacity or an invalid element) rather than by queue state.
func IsRangeError(err error) bool {
	return errors.Is(err, ErrInvalidCapacity) || errors.Is(err, ErrInvalidElement)
}
