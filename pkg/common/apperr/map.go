package apperr

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-boundedqueue/pkg/datastructs/queue"
)

// Generic Action Messages
const (
	MsgEnqueueFailed = "failed to enqueue"
	MsgDequeueFailed = "failed to dequeue"
	MsgPeekFailed    = "failed to peek"
	MsgCreateFailed  = "failed to create"
	MsgProcessFailed = "failed to process"
)

// MapError wraps an error with a standardized message"
func MapError(serviceName string, err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", serviceName, msg)
	return Wrap(err, code, formattedMsg, httpStatus)
}

// NewError creates a new AppError with standardized message format
func NewError(serviceName string, code int, msg string, httpStatus int, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", serviceName, msg)
	return New(code, formattedMsg, httpStatus, cause)
}

// FromQueueError maps a queue error to an AppError with a matching code and status.
// The queue sentinel stays reachable through errors.Is.
func FromQueueError(serviceName string, err error, msg string) *AppError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, queue.ErrInvalidCapacity):
		return MapError(serviceName, err, CodeInvalidCapacity, msg, http.StatusBadRequest)
	case errors.Is(err, queue.ErrInvalidElement):
		return MapError(serviceName, err, CodeInvalidElement, msg, http.StatusBadRequest)
	case errors.Is(err, queue.ErrQueueFull):
		return MapError(serviceName, err, CodeQueueFull, msg, http.StatusConflict)
	case errors.Is(err, queue.ErrQueueEmpty):
		return MapError(serviceName, err, CodeQueueEmpty, msg, http.StatusNotFound)
	default:
		return MapError(serviceName, err, CodeInternal, msg, http.StatusInternalServerError)
	}
}
