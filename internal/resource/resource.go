// Package resource models the lifecycle of one asynchronous network call as
// a tri-state value: Loading, Success(data) or Error(message).
package resource

// DefaultErrorMessage is shown when a failure carries no usable text.
const DefaultErrorMessage = "An unexpected error occurred"

type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Resource holds exactly one of the three states. The zero value is Loading.
type Resource[T any] struct {
	status  Status
	data    T
	message string
}

func Loading[T any]() Resource[T] {
	return Resource[T]{status: StatusLoading}
}

func Success[T any](data T) Resource[T] {
	return Resource[T]{status: StatusSuccess, data: data}
}

// Error builds a failed resource. message is meant for display; an empty
// message is replaced by DefaultErrorMessage.
func Error[T any](message string) Resource[T] {
	if message == "" {
		message = DefaultErrorMessage
	}
	return Resource[T]{status: StatusError, message: message}
}

func (r Resource[T]) Status() Status { return r.status }

// Data returns the payload and true only for Success.
func (r Resource[T]) Data() (T, bool) {
	if r.status != StatusSuccess {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Message returns the display message of an Error, "" otherwise.
func (r Resource[T]) Message() string {
	if r.status != StatusError {
		return ""
	}
	return r.message
}

func (r Resource[T]) IsLoading() bool { return r.status == StatusLoading }
func (r Resource[T]) IsSuccess() bool { return r.status == StatusSuccess }
func (r Resource[T]) IsError() bool   { return r.status == StatusError }

// Terminal reports whether r is Success or Error.
func (r Resource[T]) Terminal() bool { return r.status != StatusLoading }
