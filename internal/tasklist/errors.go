package tasklist

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	FetchFailed  ErrorKind = "FetchFailed"
	CreateFailed ErrorKind = "CreateFailed"
	UpdateFailed ErrorKind = "UpdateFailed"
	DeleteFailed ErrorKind = "DeleteFailed"
)

var ErrTitleRequired = errors.New("task title cannot be empty")

// OperationError wraps the transport or server error of one failed operation.
type OperationError struct {
	Kind ErrorKind
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is matches another *OperationError with the same Kind and a nil Err,
// so callers can write errors.Is(err, tasklist.ErrUpdateFailed).
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	return ok && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrFetchFailed  = &OperationError{Kind: FetchFailed}
	ErrCreateFailed = &OperationError{Kind: CreateFailed}
	ErrUpdateFailed = &OperationError{Kind: UpdateFailed}
	ErrDeleteFailed = &OperationError{Kind: DeleteFailed}
)
