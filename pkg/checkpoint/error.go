package checkpoint

import "fmt"

type NotFoundError struct {
	step uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no checkpoint recorded for step %d", e.step)
}

func NewNotFoundError(step uint64) *NotFoundError {
	return &NotFoundError{
		step: step,
	}
}

type EmptyStoreError struct{}

func (e *EmptyStoreError) Error() string {
	return "checkpoint store is empty"
}

func NewEmptyStoreError() *EmptyStoreError {
	return &EmptyStoreError{}
}
