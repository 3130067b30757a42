package state

import "fmt"

type DumpError struct {
	err error
}

func (e *DumpError) Error() string {
	return fmt.Sprintf("failed to dump object state: %v", e.err)
}

func NewDumpError(err error) *DumpError {
	return &DumpError{
		err: err,
	}
}

type MissingKeyError struct{}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("state dict is missing the '%s' key", Key)
}

func NewMissingKeyError() *MissingKeyError {
	return &MissingKeyError{}
}

type MalformedDumpError struct {
	value any
}

func (e *MalformedDumpError) Error() string {
	return fmt.Sprintf("state dict '%s' entry is %T, not a string", Key, e.value)
}

func NewMalformedDumpError(value any) *MalformedDumpError {
	return &MalformedDumpError{
		value: value,
	}
}

type RestoreError struct {
	err error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("failed to restore object state: %v", e.err)
}

func NewRestoreError(err error) *RestoreError {
	return &RestoreError{
		err: err,
	}
}
