package dataset

import "fmt"

type InvalidArchiveURLError struct {
	archiveURL string
}

func (e *InvalidArchiveURLError) Error() string {
	return fmt.Sprintf("dataset archive URL '%s' is invalid", e.archiveURL)
}

func NewInvalidArchiveURLError(archiveURL string) *InvalidArchiveURLError {
	return &InvalidArchiveURLError{
		archiveURL: archiveURL,
	}
}

type DigestMismatchError struct {
	expected string
	actual   string
}

func (e *DigestMismatchError) Error() string {
	return fmt.Sprintf("dataset archive digest mismatch: expected md5 '%s', got '%s'", e.expected, e.actual)
}

func NewDigestMismatchError(expected string, actual string) *DigestMismatchError {
	return &DigestMismatchError{
		expected: expected,
		actual:   actual,
	}
}
