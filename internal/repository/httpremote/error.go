package httpremote

import "fmt"

type UnsupportedSchemeError struct {
	scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported archive URL scheme: '%s'", e.scheme)
}

func NewUnsupportedSchemeError(scheme string) *UnsupportedSchemeError {
	return &UnsupportedSchemeError{
		scheme: scheme,
	}
}

type ArchiveRequestFailedError struct {
	archiveURL string
	statusCode int
}

func (e *ArchiveRequestFailedError) Error() string {
	return fmt.Sprintf("archive request for '%s' failed with status %d", e.archiveURL, e.statusCode)
}

func NewArchiveRequestFailedError(archiveURL string, statusCode int) *ArchiveRequestFailedError {
	return &ArchiveRequestFailedError{
		archiveURL: archiveURL,
		statusCode: statusCode,
	}
}
