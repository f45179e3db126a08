package ingestors

import (
	"errors"
	"fmt"

	"log-report/internal/shared/filestorages"
	"log-report/internal/shared/svcerrors"
)

// LogLoader errors
const (
	codeSourceUnavailable = "ING_1000"
	codeInvalidTimestamp  = "ING_1001"

	codeInternalSourceReadFailed = "ING_9000"
)

// errSourceUnavailable returns an error when a log source cannot be opened.
func errSourceUnavailable(source string, cause error) *svcerrors.ServiceError {
	msg := fmt.Sprintf("cannot open log source %q", source)
	if errors.Is(cause, filestorages.ErrFileNotFound) {
		return svcerrors.NewNotFoundError(codeSourceUnavailable, msg, cause)
	}
	return svcerrors.NewInvalidArgumentError(codeSourceUnavailable, msg, cause)
}

// errInvalidTimestamp returns an error when a record cannot be matched against the date filter.
func errInvalidTimestamp(source string, line int, cause error) *svcerrors.ServiceError {
	msg := fmt.Sprintf("%s:%d: cannot filter record by date", source, line)
	return svcerrors.NewInvalidArgumentError(codeInvalidTimestamp, msg, cause)
}

// errInternalSourceReadFailed returns an error when reading an opened source fails.
func errInternalSourceReadFailed(source string, cause error) *svcerrors.ServiceError {
	msg := fmt.Sprintf("failed to read log source %q", source)
	return svcerrors.NewInternalError(codeInternalSourceReadFailed, msg, cause)
}
