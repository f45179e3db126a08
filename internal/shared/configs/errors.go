package configs

import (
	"log-report/internal/shared/svcerrors"
)

// Config errors
const (
	codeInvalidFlags  = "CFG_1000"
	codeInvalidConfig = "CFG_1001"
)

// errInvalidFlags returns an error when the command line cannot be parsed.
func errInvalidFlags(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidFlags, "invalid command line", cause)
}

// errInvalidConfig returns an error listing the settings that failed validation.
func errInvalidConfig(description string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfig, "config validation failed: "+description, cause)
}
