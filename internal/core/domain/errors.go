package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures a run can end with.
type ErrorKind int

const (
	// ConfigurationError reports a missing or invalid scalar parameter.
	ConfigurationError ErrorKind = iota + 1
	// DecodeError reports a secret, variable or collection that is not valid JSON.
	DecodeError
	// ExecutionError reports a failed helm invocation.
	ExecutionError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigurationError:
		return "configuration error"
	case DecodeError:
		return "decode error"
	case ExecutionError:
		return "execution error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// DeploymentError is the only error type the core returns.
type DeploymentError struct {
	Kind    ErrorKind
	Key     string
	Message string
	// Output is the failed subprocess's error output, kept verbatim.
	Output   []byte
	ExitCode int
	Err      error
}

func (e *DeploymentError) Error() string {
	msg := e.Message
	if e.Key != "" {
		msg = fmt.Sprintf("%s: %s", e.Key, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *DeploymentError) Unwrap() error {
	return e.Err
}

func NewConfigurationError(key, message string) *DeploymentError {
	return &DeploymentError{
		Kind:    ConfigurationError,
		Key:     key,
		Message: message,
	}
}

// NewDecodeError names the offending key so the pipeline owner can fix it.
func NewDecodeError(source Source, key string, err error) *DeploymentError {
	return &DeploymentError{
		Kind:    DecodeError,
		Key:     key,
		Message: fmt.Sprintf("misconfigured %s, please correct and re-run", source),
		Err:     err,
	}
}

func NewExecutionError(output []byte, exitCode int, err error) *DeploymentError {
	return &DeploymentError{
		Kind:     ExecutionError,
		Message:  "helm upgrade failed",
		Output:   output,
		ExitCode: exitCode,
		Err:      err,
	}
}

// IsKind reports whether err is or wraps a DeploymentError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var deploymentErr *DeploymentError
	if errors.As(err, &deploymentErr) {
		return deploymentErr.Kind == kind
	}
	return false
}

// ExitCode returns the process status for err: the subprocess's own status
// for execution failures, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var deploymentErr *DeploymentError
	if errors.As(err, &deploymentErr) && deploymentErr.Kind == ExecutionError && deploymentErr.ExitCode > 0 {
		return deploymentErr.ExitCode
	}
	return 1
}
