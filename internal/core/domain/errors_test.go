package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeploymentError_ErrorIncludesKey(t *testing.T) {
	err := NewDecodeError(SourceSecrets, "DEPLOYMENT_TEAM_PROD_1", errors.New("unexpected end of JSON input"))

	assert.Equal(
		t,
		"decode error: DEPLOYMENT_TEAM_PROD_1: misconfigured secret, please correct and re-run: unexpected end of JSON input",
		err.Error(),
	)
}

func TestDeploymentError_Unwrap(t *testing.T) {
	cause := errors.New("exit status 2")
	err := NewExecutionError([]byte("Error: release failed"), 2, cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
		want bool
	}{
		{name: "nil error", err: nil, kind: ConfigurationError, want: false},
		{name: "matching kind", err: NewConfigurationError("NAME", "missing"), kind: ConfigurationError, want: true},
		{name: "other kind", err: NewConfigurationError("NAME", "missing"), kind: DecodeError, want: false},
		{
			name: "wrapped",
			err:  fmt.Errorf("failed to load: %w", NewDecodeError(SourceVariables, "X", errors.New("bad"))),
			kind: DecodeError,
			want: true,
		},
		{name: "plain error", err: errors.New("boom"), kind: ExecutionError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKind(tt.err, tt.kind))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, 1, ExitCode(NewConfigurationError("HELM_CHART_URL", "missing")))
	assert.Equal(t, 3, ExitCode(NewExecutionError(nil, 3, errors.New("exit status 3"))))
	assert.Equal(t, 1, ExitCode(NewExecutionError(nil, -1, errors.New("signal: killed"))))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "configuration error", ConfigurationError.String())
	assert.Equal(t, "decode error", DecodeError.String())
	assert.Equal(t, "execution error", ExecutionError.String())
	assert.Equal(t, "ErrorKind(9)", ErrorKind(9).String())
}
