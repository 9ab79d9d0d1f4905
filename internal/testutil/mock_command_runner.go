package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockCommandRunner provides a testify mock for ports.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(name string, args ...string) ([]byte, error) {
	callArgs := m.Called(name, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).([]byte), callArgs.Error(1)
}

func (m *MockCommandRunner) RunShell(command string) ([]byte, []byte, error) {
	callArgs := m.Called(command)
	var stdout, stderr []byte
	if callArgs.Get(0) != nil {
		stdout = callArgs.Get(0).([]byte)
	}
	if callArgs.Get(1) != nil {
		stderr = callArgs.Get(1).([]byte)
	}
	return stdout, stderr, callArgs.Error(2)
}
