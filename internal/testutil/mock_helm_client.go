package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockHelmClient provides a testify mock for ports.HelmClient
type MockHelmClient struct {
	mock.Mock
}

func (m *MockHelmClient) Upgrade(command string, dryRun bool) ([]byte, error) {
	args := m.Called(command, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockHelmClient) Version(binary string) (string, error) {
	args := m.Called(binary)
	return args.String(0), args.Error(1)
}
