package testutil

import (
	"strconv"

	"github.com/stretchr/testify/mock"
)

// MockEnvironment provides a testify mock for ports.Environment
type MockEnvironment struct {
	mock.Mock
}

func (m *MockEnvironment) GetString(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func (m *MockEnvironment) GetBool(key string) (bool, error) {
	args := m.Called(key)
	return args.Bool(0), args.Error(1)
}

// MapEnvironment is a fixed ports.Environment backed by a map.
type MapEnvironment map[string]string

func (e MapEnvironment) GetString(key string) string {
	return e[key]
}

func (e MapEnvironment) GetBool(key string) (bool, error) {
	if e[key] == "" {
		return false, nil
	}
	return strconv.ParseBool(e[key])
}
