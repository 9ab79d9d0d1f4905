package ports

// Environment provides read access to the process configuration: environment
// variables, overridden by command-line flags where one was given.
type Environment interface {
	GetString(key string) string
	// GetBool reports an error for a value that is set but is not a boolean.
	GetBool(key string) (bool, error)
}
