package ports

// HelmClient defines the interface for invoking Helm.
type HelmClient interface {
	// Upgrade runs an assembled upgrade command line. Under dry run the command
	// is only logged and no output is returned.
	Upgrade(command string, dryRun bool) ([]byte, error)
	// Version returns the short version string of the given helm binary.
	Version(binary string) (string, error)
}
