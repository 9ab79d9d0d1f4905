package ports

// CommandRunner executes external processes and returns their standard output.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
	// RunShell hands command to the system shell. Standard error is returned
	// in full whether or not the command succeeds.
	RunShell(command string) (stdout []byte, stderr []byte, err error)
}
