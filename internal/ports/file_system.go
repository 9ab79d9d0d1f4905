package ports

type FileSystem interface {
	// FileExists reports whether path names an existing file. A leading ~ is
	// expanded to the user's home directory.
	FileExists(path string) (bool, error)
}
