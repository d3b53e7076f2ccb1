package ports

// FileSystem is the storage seen by the replay: scripts and images are read
// from it, the animation and debug artifacts are written to it.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces path with data, creating parent directories. Readers
	// never observe a partially written file.
	WriteFile(path string, data []byte) error

	MkdirAll(path string) error

	Exists(path string) (bool, error)

	// ListFiles returns the sorted names of the regular files in dir. When exts
	// is non-empty only names whose extension matches one of them, ignoring
	// case, are returned. Extensions include the leading dot.
	ListFiles(dir string, exts ...string) ([]string, error)
}
