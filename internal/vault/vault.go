// Package vault provides read and write access to the note corpus on disk.
package vault

// Provider is the interface for vault file operations.
type Provider interface {
	// Root returns the absolute path of the vault directory.
	Root() string
	// List returns the vault-relative path of every .md file.
	List() ([]string, error)
	// Read returns the raw bytes of the file at path (relative to vault root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to vault root).
	Write(path string, content []byte) error
	// Abs resolves a vault-relative path to an absolute one, rejecting
	// paths that escape the vault.
	Abs(path string) (string, error)
}
