package platform

import (
	"os"
	"runtime"
)

// File modes for generated projects.
const (
	DirPerm    os.FileMode = 0755
	FilePerm   os.FileMode = 0644
	SecretPerm os.FileMode = 0600
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// WriteSecretFile writes data readable by the owner only. The mode is applied
// explicitly so an existing file or a permissive umask cannot widen it.
// Filesystem errors are returned unwrapped.
func WriteSecretFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, SecretPerm); err != nil {
		return err
	}
	return Chmod(path, SecretPerm)
}
