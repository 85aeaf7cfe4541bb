package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"syscall"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/toil/internal/messages"
)

// System abstracts the filesystem and $PATH lookups used by environments and the detector.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	LookPath(file string) (string, error)
	UserHomeDir() (string, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes data to the named file, creating it if necessary.
func (RealSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// LookPath searches $PATH for an executable.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// UserHomeDir returns the current user's home directory.
func (RealSystem) UserHomeDir() (string, error) {
	return homedir.Dir()
}

// statKind reports whether path exists and whether it is a directory.
// Missing paths, including paths below a regular file, are not an error.
func statKind(sys System, path string) (exists bool, dir bool, err error) {
	info, err := sys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return false, false, nil
		}
		return false, false, fmt.Errorf(messages.EnvCheckPathFmt, path, err)
	}
	return true, info.IsDir(), nil
}

func pathExists(sys System, path string) (bool, error) {
	exists, _, err := statKind(sys, path)
	return exists, err
}

func isDir(sys System, path string) (bool, error) {
	_, dir, err := statKind(sys, path)
	return dir, err
}
