// Package fs reads local files as document sources.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/soup"
)

// ReadFile reads the whole file at path into memory.
// Returns ENOTFOUND if the file does not exist and EINVALID for directories.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, soup.Errorf(soup.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, soup.Errorf(soup.EINVALID, "%q is a directory", path)
	}

	return os.ReadFile(path)
}
