// Package fs selects the afero filesystem backing the command-line
// tools. The in-memory type exists so the tools can be exercised in
// tests without touching the disk.
package fs

import (
	"fmt"

	"github.com/spf13/afero"
)

const (
	OsType  = "os"
	MemType = "mem"
)

var supportedTypes = []string{OsType, MemType}

func GetFs(fs string) (afero.Fs, error) {
	switch fs {
	case OsType:
		return afero.NewOsFs(), nil
	case MemType:
		return afero.NewMemMapFs(), nil
	}
	return nil, fmt.Errorf("unknown filesystem type provided: %s (supported types: %v)", fs, supportedTypes)
}
