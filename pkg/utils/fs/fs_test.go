package fs_test

import (
	"testing"

	fsutil "github.com/kargakis/goaes/pkg/utils/fs"
)

func TestGetFs(t *testing.T) {
	for _, fsType := range []string{fsutil.OsType, fsutil.MemType} {
		fs, err := fsutil.GetFs(fsType)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", fsType, err)
		}
		if fs == nil {
			t.Errorf("%s: expected a filesystem", fsType)
		}
	}

	if _, err := fsutil.GetFs("tape"); err == nil {
		t.Error("expected an error for an unknown filesystem type")
	}
}
