// Package ops provides offline data-directory snapshots for the ops
// CLI. The app owns exactly two state files; snapshots carry only
// those.
package ops

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// stateFiles are the blobs the app persists. Anything else in the
// data dir is not ours to snapshot.
var stateFiles = []string{"tasks.json", "prefs.json"}

// DefaultArchiveName returns the snapshot filename for a backup taken
// now.
func DefaultArchiveName(now time.Time) string {
	return "aether-" + now.UTC().Format("20060102T150405Z") + ".tar.gz"
}

// Snapshot writes a tar.gz of the app's state files to archivePath.
// Missing state files are skipped; an empty data dir yields an empty
// archive.
func Snapshot(dataDir, archivePath string) error {
	dataDir = filepath.Clean(strings.TrimSpace(dataDir))
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	if dataDir == "" || archivePath == "" {
		return fmt.Errorf("dataDir and archivePath are required")
	}
	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	tw := tar.NewWriter(gz)
	defer tw.Close()

	for _, name := range stateFiles {
		path := filepath.Join(dataDir, name)
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = name
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		if _, err := io.Copy(tw, src); err != nil {
			_ = src.Close()
			return err
		}
		if err := src.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Restore extracts a snapshot into the data dir, overwriting the state
// files it contains. Unknown archive entries are rejected.
func Restore(archivePath, dataDir string) error {
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	dataDir = filepath.Clean(strings.TrimSpace(dataDir))
	if archivePath == "" || dataDir == "" {
		return fmt.Errorf("archivePath and dataDir are required")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if !isStateFile(hdr.Name) {
			return fmt.Errorf("unexpected archive entry: %s", hdr.Name)
		}

		dst, err := os.OpenFile(filepath.Join(dataDir, hdr.Name),
			os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		if _, err := io.Copy(dst, tr); err != nil {
			_ = dst.Close()
			return err
		}
		if err := dst.Close(); err != nil {
			return err
		}
	}
	return nil
}

func isStateFile(name string) bool {
	for _, s := range stateFiles {
		if name == s {
			return true
		}
	}
	return false
}
