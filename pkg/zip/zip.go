// Package zip packs in-memory files into a single archive.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"
)

// Entry is one file in an archive.
type Entry struct {
	Filename string
	Modified time.Time
	Data     []byte
}

// Archive writes entries in order and returns the archive bytes. Duplicate
// file names are rejected.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Filename == "" {
			return nil, fmt.Errorf("zip: empty file name")
		}
		if _, dup := seen[entry.Filename]; dup {
			return nil, fmt.Errorf("zip: duplicate file %s", entry.Filename)
		}
		seen[entry.Filename] = struct{}{}

		hdr := &zip.FileHeader{Name: entry.Filename, Method: zip.Deflate}
		if !entry.Modified.IsZero() {
			hdr.Modified = entry.Modified
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("zip: create %s: %w", entry.Filename, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("zip: write %s: %w", entry.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: close: %w", err)
	}
	return buf.Bytes(), nil
}
