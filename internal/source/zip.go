package source

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// csvEntry couples the open CSV stream with the archive it came from so a
// single Close releases both.
type csvEntry struct {
	io.ReadCloser
	archive *zip.ReadCloser
}

func (e *csvEntry) Close() error {
	err := e.ReadCloser.Close()
	if cerr := e.archive.Close(); err == nil {
		err = cerr
	}
	return err
}

// OpenArchiveCSV opens the first CSV entry inside a downloaded ZIP archive.
// Every upstream archive carries exactly one data CSV, sometimes nested in
// a directory.
func OpenArchiveCSV(path string) (io.ReadCloser, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}

	for _, f := range archive.File {
		if !strings.HasSuffix(strings.ToLower(f.Name), ".csv") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			archive.Close()
			return nil, fmt.Errorf("failed to open %s in %s: %w", f.Name, path, err)
		}
		return &csvEntry{ReadCloser: rc, archive: archive}, nil
	}

	archive.Close()
	return nil, fmt.Errorf("no CSV entry in archive %s", path)
}
