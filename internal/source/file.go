// Package source provides routing-record inputs for routecycle: local files,
// standard input, and a MySQL table.
package source

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the path marker meaning "read standard input".
const Stdin = "-"

// Open opens the named input for reading. The Stdin marker yields standard
// input, which is not seekable; files report seekable true so callers can run
// a validation pre-pass and rewind. The caller owns the returned closer and
// must close it on every exit path.
func Open(path string) (io.ReadCloser, bool, error) {
	if path == Stdin {
		// NopCloser also hides os.Stdin's Seek method, which would fail on
		// pipes anyway.
		return io.NopCloser(os.Stdin), false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open input %q: %w", path, err)
	}
	return f, true, nil
}
