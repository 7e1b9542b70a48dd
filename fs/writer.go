// Package fs writes clips to the local file system.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webclip"
)

// Ensure Writer implements webclip.Sink at compile time.
var _ webclip.Sink = (*Writer)(nil)

// Writer saves each clip as <dir>/<title>.md.
//
// Files are replaced atomically. A file whose body already matches the
// clip is left untouched, so clipping the same page twice does not rewrite
// the file for a new clipped time alone.
type Writer struct {
	dir string
}

// NewWriter creates a new Writer that writes to dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Name returns "local".
func (w *Writer) Name() string {
	return "local"
}

// Path returns the file path a clip titled title is written to.
func (w *Writer) Path(title string) string {
	return filepath.Join(w.dir, webclip.Filename(title)+".md")
}

// Deliver writes result to disk.
func (w *Writer) Deliver(ctx context.Context, result *webclip.Result) error {
	if w.dir == "" {
		return webclip.Errorf(webclip.ECONFIG, "download directory is not set")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	path := w.Path(result.Title)
	if unchanged(path, result.BodyHash) {
		return nil
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	return writeAtomic(path, []byte(result.Markdown))
}

// unchanged reports whether the file at path holds a clip with the given
// body hash.
func unchanged(path, bodyHash string) bool {
	if bodyHash == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	_, body, ok := webclip.SplitMarkdown(string(data))
	if !ok {
		return false
	}
	return fmt.Sprintf("%x", xxhash.Sum64String(body)) == bodyHash
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".webclip-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Ensure Preview implements webclip.Sink at compile time.
var _ webclip.Sink = (*Preview)(nil)

// Preview writes clips to an io.Writer, such as standard output.
type Preview struct {
	w io.Writer
}

// NewPreview creates a new Preview writing to w.
func NewPreview(w io.Writer) *Preview {
	return &Preview{w: w}
}

// Name returns "preview".
func (p *Preview) Name() string {
	return "preview"
}

// Deliver writes the Markdown of result followed by a newline.
func (p *Preview) Deliver(_ context.Context, result *webclip.Result) error {
	if _, err := io.WriteString(p.w, result.Markdown); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}
