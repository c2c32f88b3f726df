package artifacts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

const timestampLayout = "20060102T150405Z"

// Source is anything that can report its rendered HTML, typically the page
// handle of the failed scrape.
type Source interface {
	HTML() (string, error)
}

// Uploader mirrors written artifacts to remote storage
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

// Recorder writes debug artifacts for a failed scrape
type Recorder struct {
	Dir      string
	Now      func() time.Time
	Uploader Uploader
}

// EnsureDir creates the artifact directory if it does not exist
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifacts dir %s: %w", dir, err)
	}
	return nil
}

// Capture writes {label}_{ts}_page.html with the page's rendered content and
// {label}_{ts}_error.txt with the formatted error and the capture-site
// stack. A failed HTML read leaves the page file empty. Only write failures
// are returned.
func (r *Recorder) Capture(ctx context.Context, label string, src Source, cause error) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	prefix := fmt.Sprintf("%s_%s", filepath.Base(label), now().UTC().Format(timestampLayout))

	files := []struct {
		name        string
		body        []byte
		contentType string
	}{
		{prefix + "_page.html", []byte(readHTML(src)), "text/html; charset=utf-8"},
		{prefix + "_error.txt", formatError(cause), "text/plain; charset=utf-8"},
	}

	var errs []error
	for _, f := range files {
		path := filepath.Join(r.Dir, f.name)
		if err := os.WriteFile(path, f.body, 0o644); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", path, err))
			continue
		}
		log.WithField("file", path).Info("Debug artifact written")

		if r.Uploader != nil {
			key := "artifacts/" + f.name
			if err := r.Uploader.Upload(ctx, key, f.body, f.contentType); err != nil {
				log.WithError(err).WithField("key", key).Warn("Failed to mirror debug artifact")
			}
		}
	}
	return errors.Join(errs...)
}

func readHTML(src Source) (html string) {
	if src == nil {
		return ""
	}
	defer func() {
		// a panicking read counts as a failed read
		if recover() != nil {
			html = ""
		}
	}()
	html, err := src.HTML()
	if err != nil {
		return ""
	}
	return html
}

func formatError(err error) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%+v\n", err)
	for u := errors.Unwrap(err); u != nil; u = errors.Unwrap(u) {
		fmt.Fprintf(&b, "caused by: %v\n", u)
	}
	// Go errors record no origin trace; this is where the failure was caught
	b.WriteString("\nstack at capture:\n")
	b.Write(debug.Stack())
	return b.Bytes()
}
