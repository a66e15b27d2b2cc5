// Package fs provides file-based storage for extracted documents.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/htmltree"
)

// URLToPath converts a source URL to a relative file path.
// Example: https://example.com/docs/api/users → docs/api/users.json
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.json
	if path == "" || path == "/" {
		return "index.json", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.json in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.json", nil
	}

	// Otherwise append .json
	return path + ".json", nil
}

// Ensure Writer implements htmltree.DocumentWriter at compile time.
var _ htmltree.DocumentWriter = (*Writer)(nil)

// Writer writes documents as JSON files to a directory. Documents with
// a source URL keep their URL path structure; the rest are named by ID.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes a document to disk as a JSON file.
func (w *Writer) WriteDocument(ctx context.Context, doc *htmltree.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath := doc.ID + ".json"
	if doc.SourceURL != "" {
		p, err := URLToPath(doc.SourceURL)
		if err != nil {
			return err
		}
		relPath = p
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, encoded, 0644)
}
