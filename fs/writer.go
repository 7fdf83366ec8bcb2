// Package fs provides file-based storage for extraction digests.
package fs

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/semanticgateway/pagelens"
)

// URLToPath converts a page URL to a relative markdown file path.
// Example: https://example.com/menu/dinner -> menu/dinner.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash becomes index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// FormatDigest formats an extraction result with YAML frontmatter.
func FormatDigest(result *pagelens.ExtractionResult, sourceURL string, extractedAt time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(sourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(result.Structured.Title)
	b.WriteString("\nextracted: ")
	b.WriteString(extractedAt.Format("2006-01-02"))
	b.WriteString(fmt.Sprintf("\ntokens: %d", result.TokensExtracted))
	b.WriteString("\n---\n\n")
	b.WriteString(result.Markdown)
	return b.String()
}

// Writer writes extraction digests as markdown files to a directory.
type Writer struct {
	baseDir string

	// now is overridable for tests.
	now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, now: time.Now}
}

// WriteDigest writes an extraction result to disk as a markdown file and
// returns the path it was written to.
func (w *Writer) WriteDigest(sourceURL string, result *pagelens.ExtractionResult) (string, error) {
	relPath, err := URLToPath(sourceURL)
	if err != nil {
		return "", pagelens.Errorf(pagelens.EINVALID, "invalid source URL %q: %v", sourceURL, err)
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	content := FormatDigest(result, sourceURL, w.now())
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
