// Package fs writes rendered articles as Markdown files.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scinews"
)

// maxSlugLen bounds the slug portion of generated filenames.
const maxSlugLen = 80

// Filename derives a stable .md filename from an article URL. The last
// path segment becomes the slug; an overly long slug is truncated and
// suffixed with an xxhash of the full URL so distinct articles cannot
// collide on the truncated prefix.
// Example: https://www.science.org/content/article/ancient-microbes → ancient-microbes.md
func Filename(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", scinews.Errorf(scinews.EINVALID, "invalid article URL %q: %v", rawURL, err)
	}

	slug := path.Base(u.Path)
	if slug == "." || slug == "/" || slug == "" {
		slug = "index"
	}

	if len(slug) > maxSlugLen {
		h := xxhash.Sum64String(rawURL)
		slug = fmt.Sprintf("%s-%x", slug[:maxSlugLen], h)
	}

	return slug + ".md", nil
}

// FormatArticle formats a rendered article with YAML frontmatter.
func FormatArticle(summary *scinews.Summary, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(summary.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(summary.Title)
	b.WriteString("\ndate: ")
	b.WriteString(summary.Date.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}

// Ensure Writer implements scinews.ArticleWriter at compile time.
var _ scinews.ArticleWriter = (*Writer)(nil)

// Writer writes articles as Markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArticle writes one rendered article to disk.
func (w *Writer) WriteArticle(ctx context.Context, summary *scinews.Summary, markdown string) error {
	if err := summary.Validate(); err != nil {
		return err
	}

	name, err := Filename(summary.URL)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	content := FormatArticle(summary, markdown)
	return os.WriteFile(filepath.Join(w.baseDir, name), []byte(content), 0644)
}
