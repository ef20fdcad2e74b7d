// Package docs splices rendered diagram blocks into managed document
// sections delimited by sentinel marker comments.
package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/aretw0/studiograph/internal/adapters/file"
	"github.com/aretw0/studiograph/pkg/domain"
)

// Markers returns the sentinel pair delimiting the managed section for tag.
func Markers(tag string) (start, end string) {
	return fmt.Sprintf("<!-- %s-start -->", tag), fmt.Sprintf("<!-- %s-end -->", tag)
}

// ReplaceSection swaps everything between the tag's start and end markers
// (markers and surrounding whitespace included) for the markers wrapping
// content on its own lines. A document without the marker pair is returned
// unchanged.
func ReplaceSection(doc, content, tag string) string {
	start, end := Markers(tag)
	pattern := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(start) + `\s*(.*?)\s*` + regexp.QuoteMeta(end))
	return pattern.ReplaceAllLiteralString(doc, start+"\n"+content+"\n"+end)
}

// UpdateFile rewrites the managed section of the document at path. A
// missing document yields ErrDocumentNotFound so the caller can report it
// without aborting the process.
func UpdateFile(path, content, tag string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, path)
		}
		return fmt.Errorf("reading document %s: %w", path, err)
	}

	updated := ReplaceSection(string(data), content, tag)
	if err := file.WriteAtomic(path, []byte(updated)); err != nil {
		return fmt.Errorf("updating document %s: %w", path, err)
	}
	return nil
}
