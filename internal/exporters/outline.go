package exporters

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/mrlokans/kindlenotes/internal/entities"
)

const indentStep = "  "

// OutlineOptions controls what the outline includes.
type OutlineOptions struct {
	// ShowLocation appends the source label (e.g. "Highlight (yellow) - Location 180")
	// under every annotation.
	ShowLocation bool
}

func DefaultOutlineOptions() OutlineOptions {
	return OutlineOptions{ShowLocation: true}
}

// RenderOutline serializes a book into a nested Markdown bullet list.
func RenderOutline(book *entities.Book, opts OutlineOptions) string {
	var builder strings.Builder

	bullet := func(depth int, format string, args ...any) {
		builder.WriteString(strings.Repeat(indentStep, depth))
		builder.WriteString("- ")
		fmt.Fprintf(&builder, format, args...)
		builder.WriteString("\n")
	}

	bullet(0, "Meta:")
	bullet(1, "title: %s", book.Title)
	bullet(1, "author: %s", book.Author)
	bullet(1, "tags: #Books")

	bullet(0, "# Raw Highlights & Notes:")
	for i := range book.Chapters {
		chapter := &book.Chapters[i]
		bullet(1, "## %s", chapter.Title)

		for j := range chapter.Annotations {
			annotation := &chapter.Annotations[j]
			bullet(2, "%s", annotation.HighlightedText)
			if annotation.HasNote() {
				bullet(3, "**%s**", annotation.NoteText)
			}
			if opts.ShowLocation {
				bullet(3, "%s", annotation.SourceLabel)
			}
		}
	}

	return builder.String()
}

// RenderOutlineHTML renders the outline and converts it to HTML.
func RenderOutlineHTML(book *entities.Book, opts OutlineOptions) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(RenderOutline(book, opts)), &buf); err != nil {
		return "", fmt.Errorf("failed to convert outline to HTML: %w", err)
	}
	return buf.String(), nil
}
