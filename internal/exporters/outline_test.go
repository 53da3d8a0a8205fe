package exporters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/mrlokans/kindlenotes/internal/entities"
)

func deepWork() *entities.Book {
	book := &entities.Book{Title: "Deep Work", Author: "Cal Newport"}
	chapter := book.AddChapter("Chapter 1")
	a := chapter.Insert(100, "Highlight (yellow) -  Location 100")
	a.HighlightedText = "Focus is valuable."
	a.NoteText = "Remember this."
	return book
}

func sampleBook() *entities.Book {
	book := &entities.Book{Title: "Inspired", Author: "Marty Cagan"}

	one := book.AddChapter("Part I")
	a := one.Insert(180, "Highlight (yellow) -  Location 180")
	a.HighlightedText = "Product management is a strange role."
	a.NoteText = "Strange roles are for strange people!"
	b := one.Insert(203, "Highlight (blue) -  Location 203")
	b.HighlightedText = "Discover a valuable product."

	two := book.AddChapter("Part II")
	c := two.Insert(512, "Highlight (pink) -  Location 512")
	c.HighlightedText = "Teams are empowered."

	return book
}

func TestRenderOutline(t *testing.T) {
	t.Run("deep work without locations", func(t *testing.T) {
		expected := "- Meta:\n" +
			"  - title: Deep Work\n" +
			"  - author: Cal Newport\n" +
			"  - tags: #Books\n" +
			"- # Raw Highlights & Notes:\n" +
			"  - ## Chapter 1\n" +
			"    - Focus is valuable.\n" +
			"      - **Remember this.**\n"

		assert.Equal(t, expected, RenderOutline(deepWork(), OutlineOptions{ShowLocation: false}))
	})

	t.Run("with locations", func(t *testing.T) {
		expected := "- Meta:\n" +
			"  - title: Inspired\n" +
			"  - author: Marty Cagan\n" +
			"  - tags: #Books\n" +
			"- # Raw Highlights & Notes:\n" +
			"  - ## Part I\n" +
			"    - Product management is a strange role.\n" +
			"      - **Strange roles are for strange people!**\n" +
			"      - Highlight (yellow) -  Location 180\n" +
			"    - Discover a valuable product.\n" +
			"      - Highlight (blue) -  Location 203\n" +
			"  - ## Part II\n" +
			"    - Teams are empowered.\n" +
			"      - Highlight (pink) -  Location 512\n"

		assert.Equal(t, expected, RenderOutline(sampleBook(), DefaultOutlineOptions()))
	})

	t.Run("empty book keeps the frame", func(t *testing.T) {
		expected := "- Meta:\n" +
			"  - title: \n" +
			"  - author: \n" +
			"  - tags: #Books\n" +
			"- # Raw Highlights & Notes:\n"

		assert.Equal(t, expected, RenderOutline(&entities.Book{}, DefaultOutlineOptions()))
	})

	t.Run("annotation with failed text extraction", func(t *testing.T) {
		book := &entities.Book{Title: "T", Author: "A"}
		book.AddChapter("C").Insert(1, "Highlight -  Location 1")

		out := RenderOutline(book, OutlineOptions{})
		assert.Contains(t, out, "  - ## C\n    - \n")
	})
}

func TestRenderOutline_Idempotent(t *testing.T) {
	book := sampleBook()
	first := RenderOutline(book, DefaultOutlineOptions())
	second := RenderOutline(book, DefaultOutlineOptions())
	assert.Equal(t, first, second)
}

func TestRenderOutline_ShowLocationOnlyRemovesLabels(t *testing.T) {
	book := sampleBook()
	with := strings.Split(RenderOutline(book, OutlineOptions{ShowLocation: true}), "\n")
	without := strings.Split(RenderOutline(book, OutlineOptions{ShowLocation: false}), "\n")

	var filtered []string
	for _, line := range with {
		if strings.Contains(line, "Location ") {
			continue
		}
		filtered = append(filtered, line)
	}

	assert.Equal(t, filtered, without)
	assert.Len(t, with, len(without)+book.AnnotationCount())
}

func TestRenderOutline_NestedListStructure(t *testing.T) {
	src := []byte(RenderOutline(sampleBook(), DefaultOutlineOptions()))
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	require.Equal(t, 1, doc.ChildCount(), "outline is one top-level list")
	list, ok := doc.FirstChild().(*ast.List)
	require.True(t, ok)
	assert.Equal(t, 2, list.ChildCount(), "Meta and Raw Highlights & Notes")

	maxDepth := 0
	var walk func(n ast.Node, depth int)
	walk = func(n ast.Node, depth int) {
		if _, isList := n.(*ast.List); isList {
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c, depth)
		}
	}
	walk(doc, 0)
	assert.Equal(t, 4, maxDepth, "book > chapter > highlight > note/location")
}

func TestRenderOutlineHTML(t *testing.T) {
	html, err := RenderOutlineHTML(deepWork(), OutlineOptions{})
	require.NoError(t, err)

	assert.Contains(t, html, "<ul>")
	assert.Contains(t, html, "<strong>Remember this.</strong>")
	assert.Contains(t, html, "Focus is valuable.")
}
