package kindle

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBlocks_DocumentOrder(t *testing.T) {
	input := `<html><body>
<div class="bookTitle">Deep Work</div>
<div class="authors">Cal Newport</div>
<div class="sectionHeading">Chapter 1</div>
<div class="noteHeading">Highlight (<span class="highlight_yellow">yellow</span>) -  Location 100</div>
<div class="noteText">Focus is valuable.</div>
</body></html>`

	got, err := ExtractBlocks(strings.NewReader(input))
	require.NoError(t, err)

	kinds := make([]BlockKind, len(got))
	for i, b := range got {
		kinds[i] = b.Kind
	}
	assert.Equal(t, []BlockKind{
		KindBookTitle,
		KindAuthors,
		KindSectionHeading,
		KindNoteHeading,
		KindOther, // the color span inside the heading
		KindNoteText,
	}, kinds)
	assert.Equal(t, "highlight_yellow", got[4].Class)
	assert.Equal(t, "Highlight (yellow) -  Location 100", got[3].Text)
}

func TestExtractBlocks_FirstClassToken(t *testing.T) {
	input := `<div class="noteText extra">text</div><div class="extra noteText">other</div><div class="">empty</div>`

	got, err := ExtractBlocks(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, KindNoteText, got[0].Kind)
	assert.Equal(t, KindOther, got[1].Kind)
}

func TestExtractBlocks_MissingText(t *testing.T) {
	input := `<div class="bookTitle">   </div><div class="authors">Someone</div>`

	got, err := ExtractBlocks(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].HasText)
	assert.True(t, got[1].HasText)
}

func TestExtractBlocks_NoNotebookBlocks(t *testing.T) {
	_, err := ExtractBlocks(strings.NewReader(`<html><body><p class="intro">Hello</p></body></html>`))
	assert.True(t, errors.Is(err, ErrNoBlocks))
}

func TestClassifyClass(t *testing.T) {
	assert.Equal(t, KindBookTitle, ClassifyClass("bookTitle"))
	assert.Equal(t, KindAuthors, ClassifyClass("authors"))
	assert.Equal(t, KindSectionHeading, ClassifyClass("sectionHeading"))
	assert.Equal(t, KindNoteHeading, ClassifyClass("noteHeading"))
	assert.Equal(t, KindNoteText, ClassifyClass("noteText"))
	assert.Equal(t, KindOther, ClassifyClass("notetext"))
	assert.Equal(t, KindOther, ClassifyClass("bodyContainer"))
}

func TestParser_Parse_Notebook(t *testing.T) {
	f, err := os.Open("testdata/notebook.html")
	require.NoError(t, err)
	defer f.Close()

	var logs bytes.Buffer
	parser := NewParser(DefaultOptions())
	parser.Logger = log.New(&logs, "", 0)

	res, err := parser.Parse(f)
	require.NoError(t, err)

	book := res.Book
	assert.Equal(t, "Inspired: How to Create Tech Products Customers Love", book.Title)
	assert.Equal(t, "Cagan, Marty", book.Author)
	require.Len(t, book.Chapters, 2)

	partOne := book.Chapters[0]
	assert.Equal(t, "Part I: Lessons from Successful Companies", partOne.Title)
	require.Len(t, partOne.Annotations, 3)

	first := partOne.Annotations[0]
	assert.Equal(t, 180, first.Location)
	assert.Equal(t, "Product management is a strange role.", first.HighlightedText)
	assert.Equal(t, "Strange roles are for strange people!", first.NoteText)
	assert.Equal(t, "Highlight (yellow) -  Location 180", first.SourceLabel)

	// The heading swallowed by the malformed noteText is dropped from the
	// text but still opens its own annotation.
	second := partOne.Annotations[1]
	assert.Equal(t, 203, second.Location)
	assert.Equal(t, "The goal is to discover a product that is valuable, usable and feasible.", second.HighlightedText)

	third := partOne.Annotations[2]
	assert.Equal(t, 240, third.Location)
	assert.Equal(t, "Fall in love with the problem, not the solution.", third.HighlightedText)

	partTwo := book.Chapters[1]
	require.Len(t, partTwo.Annotations, 1)
	assert.Equal(t, 512, partTwo.Annotations[0].Location)
	assert.Equal(t, "Teams are empowered.", partTwo.Annotations[0].HighlightedText)
	assert.Equal(t, "Note drift: location differs from the highlight.", partTwo.Annotations[0].NoteText)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, WarnInvalidHeading, res.Warnings[0].Reason)
	assert.Contains(t, logs.String(), "WARNING: ")
	assert.Contains(t, logs.String(), "Location unknown")
}

func TestParser_Parse_Unparseable(t *testing.T) {
	parser := NewParser(DefaultOptions())
	_, err := parser.Parse(strings.NewReader("just some text, no markup"))
	assert.ErrorIs(t, err, ErrNoBlocks)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParser_Parse_ReadError(t *testing.T) {
	parser := NewParser(DefaultOptions())
	_, err := parser.Parse(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}
