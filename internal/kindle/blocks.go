package kindle

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BlockKind is the CSS class Kindle's "Export Notebook" uses to label a
// content block.
type BlockKind string

const (
	KindBookTitle      BlockKind = "bookTitle"
	KindAuthors        BlockKind = "authors"
	KindSectionHeading BlockKind = "sectionHeading"
	KindNoteHeading    BlockKind = "noteHeading"
	KindNoteText       BlockKind = "noteText"
	KindOther          BlockKind = "other"
)

// ErrNoBlocks is returned when a document contains none of the notebook
// block classes. Such a document is treated as not tokenizable and fails the
// conversion instead of producing an empty outline skeleton.
var ErrNoBlocks = errors.New("no notebook blocks found")

// Block is one labeled unit of extracted content, in document order.
type Block struct {
	Kind  BlockKind
	Class string // first class token as found in the markup
	Text  string // visible text with tags stripped, not yet normalized
	// HasText is false when the element had no extractable text.
	HasText bool
}

// NewBlock classifies class and wraps text into a Block.
func NewBlock(class, text string) Block {
	return Block{
		Kind:    ClassifyClass(class),
		Class:   class,
		Text:    text,
		HasText: NormalizeText(text) != "",
	}
}

// ClassifyClass maps a class token to its BlockKind.
func ClassifyClass(class string) BlockKind {
	switch kind := BlockKind(class); kind {
	case KindBookTitle, KindAuthors, KindSectionHeading, KindNoteHeading, KindNoteText:
		return kind
	default:
		return KindOther
	}
}

// ExtractBlocks parses an exported notebook and returns every element that
// carries a class attribute, in document order. Elements are visited
// pre-order, so a heading swallowed by a malformed noteText div still shows
// up as its own block right after it.
func ExtractBlocks(r io.Reader) ([]Block, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse notebook HTML: %w", err)
	}

	var blocks []Block
	recognized := 0
	doc.Find("[class]").Each(func(i int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		tokens := strings.Fields(class)
		if len(tokens) == 0 {
			return
		}
		block := NewBlock(tokens[0], s.Text())
		if block.Kind != KindOther {
			recognized++
		}
		blocks = append(blocks, block)
	})

	if recognized == 0 {
		return nil, ErrNoBlocks
	}
	return blocks, nil
}
