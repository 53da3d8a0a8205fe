package kindle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NoteKind is the first word of a noteHeading block.
type NoteKind string

const (
	NoteKindHighlight NoteKind = "Highlight"
	NoteKindNote      NoteKind = "Note"
)

var (
	ErrEmptyHeading    = errors.New("empty note heading")
	ErrInvalidLocation = errors.New("invalid location")
)

// NoteHeading is a parsed noteHeading line such as
// "Highlight (yellow) -  Location 180" or "Note -  Location 180".
type NoteHeading struct {
	Kind     NoteKind
	Location int
	Label    string // the whole heading line, used as the annotation source
}

// ParseNoteHeading reads the kind from the first token and the location from
// the last token of a heading line.
func ParseNoteHeading(text string) (NoteHeading, error) {
	label := singleLine(text)
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return NoteHeading{}, ErrEmptyHeading
	}

	last := fields[len(fields)-1]
	location, err := strconv.Atoi(last)
	if err != nil {
		return NoteHeading{}, fmt.Errorf("%w %q", ErrInvalidLocation, last)
	}

	// Some exports drop the space in "Highlight(yellow)".
	kind := fields[0]
	if idx := strings.IndexByte(kind, '('); idx > 0 {
		kind = kind[:idx]
	}

	return NoteHeading{
		Kind:     NoteKind(kind),
		Location: location,
		Label:    label,
	}, nil
}
