package entities

import "time"

// Annotation is one highlighted passage, optionally paired with a note.
// Location is the Kindle position marker and identifies the annotation
// within its chapter.
type Annotation struct {
	ID              uint   `gorm:"primaryKey" json:"-"`
	ChapterID       uint   `gorm:"index" json:"-"`
	Position        int    `json:"-"`
	Location        int    `gorm:"index" json:"location"`
	HighlightedText string `gorm:"type:text" json:"highlighted_text"`
	NoteText        string `gorm:"type:text" json:"note_text,omitempty"`
	SourceLabel     string `gorm:"size:256" json:"source_label"`
}

// HasNote reports whether a user note is attached to the highlight.
func (a *Annotation) HasNote() bool {
	return a.NoteText != ""
}

// Chapter groups annotations under one section heading. Annotations are kept
// in insertion order and are unique by location.
type Chapter struct {
	ID          uint         `gorm:"primaryKey" json:"-"`
	BookID      uint         `gorm:"index" json:"-"`
	Position    int          `json:"-"`
	Title       string       `gorm:"size:512" json:"title"`
	Annotations []Annotation `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"annotations"`

	byLocation map[int]int
}

// Insert adds an annotation for location unless one already exists, in which
// case the existing annotation is returned unchanged.
func (c *Chapter) Insert(location int, sourceLabel string) *Annotation {
	if existing, ok := c.Lookup(location); ok {
		return existing
	}
	if c.byLocation == nil {
		c.Reindex()
	}
	c.Annotations = append(c.Annotations, Annotation{
		Location:    location,
		SourceLabel: sourceLabel,
		Position:    len(c.Annotations),
	})
	c.byLocation[location] = len(c.Annotations) - 1
	return &c.Annotations[len(c.Annotations)-1]
}

// Lookup returns the annotation stored at location.
func (c *Chapter) Lookup(location int) (*Annotation, bool) {
	idx, ok := c.IndexOf(location)
	if !ok {
		return nil, false
	}
	return &c.Annotations[idx], true
}

// IndexOf returns the slice index of the annotation stored at location.
func (c *Chapter) IndexOf(location int) (int, bool) {
	if c.byLocation == nil {
		c.Reindex()
	}
	idx, ok := c.byLocation[location]
	return idx, ok
}

// Last returns the most recently inserted annotation, regardless of its
// location value.
func (c *Chapter) Last() (*Annotation, bool) {
	if len(c.Annotations) == 0 {
		return nil, false
	}
	return &c.Annotations[len(c.Annotations)-1], true
}

// Len returns the number of annotations in the chapter.
func (c *Chapter) Len() int {
	return len(c.Annotations)
}

// Reindex rebuilds the location lookup table from the annotation slice.
// Needed after Annotations was populated from outside Insert, e.g. by gorm.
// On duplicate locations the earliest annotation wins.
func (c *Chapter) Reindex() {
	c.byLocation = make(map[int]int, len(c.Annotations))
	for i, a := range c.Annotations {
		if _, seen := c.byLocation[a.Location]; !seen {
			c.byLocation[a.Location] = i
		}
	}
}

// Book is the root of a converted notebook.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id,omitempty"`
	Title     string    `gorm:"index;size:512" json:"title"`
	Author    string    `gorm:"index;size:256" json:"author"`
	Chapters  []Chapter `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"chapters"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// AddChapter appends a new empty chapter and returns it.
func (b *Book) AddChapter(title string) *Chapter {
	b.Chapters = append(b.Chapters, Chapter{
		Title:    title,
		Position: len(b.Chapters),
	})
	return &b.Chapters[len(b.Chapters)-1]
}

// CurrentChapter returns the chapter most recently added.
func (b *Book) CurrentChapter() (*Chapter, bool) {
	if len(b.Chapters) == 0 {
		return nil, false
	}
	return &b.Chapters[len(b.Chapters)-1], true
}

// AnnotationCount returns the number of annotations across all chapters.
func (b *Book) AnnotationCount() int {
	total := 0
	for i := range b.Chapters {
		total += b.Chapters[i].Len()
	}
	return total
}

func (Book) TableName() string {
	return "books"
}

func (Chapter) TableName() string {
	return "chapters"
}

func (Annotation) TableName() string {
	return "annotations"
}
