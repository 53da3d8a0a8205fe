package kindle

import (
	"fmt"
	"strings"

	"github.com/mrlokans/kindlenotes/internal/entities"
)

// TitlePolicy decides which of several bookTitle/authors blocks is kept.
type TitlePolicy string

const (
	TitleLastWins  TitlePolicy = "last"
	TitleFirstWins TitlePolicy = "first"
)

// ParseTitlePolicy accepts "last" or "first" (case-insensitive). Empty
// input yields TitleLastWins.
func ParseTitlePolicy(s string) (TitlePolicy, error) {
	switch p := TitlePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return TitleLastWins, nil
	case TitleLastWins, TitleFirstWins:
		return p, nil
	default:
		return "", fmt.Errorf("unknown title policy %q (want %q or %q)", s, TitleLastWins, TitleFirstWins)
	}
}

type Options struct {
	TitlePolicy TitlePolicy
}

func DefaultOptions() Options {
	return Options{TitlePolicy: TitleLastWins}
}

// WarningReason classifies a recoverable, block-level problem.
type WarningReason string

const (
	WarnNoChapter        WarningReason = "no_chapter"
	WarnInvalidHeading   WarningReason = "invalid_heading"
	WarnNoPriorHighlight WarningReason = "no_prior_highlight"
	WarnUnknownKind      WarningReason = "unknown_kind"
)

// Warning describes a block whose contribution was dropped.
type Warning struct {
	Index   int           `json:"index"`
	Kind    BlockKind     `json:"kind"`
	Reason  WarningReason `json:"reason"`
	Message string        `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("block %d (%s): %s", w.Index, w.Kind, w.Message)
}

// Result is the book reconstructed from a block sequence plus everything that
// had to be skipped along the way.
type Result struct {
	Book     *entities.Book
	Warnings []Warning
}

func (r *Result) warn(index int, kind BlockKind, reason WarningReason, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{
		Index:   index,
		Kind:    kind,
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	})
}

// annotationRef addresses an annotation by slice indexes, which stay valid
// while chapters and annotations are appended.
type annotationRef struct {
	chapter int
	index   int
}

// buildState is the rolling state carried from one block to the next.
type buildState struct {
	chapter     int // -1 until the first sectionHeading
	pending     *annotationRef
	pendingKind NoteKind
	titleSet    bool
	authorSet   bool
}

func initialState() buildState {
	return buildState{chapter: -1}
}

// Builder turns a flat block sequence into a Book.
type Builder struct {
	opts Options
}

func NewBuilder(opts Options) *Builder {
	if opts.TitlePolicy == "" {
		opts.TitlePolicy = TitleLastWins
	}
	return &Builder{opts: opts}
}

// Build processes blocks in order. It never fails: malformed blocks are
// dropped and reported in Result.Warnings.
func (b *Builder) Build(blocks []Block) *Result {
	res := &Result{Book: &entities.Book{}}
	state := initialState()
	for i, block := range blocks {
		state = b.step(res, state, i, block)
	}
	return res
}

func (b *Builder) step(res *Result, state buildState, index int, block Block) buildState {
	switch block.Kind {
	case KindBookTitle:
		if block.HasText && b.accepts(state.titleSet) {
			res.Book.Title = singleLine(block.Text)
			state.titleSet = true
		}
	case KindAuthors:
		if block.HasText && b.accepts(state.authorSet) {
			res.Book.Author = singleLine(block.Text)
			state.authorSet = true
		}
	case KindSectionHeading:
		res.Book.AddChapter(singleLine(block.Text))
		state.chapter = len(res.Book.Chapters) - 1
		state.pending = nil
	case KindNoteHeading:
		return b.onNoteHeading(res, state, index, block)
	case KindNoteText:
		b.onNoteText(res, state, block)
	}
	return state
}

func (b *Builder) accepts(alreadySet bool) bool {
	return b.opts.TitlePolicy != TitleFirstWins || !alreadySet
}

func (b *Builder) onNoteHeading(res *Result, state buildState, index int, block Block) buildState {
	state.pending = nil

	heading, err := ParseNoteHeading(block.Text)
	if err != nil {
		res.warn(index, block.Kind, WarnInvalidHeading,
			"couldn't figure out location from %q: %v", NormalizeText(block.Text), err)
		return state
	}
	state.pendingKind = heading.Kind

	if state.chapter < 0 {
		res.warn(index, block.Kind, WarnNoChapter,
			"%q appears before any section heading, dropping it", heading.Label)
		return state
	}
	chapter := &res.Book.Chapters[state.chapter]

	switch heading.Kind {
	case NoteKindNote:
		// The note belongs to the highlight right before it, even when the
		// export reports a slightly different location for it.
		if chapter.Len() == 0 {
			res.warn(index, block.Kind, WarnNoPriorHighlight,
				"%q has no highlight to attach to in chapter %q", heading.Label, chapter.Title)
			return state
		}
		state.pending = &annotationRef{chapter: state.chapter, index: chapter.Len() - 1}
	case NoteKindHighlight:
		chapter.Insert(heading.Location, heading.Label)
		idx, _ := chapter.IndexOf(heading.Location)
		state.pending = &annotationRef{chapter: state.chapter, index: idx}
	default:
		res.warn(index, block.Kind, WarnUnknownKind,
			"unsupported annotation kind %q in %q", heading.Kind, heading.Label)
	}
	return state
}

func (b *Builder) onNoteText(res *Result, state buildState, block Block) {
	if state.pending == nil {
		return
	}
	annotation := &res.Book.Chapters[state.pending.chapter].Annotations[state.pending.index]
	text := firstLine(block.Text)

	switch state.pendingKind {
	case NoteKindHighlight:
		annotation.HighlightedText = text
	case NoteKindNote:
		annotation.NoteText = text
	}
}
