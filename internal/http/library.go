package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/kindlenotes/internal/exporters"
)

type LibraryController struct {
	store        BookReader
	showLocation bool
}

func NewLibraryController(store BookReader, showLocation bool) *LibraryController {
	return &LibraryController{
		store:        store,
		showLocation: showLocation,
	}
}

// BookSummary is a stored book without its annotations.
type BookSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Chapters    int    `json:"chapters"`
	Annotations int    `json:"annotations"`
	UpdatedAt   string `json:"updated_at"`
}

func (c *LibraryController) List(ctx *gin.Context) {
	books, err := c.store.GetAllBooks()
	if err != nil {
		respondInternalError(ctx, err, "list books")
		return
	}

	summaries := make([]BookSummary, 0, len(books))
	for i := range books {
		book := &books[i]
		summaries = append(summaries, BookSummary{
			ID:          book.ID,
			Title:       book.Title,
			Author:      book.Author,
			Chapters:    len(book.Chapters),
			Annotations: book.AnnotationCount(),
			UpdatedAt:   book.UpdatedAt.Format(time.RFC3339),
		})
	}
	ctx.JSON(http.StatusOK, summaries)
}

func (c *LibraryController) Outline(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	format, ok := parseFormat(ctx)
	if !ok {
		return
	}
	opts, ok := parseOutlineOptions(ctx, c.showLocation)
	if !ok {
		return
	}

	book, err := c.store.GetBookByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(ctx, "book")
		return
	}
	if err != nil {
		respondInternalError(ctx, err, "load book")
		return
	}

	switch format {
	case FormatJSON:
		ctx.JSON(http.StatusOK, gin.H{
			"book":    book,
			"outline": exporters.RenderOutline(book, opts),
		})
	case FormatHTML:
		respondHTML(ctx, book, opts)
	default:
		respondMarkdown(ctx, book, opts)
	}
}
