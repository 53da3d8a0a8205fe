package http

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/kindlenotes/internal/entities"
	"github.com/mrlokans/kindlenotes/internal/exporters"
	"github.com/mrlokans/kindlenotes/internal/kindle"
)

const (
	notebookFormField     = "notebook_file"
	defaultMaxUploadBytes = 10 * 1024 * 1024 // 10 MB
)

type ConvertController struct {
	library        BookSaver
	maxUploadBytes int64
	showLocation   bool
	titlePolicy    kindle.TitlePolicy
}

func NewConvertController(cfg RouterConfig) *ConvertController {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	return &ConvertController{
		library:        cfg.Library,
		maxUploadBytes: maxUpload,
		showLocation:   cfg.ShowLocation,
		titlePolicy:    cfg.TitlePolicy,
	}
}

type ConvertResponse struct {
	Book     *entities.Book   `json:"book"`
	Outline  string           `json:"outline"`
	Warnings []kindle.Warning `json:"warnings"`
	Saved    bool             `json:"saved"`
}

func (c *ConvertController) Convert(ctx *gin.Context) {
	format, ok := parseFormat(ctx)
	if !ok {
		return
	}
	opts, ok := parseOutlineOptions(ctx, c.showLocation)
	if !ok {
		return
	}
	save := ctx.Query("save") == "true"
	if save && c.library == nil {
		respondError(ctx, http.StatusConflict, "library_disabled", "library storage is not configured")
		return
	}

	header, err := ctx.FormFile(notebookFormField)
	if err != nil {
		respondBadRequest(ctx, "Notebook file not provided")
		return
	}
	if header.Size > c.maxUploadBytes {
		respondError(ctx, http.StatusRequestEntityTooLarge, "file_too_large",
			fmt.Sprintf("File too large (max %d MB)", c.maxUploadBytes/(1024*1024)))
		return
	}

	file, err := header.Open()
	if err != nil {
		respondInternalError(ctx, err, "open uploaded notebook")
		return
	}
	defer file.Close()

	parser := kindle.NewParser(kindle.Options{TitlePolicy: c.titlePolicy})
	res, err := parser.Parse(io.LimitReader(file, c.maxUploadBytes))
	if errors.Is(err, kindle.ErrNoBlocks) {
		respondError(ctx, http.StatusUnprocessableEntity, "not_a_notebook",
			"The file does not look like a Kindle notebook export")
		return
	}
	if err != nil {
		respondBadRequest(ctx, fmt.Sprintf("Failed to parse notebook: %v", err))
		return
	}

	book := res.Book
	log.Printf("Converted notebook '%s' by %s: %d chapters, %d annotations, %d warnings",
		book.Title, book.Author, len(book.Chapters), book.AnnotationCount(), len(res.Warnings))

	if save {
		if err := c.library.SaveBook(book); err != nil {
			respondInternalError(ctx, err, "save converted book")
			return
		}
	}

	switch format {
	case FormatJSON:
		warnings := res.Warnings
		if warnings == nil {
			warnings = []kindle.Warning{}
		}
		ctx.JSON(http.StatusOK, ConvertResponse{
			Book:     book,
			Outline:  exporters.RenderOutline(book, opts),
			Warnings: warnings,
			Saved:    save,
		})
	case FormatHTML:
		respondHTML(ctx, book, opts)
	default:
		respondMarkdown(ctx, book, opts)
	}
}
