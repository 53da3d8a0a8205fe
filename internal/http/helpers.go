package http

import (
	"fmt"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/kindlenotes/internal/config"
	"github.com/mrlokans/kindlenotes/internal/entities"
	"github.com/mrlokans/kindlenotes/internal/exporters"
	"github.com/mrlokans/kindlenotes/internal/utils"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

// OutlineFormat selects how an outline is returned.
type OutlineFormat string

const (
	FormatMarkdown OutlineFormat = "markdown"
	FormatJSON     OutlineFormat = "json"
	FormatHTML     OutlineFormat = "html"
)

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 without exposing it.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Responds with 400 and returns false when the value is not a valid ID.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseOutlineOptions reads ?location= on top of the server default.
func parseOutlineOptions(c *gin.Context, showLocation bool) (exporters.OutlineOptions, bool) {
	raw := c.Query("location")
	if raw == "" {
		return exporters.OutlineOptions{ShowLocation: showLocation}, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("invalid location value %q", raw))
		return exporters.OutlineOptions{}, false
	}
	return exporters.OutlineOptions{ShowLocation: value}, true
}

func parseFormat(c *gin.Context) (OutlineFormat, bool) {
	switch format := OutlineFormat(c.DefaultQuery("format", string(FormatMarkdown))); format {
	case FormatMarkdown, FormatJSON, FormatHTML:
		return format, true
	default:
		respondBadRequest(c, fmt.Sprintf("unsupported format %q (want markdown, json or html)", format))
		return "", false
	}
}

// respondMarkdown serves the outline as a download named after the book.
func respondMarkdown(c *gin.Context, book *entities.Book, opts exporters.OutlineOptions) {
	filename := utils.OutlineFilename(book.Title, config.OutputExtension)
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(exporters.RenderOutline(book, opts)))
}

func respondHTML(c *gin.Context, book *entities.Book, opts exporters.OutlineOptions) {
	html, err := exporters.RenderOutlineHTML(book, opts)
	if err != nil {
		respondInternalError(c, err, "render outline HTML")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
