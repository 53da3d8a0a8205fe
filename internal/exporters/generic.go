package exporters

import "github.com/mrlokans/kindlenotes/internal/entities"

// OutlineExporter delivers a converted book somewhere: a file, the
// clipboard or the library database.
type OutlineExporter interface {
	Export(book *entities.Book) (ExportResult, error)
}

type ExportResult struct {
	Destination          string `json:"destination"`
	ChaptersProcessed    int    `json:"chapters_processed"`
	AnnotationsProcessed int    `json:"annotations_processed"`
}

func resultFor(book *entities.Book, destination string) ExportResult {
	return ExportResult{
		Destination:          destination,
		ChaptersProcessed:    len(book.Chapters),
		AnnotationsProcessed: book.AnnotationCount(),
	}
}
