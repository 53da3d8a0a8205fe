package exporters

import (
	"fmt"
	"log"

	"github.com/mrlokans/kindlenotes/internal/entities"
)

const LibraryDestination = "library"

// BookStore persists converted books.
type BookStore interface {
	SaveBook(book *entities.Book) error
}

// DatabaseExporter hands the book to the next exporter, if any, and saves it
// to the library only once that export succeeded.
type DatabaseExporter struct {
	store BookStore
	next  OutlineExporter
}

func NewDatabaseExporter(store BookStore, next OutlineExporter) *DatabaseExporter {
	return &DatabaseExporter{
		store: store,
		next:  next,
	}
}

func (exporter *DatabaseExporter) Export(book *entities.Book) (ExportResult, error) {
	result := resultFor(book, LibraryDestination)
	if exporter.next != nil {
		var err error
		if result, err = exporter.next.Export(book); err != nil {
			return ExportResult{}, err
		}
	}

	if err := exporter.store.SaveBook(book); err != nil {
		return ExportResult{}, fmt.Errorf("failed to save book '%s' to library: %w", book.Title, err)
	}
	log.Printf("Saved book '%s' by %s to library with ID %d (%d annotations)",
		book.Title, book.Author, book.ID, book.AnnotationCount())

	return result, nil
}
