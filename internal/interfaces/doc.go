// Package interfaces documents the extension points of the converter.
//
// # Outline delivery
//
// A converted book reaches its destination through exporters.OutlineExporter:
//
//   - FileExporter writes the outline to a Markdown file and refuses to
//     replace an existing one unless Overwrite is set.
//   - ClipboardExporter copies the outline to the system clipboard.
//   - DatabaseExporter saves the book to the library, then delegates to the
//     next exporter in the chain.
//
// Adding a destination (e.g. a notes app API):
//
//	type NotesAppExporter struct {
//	    client  *notesapp.Client
//	    Options exporters.OutlineOptions
//	}
//
//	func (e *NotesAppExporter) Export(book *entities.Book) (exporters.ExportResult, error) {
//	    // Render with exporters.RenderOutline and upload
//	}
//
//	var _ exporters.OutlineExporter = (*NotesAppExporter)(nil)
//
// # Library store
//
//   - exporters.BookStore: persist a converted book (CLI --db, DatabaseExporter)
//   - http.LibraryStore: save and read books for the API
//   - http.Pinger: connectivity check for /health
//
// *database.Database implements all three.
//
// # Compile-Time Interface Checks
//
// Implementations are checked at compile time in checks.go:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
package interfaces
