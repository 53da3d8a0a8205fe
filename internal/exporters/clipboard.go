package exporters

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/mrlokans/kindlenotes/internal/entities"
)

const ClipboardDestination = "clipboard"

var ErrClipboardUnsupported = errors.New("clipboard is not available on this system")

// ClipboardExporter copies the outline to the system clipboard.
type ClipboardExporter struct {
	Options OutlineOptions
	write   func(string) error
}

func NewClipboardExporter(opts OutlineOptions) *ClipboardExporter {
	return &ClipboardExporter{Options: opts}
}

func (exporter *ClipboardExporter) Export(book *entities.Book) (ExportResult, error) {
	write := exporter.write
	if write == nil {
		if clipboard.Unsupported {
			return ExportResult{}, ErrClipboardUnsupported
		}
		write = clipboard.WriteAll
	}

	if err := write(RenderOutline(book, exporter.Options)); err != nil {
		return ExportResult{}, fmt.Errorf("failed to copy outline to clipboard: %w", err)
	}
	return resultFor(book, ClipboardDestination), nil
}
