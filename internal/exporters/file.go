package exporters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mrlokans/kindlenotes/internal/entities"
)

// ErrOutputExists is returned when the output file is already there and
// overwriting was not requested.
var ErrOutputExists = errors.New("output file already exists")

// FileExporter writes the outline to a single Markdown file.
type FileExporter struct {
	Path      string
	Overwrite bool
	Options   OutlineOptions
}

func NewFileExporter(path string, overwrite bool, opts OutlineOptions) *FileExporter {
	return &FileExporter{
		Path:      path,
		Overwrite: overwrite,
		Options:   opts,
	}
}

// Check fails early when the export would be refused, before any input is
// processed. The output directory must already exist.
func (exporter *FileExporter) Check() error {
	dir := filepath.Dir(exporter.Path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to check output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output directory %s is not a directory", dir)
	}

	if exporter.Overwrite {
		return nil
	}
	if _, err := os.Stat(exporter.Path); err == nil {
		return fmt.Errorf("%w: %s (use --overwrite to replace it)", ErrOutputExists, exporter.Path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check output file: %w", err)
	}
	return nil
}

func (exporter *FileExporter) Export(book *entities.Book) (ExportResult, error) {
	content := []byte(RenderOutline(book, exporter.Options))

	var err error
	if exporter.Overwrite {
		err = exporter.replace(content)
	} else {
		err = exporter.create(content)
	}
	if err != nil {
		return ExportResult{}, err
	}
	return resultFor(book, exporter.Path), nil
}

// create writes a new file and never touches an existing one.
func (exporter *FileExporter) create(content []byte) error {
	f, err := os.OpenFile(exporter.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s (use --overwrite to replace it)", ErrOutputExists, exporter.Path)
	}
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	_, writeErr := f.Write(content)
	closeErr := f.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(exporter.Path)
		return fmt.Errorf("failed to write output file: %w", writeErr)
	}
	return nil
}

// replace writes to a temporary file next to the target and renames it over
// the target, so a failed write leaves the previous file intact.
func (exporter *FileExporter) replace(content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(exporter.Path), "."+filepath.Base(exporter.Path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr == nil {
		writeErr = os.Chmod(tmpPath, 0644)
	}
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write output file: %w", writeErr)
	}

	if err := os.Rename(tmpPath, exporter.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace output file: %w", err)
	}
	return nil
}
