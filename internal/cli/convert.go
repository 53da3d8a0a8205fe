package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/kindlenotes/internal/config"
	"github.com/mrlokans/kindlenotes/internal/database"
	"github.com/mrlokans/kindlenotes/internal/exporters"
	"github.com/mrlokans/kindlenotes/internal/kindle"
	"github.com/mrlokans/kindlenotes/internal/utils"
)

// ConvertOptions holds everything one conversion needs.
type ConvertOptions struct {
	InputPath    string
	OutputPath   string
	ShowLocation bool
	Clipboard    bool
	Overwrite    bool
	TitlePolicy  kindle.TitlePolicy
	DatabasePath string // Empty means the book is not saved to the library
	Verbose      bool
}

func addConvertFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	flags.StringP("output", "o", "", "Output file path (default: input with .md extension)")
	flags.Bool("location", cfg.Outline.ShowLocation, "Include the Kindle location label under each annotation")
	flags.Bool("no-location", false, "Omit location labels (same as --location=false)")
	flags.Bool("clipboard", false, "Copy the outline to the clipboard instead of writing a file")
	flags.BoolP("overwrite", "f", false, "Replace the output file if it already exists")
	flags.String("title-policy", cfg.Outline.TitlePolicy, "Which title/author block wins when repeated: last or first")
	flags.String("db", "", "Also save the notebook to the library database at this path")
	flags.BoolP("verbose", "v", false, "Print a summary of the converted notebook")
}

func readConvertOptions(cmd *cobra.Command, args []string) (ConvertOptions, error) {
	flags := cmd.Flags()

	opts := ConvertOptions{InputPath: args[0]}
	opts.OutputPath, _ = flags.GetString("output")
	opts.ShowLocation, _ = flags.GetBool("location")
	opts.Clipboard, _ = flags.GetBool("clipboard")
	opts.Overwrite, _ = flags.GetBool("overwrite")
	opts.DatabasePath, _ = flags.GetString("db")
	opts.Verbose, _ = flags.GetBool("verbose")

	if noLocation, _ := flags.GetBool("no-location"); noLocation {
		opts.ShowLocation = false
	}

	policy, _ := flags.GetString("title-policy")
	titlePolicy, err := kindle.ParseTitlePolicy(policy)
	if err != nil {
		return ConvertOptions{}, err
	}
	opts.TitlePolicy = titlePolicy

	if opts.OutputPath == "" {
		opts.OutputPath = utils.ReplaceExtension(opts.InputPath, config.OutputExtension)
	}
	if opts.OutputPath == opts.InputPath && !opts.Clipboard {
		return ConvertOptions{}, fmt.Errorf("output path %s is the input file", opts.OutputPath)
	}

	return opts, nil
}

// RunConvert parses one notebook and delivers its outline. Progress lines go
// to out; warnings go to the standard logger.
func RunConvert(opts ConvertOptions, out io.Writer) error {
	outlineOpts := exporters.OutlineOptions{ShowLocation: opts.ShowLocation}

	var exporter exporters.OutlineExporter
	if opts.Clipboard {
		exporter = exporters.NewClipboardExporter(outlineOpts)
	} else {
		fileExporter := exporters.NewFileExporter(opts.OutputPath, opts.Overwrite, outlineOpts)
		// Refuse before reading input so an existing file is never touched.
		if err := fileExporter.Check(); err != nil {
			return err
		}
		exporter = fileExporter
	}

	file, err := os.Open(opts.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open notebook: %w", err)
	}
	defer file.Close()

	res, err := kindle.NewParser(kindle.Options{TitlePolicy: opts.TitlePolicy}).Parse(file)
	if err != nil {
		return fmt.Errorf("failed to parse notebook %s: %w", opts.InputPath, err)
	}

	if opts.DatabasePath != "" {
		db, err := database.NewDatabase(opts.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()
		exporter = exporters.NewDatabaseExporter(db, exporter)
	}

	result, err := exporter.Export(res.Book)
	if err != nil {
		return err
	}

	if opts.Verbose {
		printSummary(out, res, result)
	}

	if result.Destination == exporters.ClipboardDestination {
		fmt.Fprintln(out, "Copied outline to clipboard")
	} else {
		fmt.Fprintf(out, "Wrote outline to %s\n", result.Destination)
	}
	return nil
}

func printSummary(out io.Writer, res *kindle.Result, result exporters.ExportResult) {
	book := res.Book
	title := book.Title
	if title == "" {
		title = "(no title)"
	}
	author := book.Author
	if author == "" {
		author = "(no author)"
	}

	fmt.Fprintf(out, "\"%s\" by %s\n", title, author)
	fmt.Fprintf(out, "Chapters: %d\n", result.ChaptersProcessed)
	fmt.Fprintf(out, "Annotations: %d\n", result.AnnotationsProcessed)
	if len(res.Warnings) > 0 {
		fmt.Fprintf(out, "Warnings: %d\n", len(res.Warnings))
	}
}
