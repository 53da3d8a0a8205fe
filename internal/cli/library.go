package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/mrlokans/kindlenotes/internal/config"
	"github.com/mrlokans/kindlenotes/internal/database"
	"github.com/mrlokans/kindlenotes/internal/exporters"
)

func newLibraryCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Inspect notebooks saved with --db",
	}
	cmd.PersistentFlags().String("db", cfg.LibraryPath(), "Library database path")

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cmd, func(db *database.Database) error {
				books, err := db.GetAllBooks()
				if err != nil {
					return fmt.Errorf("failed to list books: %w", err)
				}
				out := cmd.OutOrStdout()
				if len(books) == 0 {
					fmt.Fprintln(out, "Library is empty")
					return nil
				}
				for _, book := range books {
					fmt.Fprintf(out, "%d\t%s\t%s\t%d chapters, %d annotations\n",
						book.ID, book.Title, book.Author, len(book.Chapters), book.AnnotationCount())
				}
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the outline of a stored book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}
			showLocation, _ := cmd.Flags().GetBool("location")
			if noLocation, _ := cmd.Flags().GetBool("no-location"); noLocation {
				showLocation = false
			}

			return withLibrary(cmd, func(db *database.Database) error {
				book, err := db.GetBookByID(id)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("book %d not found", id)
				}
				if err != nil {
					return fmt.Errorf("failed to load book %d: %w", id, err)
				}
				fmt.Fprint(cmd.OutOrStdout(), exporters.RenderOutline(book, exporters.OutlineOptions{ShowLocation: showLocation}))
				return nil
			})
		},
	}
	show.Flags().Bool("location", cfg.Outline.ShowLocation, "Include the Kindle location label under each annotation")
	show.Flags().Bool("no-location", false, "Omit location labels")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a stored book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBookID(args[0])
			if err != nil {
				return err
			}
			return withLibrary(cmd, func(db *database.Database) error {
				if err := db.DeleteBook(id); errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("book %d not found", id)
				} else if err != nil {
					return fmt.Errorf("failed to delete book %d: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted book %d\n", id)
				return nil
			})
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Print library totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLibrary(cmd, func(db *database.Database) error {
				books, annotations, err := db.GetStats()
				if err != nil {
					return fmt.Errorf("failed to read library stats: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Books: %d\nAnnotations: %d\n", books, annotations)
				return nil
			})
		},
	}

	cmd.AddCommand(list, show, remove, stats)
	return cmd
}

func withLibrary(cmd *cobra.Command, fn func(db *database.Database) error) error {
	path, _ := cmd.Flags().GetString("db")
	db, err := database.NewDatabase(path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()
	return fn(db)
}

func parseBookID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid book ID %q", raw)
	}
	return uint(id), nil
}
