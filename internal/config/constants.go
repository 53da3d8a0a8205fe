package config

const (
	// DefaultLibraryPath is used by the library commands when neither --db
	// nor DATABASE_PATH is set.
	DefaultLibraryPath = "./kindlenotes.db"

	// OutputExtension replaces the input extension when no output path is given.
	OutputExtension = ".md"
)
