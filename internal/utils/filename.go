package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

const maxFilenameLength = 200

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*#]`)
	spaceRuns            = regexp.MustCompile(`\s+`)
)

// SanitizeFilename turns a book title into a name usable as a file or
// download name. Returns "Untitled" when nothing printable is left.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = spaceRuns.ReplaceAllString(name, " ")
	name = strings.NewReplacer("[", "(", "]", ")").Replace(strings.TrimSpace(name))

	if len(name) > maxFilenameLength {
		cut := maxFilenameLength
		// Avoid splitting a multi-byte rune.
		for cut > 0 && !isRuneStart(name[cut]) {
			cut--
		}
		name = strings.TrimSpace(name[:cut])
	}

	if name == "" {
		return "Untitled"
	}
	return name
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// OutlineFilename returns the file name an outline of the titled book is
// delivered under.
func OutlineFilename(title, ext string) string {
	return SanitizeFilename(title) + ext
}

// ReplaceExtension swaps the extension of path for ext, appending it when
// path has none. "notes.html" becomes "notes.md".
func ReplaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
