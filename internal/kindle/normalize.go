package kindle

import "strings"

const nbsp = "\u00a0"

// NormalizeText collapses the space+NBSP pairs Kindle emits into a single
// space and trims surrounding whitespace.
func NormalizeText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, " "+nbsp, " "))
}

// firstLine keeps the text before the first line break. Some Kindle app
// versions misplace a closing </div>, so a noteText block carries a copy of
// the following heading on its second line.
func firstLine(s string) string {
	s = NormalizeText(s)
	if idx := strings.IndexAny(s, "\r\n"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// singleLine joins the non-empty lines of s with a space.
func singleLine(s string) string {
	lines := strings.Split(NormalizeText(s), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " ")
}
