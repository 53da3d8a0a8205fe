package http

import "github.com/mrlokans/kindlenotes/internal/kindle"

// RouterConfig contains the dependencies needed to create the HTTP router.
type RouterConfig struct {
	// Library is nil when no database is configured; saving and the
	// /api/books endpoints are then unavailable.
	Library LibraryStore
	Health  Pinger

	MaxUploadBytes int64
	ShowLocation   bool
	TitlePolicy    kindle.TitlePolicy

	Version string
}
