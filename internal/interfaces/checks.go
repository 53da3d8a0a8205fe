package interfaces

// Compile-time checks that concrete types satisfy the interfaces declared by
// the packages that consume them.

import (
	"github.com/mrlokans/kindlenotes/internal/database"
	"github.com/mrlokans/kindlenotes/internal/exporters"
	"github.com/mrlokans/kindlenotes/internal/http"
)

// =============================================================================
// Library store
// =============================================================================

var _ exporters.BookStore = (*database.Database)(nil)
var _ http.LibraryStore = (*database.Database)(nil)
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Outline delivery
// =============================================================================

var _ exporters.OutlineExporter = (*exporters.FileExporter)(nil)
var _ exporters.OutlineExporter = (*exporters.ClipboardExporter)(nil)
var _ exporters.OutlineExporter = (*exporters.DatabaseExporter)(nil)
