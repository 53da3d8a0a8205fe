package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/kindlenotes/internal/database"
)

func setupLibraryTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLibraryController_ConvertThenFetch(t *testing.T) {
	db := setupLibraryTestDB(t)
	router := newTestRouter(RouterConfig{Library: db, Health: db, ShowLocation: true})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "/api/convert?save=true", "notebook_file", testNotebook))
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var books []BookSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
		require.Len(t, books, 1)
		assert.Equal(t, "Deep Work: Rules for Focused Success", books[0].Title)
		assert.Equal(t, "Cal Newport", books[0].Author)
		assert.Equal(t, 1, books[0].Chapters)
		assert.Equal(t, 1, books[0].Annotations)
		assert.NotEmpty(t, books[0].UpdatedAt)
	})

	t.Run("outline as markdown", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/1/outline", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testOutline, w.Body.String())
	})

	t.Run("outline without location", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/1/outline?location=false&format=json", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Outline string `json:"outline"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotContains(t, response.Outline, "Location 100")
		assert.Contains(t, response.Outline, "**Remember this.**")
	})

	t.Run("unknown book", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/99/outline", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/abc/outline", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLibraryController_Disabled(t *testing.T) {
	router := newTestRouter(RouterConfig{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "library_disabled", response.Code)
}
