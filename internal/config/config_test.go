package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "SHUTDOWN_TIMEOUT_IN_SECONDS", "DATABASE_PATH", "SHOW_LOCATION", "TITLE_POLICY", "MAX_UPLOAD_SIZE_MB"} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	assert.Equal(t, int32(8190), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Empty(t, cfg.Database.Path)
	assert.True(t, cfg.Outline.ShowLocation)
	assert.Equal(t, "last", cfg.Outline.TitlePolicy)
	assert.Equal(t, int64(10), cfg.Upload.MaxSizeMB)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes())
	assert.Equal(t, DefaultLibraryPath, cfg.LibraryPath())
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/notes.db")
	t.Setenv("SHOW_LOCATION", "false")
	t.Setenv("TITLE_POLICY", "first")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "2")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "/tmp/notes.db", cfg.Database.Path)
	assert.Equal(t, "/tmp/notes.db", cfg.LibraryPath())
	assert.False(t, cfg.Outline.ShowLocation)
	assert.Equal(t, "first", cfg.Outline.TitlePolicy)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes())
}
