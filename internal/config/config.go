package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Outline
		Upload
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string // Empty disables the library store for the server
	}
	Outline struct {
		ShowLocation bool
		TitlePolicy  string // "last" or "first"
	}
	Upload struct {
		MaxSizeMB int64
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", "")
	v.SetDefault("show_location", true)
	v.SetDefault("title_policy", "last")
	v.SetDefault("max_upload_size_mb", 10)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Outline: Outline{
			ShowLocation: v.GetBool("SHOW_LOCATION"),
			TitlePolicy:  v.GetString("TITLE_POLICY"),
		},
		Upload: Upload{
			MaxSizeMB: v.GetInt64("MAX_UPLOAD_SIZE_MB"),
		},
	}
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Upload.MaxSizeMB << 20
}

// LibraryPath returns the configured database path or the default library
// location when none is set.
func (c *Config) LibraryPath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return DefaultLibraryPath
}
