package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"location-directory/core/database"
	"location-directory/core/dedupe"
	"location-directory/core/directory"
	"location-directory/core/knowledge"
	"location-directory/core/logger"
	"location-directory/core/server"
	"location-directory/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Audit sinks accepted by AuditConfig.Sink.
const (
	AuditSinkNone     = "none"
	AuditSinkDatabase = "database"
	AuditSinkStorage  = "storage"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Knowledge holds the knowledge store connection.
	Knowledge knowledge.Config `mapstructure:"knowledge"`
	// Directory holds the hierarchy root and node id settings.
	Directory directory.Config `mapstructure:"directory"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the audit database connection.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the audit archive (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Redis holds configuration for webhook event deduplication.
	Redis dedupe.Config `mapstructure:"redis"`
	// Audit selects where applied mutations are recorded.
	Audit AuditConfig `mapstructure:"audit"`
}

// AuditConfig selects the audit sink.
type AuditConfig struct {
	// Sink is one of none, database, storage.
	Sink string `mapstructure:"sink" default:"none"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. KNOWLEDGE_API_KEY -> knowledge.api_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if !c.Server.IsValidPort() {
		return fmt.Errorf("invalid server port %q", c.Server.Port)
	}
	if c.Directory.RootID == "" {
		return fmt.Errorf("directory root id is required")
	}
	switch c.Audit.Sink {
	case AuditSinkNone, AuditSinkDatabase, AuditSinkStorage:
	default:
		return fmt.Errorf("unknown audit sink %q", c.Audit.Sink)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
