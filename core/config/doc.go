// Package config provides configuration management for the directory service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, body limit, shutdown timeout)
//   - Knowledge: knowledge store base URL, API key and version
//   - Directory: hierarchy root id, node id prefix and node entity types
//   - Database: audit database connection details
//   - Storage: S3/MinIO credentials and bucket for the audit archive
//   - Redis: webhook event deduplication
//   - Audit: audit sink selection
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Knowledge.BaseURL)
package config
