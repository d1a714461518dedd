package dedupe

// Config holds configuration for the Redis-backed event tracker.
type Config struct {
	// Addr is the Redis host:port. Empty disables deduplication.
	Addr string `mapstructure:"addr" default:""`
	// Password authenticates against Redis.
	Password string `mapstructure:"password" default:""`
	// DB selects the Redis logical database.
	DB int `mapstructure:"db" default:"0"`
	// Prefix namespaces the event keys.
	Prefix string `mapstructure:"prefix" default:"directory:event:"`
	// TTLSeconds is how long a completed event is remembered.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"86400"`
}
