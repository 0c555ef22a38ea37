package redis

// Config holds Redis connection settings
type Config struct {
	// URL is the Redis connection URL (redis://...)
	URL string
	// Key is the Redis key the aggregate is stored under
	Key string
	// PoolSize is the maximum number of connections
	PoolSize int
	// MinIdleConns is the minimum number of idle connections
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for Redis storage
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Key:          "pool:state",
		PoolSize:     10,
		MinIdleConns: 2,
	}
}
