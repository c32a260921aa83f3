// Package config manages application configuration for the ClubHive API.
//
// Configuration comes from environment variables. An optional .env file in
// the working directory is loaded first; variables already set in the
// process take precedence.
//
//	cfg, err := config.Load()
//	if err == nil {
//	    err = cfg.Validate()
//	}
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - StoreConfig: backend selection and key namespace
//   - DatabaseConfig: SurrealDB connection settings
//   - RedisConfig: Redis connection settings
//   - DemoConfig: demo role switching
//   - RateLimitConfig, IdempotencyConfig: middleware settings
//
// # Environment Variables
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, production or test
//	STORE_BACKEND         - memory, sqlite, redis or surrealdb (default: sqlite)
//	STORE_NAMESPACE       - key prefix (default: clubhive)
//	SQLITE_PATH           - SQLite database file
//	REDIS_ADDR            - Redis address
//	DB_HOST, DB_PORT      - SurrealDB endpoint
//	DEMO_ROLE_SWITCH      - allow switching between demo identities
//	RATE_LIMIT_REQUESTS   - requests per window per client
//	IDEMPOTENCY_TTL       - how long Idempotency-Key responses are kept
package config
