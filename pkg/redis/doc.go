// Package redis bootstraps a go-redis client from environment-driven
// configuration, with startup retries and a health check closure. The
// resulting client backs reactive.RedisStore in multi-instance deployments.
package redis
