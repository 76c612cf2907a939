// Package pg bootstraps a pgx connection pool from environment-driven
// configuration, with startup retries, a health check closure, and goose
// migrations routed through the application logger.
package pg
