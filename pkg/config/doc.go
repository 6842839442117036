// Package config provides configuration management for the job portal.
//
// This package handles loading and validating server configuration
// from environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - JOBPORTAL_TOKEN_SIGNING_KEY: Token signing key
//   - JOBPORTAL_TOKEN_TTL: Token lifetime in seconds
//   - DATABASE_URL: Database connection
//   - PORT: Server listen port
package config
