// Package main provides jobportalctl, the CLI for the job portal server.
//
// The job portal is a multi-role job board backend. Employers post and
// manage job listings; job seekers search listings and apply to them.
// Access is controlled by signed bearer tokens and a role and ownership
// based authorization policy.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Data store interfaces and GORM implementations
//   - pkg/token: Signed bearer token issuance and verification
//   - pkg/authz: Role and ownership authorization policy
//   - pkg/lifecycle: Application state machine
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the jobportalctl CLI:
//
//	# Generate a token signing key
//	jobportalctl signing-key generate > signing_key
//	export JOBPORTAL_TOKEN_SIGNING_KEY=$(cat signing_key)
//
//	# Run database migrations
//	jobportalctl db migrate
//
//	# Start the server
//	jobportalctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - JOBPORTAL_TOKEN_SIGNING_KEY: Base64-encoded 256-bit token signing key
//   - JOBPORTAL_CONFIG_PATH: Config file directory (default: /etc/jobportal/config)
//   - JOBPORTAL_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8000)
package main
