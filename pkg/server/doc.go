// Package server provides the HTTP server for the job portal API.
//
// This package implements the core HTTP server that handles all REST API
// requests. It uses gorilla/mux for routing and provides middleware for
// authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(tokens, cfg, db, "0.0.0.0", "8080")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Tokens: bearer token issuance and verification
//   - UsersStore, JobsStore, ApplicationsStore: persistence
//   - Lifecycle: the application state machine
//   - Config: runtime configuration
//   - Router: HTTP request router
//   - DB: Database connection
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all routes including:
//
//   - /auth/signup, /auth/login, /auth/me - Accounts and sessions
//   - /jobs/public/* - Public job browsing and search
//   - /jobs/* - Employer posting management
//   - /applications/* - Application lifecycle
//   - /users/{id} - Profiles
package server
