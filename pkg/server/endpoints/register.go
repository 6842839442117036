package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthEndpoints(srv)
	RegisterJobsEndpoints(srv)
	RegisterApplicationsEndpoints(srv)
	RegisterUsersEndpoints(srv)
	RegisterStatusEndpoints(srv)
}

// RegisterStatusEndpoints registers the health probe.
func RegisterStatusEndpoints(srv *server.Server) {
	srv.Router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := srv.DB.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "error",
				"database": err.Error(),
			})
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
}
