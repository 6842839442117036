package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/config"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/lifecycle"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/middleware"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store"
	gormstore "github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store/gorm"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/token"
)

type Server struct {
	Tokens            *token.Service
	UsersStore        store.UsersStore
	JobsStore         store.JobsStore
	ApplicationsStore store.ApplicationsStore
	Lifecycle         *lifecycle.Service
	Config            *config.Config
	Router            *mux.Router
	DB                *gorm.DB
	srv               *http.Server
}

func NewServer(
	tokens *token.Service,
	cfg *config.Config,
	db *gorm.DB,
	host string,
	port string,
) *Server {

	users := gormstore.NewUsersStore(db)
	jobs := gormstore.NewJobsStore(db)
	applications := gormstore.NewApplicationsStore(db)

	router := mux.NewRouter().UseEncodedPath()
	router.Use(middleware.NewAuthenticator(tokens, users).Middleware)

	var handler http.Handler = handlers.LoggingHandler(os.Stdout, router)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = handlers.CORS(
			handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE"}),
			handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		)(handler)
	}

	srv := &http.Server{
		Handler: handler,
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Tokens:            tokens,
		UsersStore:        users,
		JobsStore:         jobs,
		ApplicationsStore: applications,
		Lifecycle:         lifecycle.NewService(jobs, applications),
		Config:            cfg,
		Router:            router,
		DB:                db,
		srv:               srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
