package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/authz"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server"
)

// UserUpdateRequest is the body of PUT /users/{id}. Email, password, and
// role are not updatable through this route.
type UserUpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Country   string `json:"country"`

	Resume     string   `json:"resume"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Bio        string   `json:"bio"`

	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
	Website            string `json:"website"`
}

// RegisterUsersEndpoints registers the /users routes.
func RegisterUsersEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/users/{id}", handleGetUser(s)).Methods("GET")
	router.HandleFunc("/users/{id}", handleUpdateUser(s)).Methods("PUT")
}

func handleGetUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if err := authz.Authorize(id, authz.ActionUserView, nil); err != nil {
			respondWithDomainError(w, err)
			return
		}

		user, err := s.UsersStore.FindUserByID(mux.Vars(r)["id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, userResponse(user))
	}
}

func handleUpdateUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := s.UsersStore.FindUserByID(mux.Vars(r)["id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		id, _ := identity.Get(r.Context())
		resource := &authz.Resource{Kind: authz.KindUserProfile, OwnerID: user.ID}
		if err := authz.Authorize(id, authz.ActionUserUpdate, resource); err != nil {
			respondWithDomainError(w, err)
			return
		}

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		user.FirstName = req.FirstName
		user.LastName = req.LastName
		user.Phone = req.Phone
		user.City = req.City
		user.Country = req.Country
		user.Resume = req.Resume
		user.Skills = req.Skills
		user.Experience = req.Experience
		user.Bio = req.Bio
		user.CompanyName = req.CompanyName
		user.CompanyDescription = req.CompanyDescription
		user.Website = req.Website

		if err := s.UsersStore.UpdateUser(user); err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, userResponse(user))
	}
}
