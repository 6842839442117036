package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/audit"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/authz"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server"
)

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public shape of an account. It never carries the
// password hash.
type UserResponse struct {
	ID        string        `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Role      identity.Role `json:"role"`

	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	Resume     string   `json:"resume,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Bio        string   `json:"bio,omitempty"`

	CompanyName        string `json:"companyName,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	Website            string `json:"website,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func userResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Email:              u.Email,
		Role:               u.Role,
		Phone:              u.Phone,
		City:               u.City,
		Country:            u.Country,
		Resume:             u.Resume,
		Skills:             u.Skills,
		Experience:         u.Experience,
		Bio:                u.Bio,
		CompanyName:        u.CompanyName,
		CompanyDescription: u.CompanyDescription,
		Website:            u.Website,
		CreatedAt:          u.CreatedAt,
	}
}

// RegisterAuthEndpoints registers signup, login, and whoami routes.
func RegisterAuthEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/auth/signup", handleSignup(s)).Methods("POST")
	router.HandleFunc("/auth/login", handleLogin(s)).Methods("POST")
	router.HandleFunc("/auth/me", handleMe(s)).Methods("GET")
}

func handleSignup(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.Config.SignupEnabled {
			respondWithError(w, http.StatusForbidden, "Signup is disabled")
			return
		}

		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		if req.Email == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		role, err := identity.RoleString(req.Role)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Role must be JOB_SEEKER or EMPLOYER")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		user := &model.User{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  string(hash),
			Role:      role,
		}
		if err := s.UsersStore.CreateUser(user); err != nil {
			respondWithDomainError(w, err)
			return
		}

		tokenStr, err := s.Tokens.Issue(user.Email)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		audit.Log(audit.SignupEvent{
			Email:    user.Email,
			Role:     user.Role.String(),
			ClientIP: clientIP(r, s.Config),
		})

		respondWithJSON(w, http.StatusCreated, TokenResponse{
			Token: tokenStr,
			User:  userResponse(user),
		})
	}
}

func handleLogin(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		user, err := s.UsersStore.FindUserByEmail(req.Email)
		if err != nil {
			audit.Log(audit.LoginEvent{
				Email:        req.Email,
				ClientIP:     clientIP(r, s.Config),
				ErrorMessage: "unknown account",
			})
			// Same response whether the account or the password is
			// wrong.
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			audit.Log(audit.LoginEvent{
				Email:        req.Email,
				ClientIP:     clientIP(r, s.Config),
				ErrorMessage: "wrong password",
			})
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		tokenStr, err := s.Tokens.Issue(user.Email)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		audit.Log(audit.LoginEvent{
			Email:    user.Email,
			ClientIP: clientIP(r, s.Config),
			Success:  true,
		})

		respondWithJSON(w, http.StatusOK, TokenResponse{
			Token: tokenStr,
			User:  userResponse(user),
		})
	}
}

func handleMe(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if err := authz.Authorize(id, authz.ActionUserView, nil); err != nil {
			respondWithDomainError(w, err)
			return
		}

		user, err := s.UsersStore.FindUserByID(id.UserID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, userResponse(user))
	}
}
