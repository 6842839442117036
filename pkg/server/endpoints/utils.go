package endpoints

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/authz"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/config"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/lifecycle"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithDomainError maps domain errors onto response codes at this
// one boundary. Nothing below the endpoints inspects HTTP status codes.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authz.ErrUnauthenticated):
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, authz.ErrWrongRole), errors.Is(err, authz.ErrNotOwner):
		respondWithError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrJobNotFound),
		errors.Is(err, store.ErrApplicationNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrEmailTaken),
		errors.Is(err, store.ErrDuplicateApplication),
		errors.Is(err, lifecycle.ErrJobNotOpen),
		errors.Is(err, lifecycle.ErrNotWithdrawable):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, lifecycle.ErrInvalidStatus):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// pagination extracts page/size query params, clamping size to the
// configured maximum. Pages are 1-based.
func pagination(r *http.Request, cfg *config.Config) (limit, offset int) {
	size := 10
	if v := r.URL.Query().Get("size"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			size = i
		}
	}
	if size > cfg.APIPageSizeMax {
		size = cfg.APIPageSizeMax
	}

	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			page = i
		}
	}

	return size, (page - 1) * size
}

// clientIP resolves the caller's address for audit records. The
// X-Forwarded-For header is honored only when the direct peer is a
// trusted proxy.
func clientIP(r *http.Request, cfg *config.Config) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && cfg.IsTrustedProxy(host) {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	return host
}

// auditUser names the caller in an audit record, "anonymous" when the
// request carried no identity.
func auditUser(id *identity.Identity) string {
	if id == nil {
		return "anonymous"
	}
	return id.UserID
}

// pagedResponse is the envelope for list endpoints.
type pagedResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}
