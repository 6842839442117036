package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/config"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/lifecycle"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/server"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/token"
)

// testStores bundles the mock stores a test server is built over.
type testStores struct {
	Users        *MockUsersStore
	Jobs         *MockJobsStore
	Applications *MockApplicationsStore
}

// newTestServer builds a server over mock stores with all endpoints
// registered. The authentication middleware is not installed; tests
// attach identities to requests directly.
func newTestServer(t *testing.T) (*server.Server, *testStores) {
	t.Helper()
	t.Setenv("JOBPORTAL_CONFIG_PATH", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	stores := &testStores{
		Users:        NewMockUsersStore(),
		Jobs:         NewMockJobsStore(),
		Applications: NewMockApplicationsStore(),
	}

	srv := &server.Server{
		Tokens:            token.NewService([]byte("test-signing-key"), 0),
		UsersStore:        stores.Users,
		JobsStore:         stores.Jobs,
		ApplicationsStore: stores.Applications,
		Lifecycle:         lifecycle.NewService(stores.Jobs, stores.Applications),
		Config:            cfg,
		Router:            mux.NewRouter().UseEncodedPath(),
	}
	RegisterAll(srv)

	return srv, stores
}

// newRequest builds a request with an optional JSON body and an optional
// caller identity already attached to the context.
func newRequest(t *testing.T, method, target string, body interface{}, id *identity.Identity) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if id != nil {
		req = req.WithContext(identity.Set(req.Context(), id))
	}
	return req
}

func seekerIdentity(id string) *identity.Identity {
	return &identity.Identity{UserID: id, Email: id + "@example.com", Role: identity.RoleJobSeeker}
}

func employerIdentity(id string) *identity.Identity {
	return &identity.Identity{UserID: id, Email: id + "@example.com", Role: identity.RoleEmployer}
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
