package httpapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/auth"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/services"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newServices(m repomanager.RepositoryManager) Services {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	issuer := auth.NewTokenIssuer([]byte(testSecret), time.Hour)
	return Services{
		Users:   services.NewUserService(m, hasher),
		Auth:    services.NewAuthService(m, hasher, issuer),
		Crops:   services.NewCropService(m),
		Journal: services.NewJournalService(m),
	}
}

type testAPI struct {
	t       *testing.T
	handler http.Handler
}

func newTestAPI(t *testing.T, opts Options) *testAPI {
	t.Helper()
	m := repomanager.NewMemoryRepositoryManager()
	return newTestAPIWith(t, m, opts)
}

func newTestAPIWith(t *testing.T, m repomanager.RepositoryManager, opts Options) *testAPI {
	t.Helper()
	if opts.CORSAllowedOrigins == nil {
		opts.CORSAllowedOrigins = []string{"*"}
	}
	srv := NewHTTPServer(":0", nopLogger{}, m, newServices(m), opts)
	return &testAPI{t: t, handler: srv.Handler()}
}

type response struct {
	Status int
	Body   []byte
	Header http.Header
}

func (r response) JSON(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &out), "body: %s", r.Body)
	return out
}

func (a *testAPI) do(method, path, token, body string) response {
	a.t.Helper()

	var rd io.Reader = http.NoBody
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequestWithContext(context.Background(), method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return response{Status: rec.Code, Body: rec.Body.Bytes(), Header: rec.Header()}
}

// signup registers a user and returns a token for it.
func (a *testAPI) signup(username, password string) string {
	a.t.Helper()

	res := a.do(http.MethodPost, "/api/users", "",
		`{"username":"`+username+`","email":"`+username+`@example.com","password":"`+password+`"}`)
	require.Equal(a.t, http.StatusCreated, res.Status, "signup: %s", res.Body)

	return a.login(username, password)
}

func (a *testAPI) login(username, password string) string {
	a.t.Helper()

	res := a.do(http.MethodPost, "/api/auth/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(a.t, http.StatusOK, res.Status, "login: %s", res.Body)

	token, _ := res.JSON(a.t)["authToken"].(string)
	require.NotEmpty(a.t, token)
	return token
}

const tomatoBody = `{"name":"Tomato","variety":"Roma","plant_date":"2024-03-01","germination_days":7,"harvest_days":80,"row_spacing":60}`

// createCrop creates a crop and returns its id.
func (a *testAPI) createCrop(token, body string) string {
	a.t.Helper()

	res := a.do(http.MethodPost, "/api/crops", token, body)
	require.Equal(a.t, http.StatusCreated, res.Status, "create crop: %s", res.Body)

	id, _ := res.JSON(a.t)["id"].(string)
	require.NotEmpty(a.t, id)
	return id
}

func requireError(t *testing.T, res response, status int, message string) {
	t.Helper()
	require.Equal(t, status, res.Status, "body: %s", res.Body)
	require.Equal(t, message, res.JSON(t)["message"])
}
