package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	api := newTestAPI(t, Options{})

	res := api.do(http.MethodPost, "/api/users", "",
		`{"username":"ann","email":"  ann@example.com ","password":"hunter22"}`)
	require.Equal(t, http.StatusCreated, res.Status, "body: %s", res.Body)

	got := res.JSON(t)
	assert.Equal(t, "ann", got["username"])
	assert.Equal(t, "ann@example.com", got["email"])
	assert.NotEmpty(t, got["id"])
	assert.NotContains(t, got, "password")
	assert.NotContains(t, string(res.Body), "hunter22")
}

func TestSignup_Validation(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.signup("ann", "pw")

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"missing fields", `{"username":"bob"}`, http.StatusBadRequest,
			"The request is missing the following field(s): 'email', 'password'"},
		{"wrong types", `{"username":1,"email":"b@x","password":null}`, http.StatusUnprocessableEntity,
			"Incorrect field types for the following fields: 'username', 'password'"},
		{"whitespace", `{"username":" bob","email":"b@x","password":"pw "}`, http.StatusUnprocessableEntity,
			"The following begin or end with whitespace: 'username', 'password'"},
		{"duplicate", `{"username":"ann","email":"a2@x","password":"pw"}`, http.StatusUnprocessableEntity,
			"username already exists"},
		{"not an object", `[1,2]`, http.StatusBadRequest, "Malformed request body"},
		{"not json", `{"username":`, http.StatusBadRequest, "Malformed request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireError(t, api.do(http.MethodPost, "/api/users", "", tt.body), tt.status, tt.message)
		})
	}
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.signup("ann", "pw")

	for _, body := range []string{
		`{"username":"ann","password":"wrong"}`,
		`{"username":"nobody","password":"pw"}`,
		`{"username":"ann"}`,
		`{"username":1,"password":"pw"}`,
		`garbage`,
		``,
	} {
		requireError(t, api.do(http.MethodPost, "/api/auth/login", "", body), http.StatusUnauthorized, "Unauthorized")
	}
}

func TestRefresh_PreservesIdentity(t *testing.T) {
	api := newTestAPI(t, Options{})
	token := api.signup("ann", "pw")

	before := api.do(http.MethodGet, "/api/users", token, "").JSON(t)

	res := api.do(http.MethodPost, "/api/auth/refresh", token, "")
	require.Equal(t, http.StatusOK, res.Status, "body: %s", res.Body)
	fresh, _ := res.JSON(t)["authToken"].(string)
	require.NotEmpty(t, fresh)
	assert.NotEqual(t, token, fresh)

	after := api.do(http.MethodGet, "/api/users", fresh, "").JSON(t)
	assert.Equal(t, before, after)
}

func TestBearerAuth_Rejects(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.signup("ann", "pw")

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc", "Bearer not.a.token"} {
		req := httptest.NewRequest(http.MethodGet, "/api/crops", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		api.handler.ServeHTTP(rec, req)

		requireError(t, response{Status: rec.Code, Body: rec.Body.Bytes()}, http.StatusUnauthorized, "Unauthorized")
	}
}

func TestProfile(t *testing.T) {
	api := newTestAPI(t, Options{})
	token := api.signup("ann", "pw")
	cropID := api.createCrop(token, tomatoBody)

	res := api.do(http.MethodPost, "/api/journal", token,
		`{"date":"2024-03-05","scope":"`+cropID+`","text":"sprouted"}`)
	require.Equal(t, http.StatusCreated, res.Status, "body: %s", res.Body)

	res = api.do(http.MethodGet, "/api/users", token, "")
	require.Equal(t, http.StatusOK, res.Status)

	profile, _ := res.JSON(t)["users"].(map[string]any)
	require.NotNil(t, profile, "body: %s", res.Body)
	assert.Equal(t, "ann", profile["username"])
	assert.Len(t, profile["crops"], 1)
	assert.Len(t, profile["journal"], 1)
	assert.NotContains(t, profile, "password")
}

func TestCrops_Lifecycle(t *testing.T) {
	api := newTestAPI(t, Options{})
	token := api.signup("ann", "pw")

	res := api.do(http.MethodGet, "/api/crops", token, "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `{"crops":[]}`, string(res.Body))

	id := api.createCrop(token, tomatoBody)

	res = api.do(http.MethodGet, "/api/crops/"+id, token, "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `{"crops":[{"id":"`+id+`","name":"Tomato","variety":"Roma",
		"plant_date":"2024-03-01T00:00:00Z","germination_days":7,"harvest_days":80,
		"planting_depth":null,"row_spacing":60,"seed_spacing":null}]}`, string(res.Body))

	res = api.do(http.MethodPut, "/api/crops/"+id, token, `{"id":"`+id+`","variety":"San Marzano","owner":"x"}`)
	require.Equal(t, http.StatusOK, res.Status, "body: %s", res.Body)
	assert.Empty(t, res.Body)

	crop := api.do(http.MethodGet, "/api/crops/"+id, token, "").JSON(t)["crops"].([]any)[0].(map[string]any)
	assert.Equal(t, "San Marzano", crop["variety"])
	assert.Equal(t, "Tomato", crop["name"])

	res = api.do(http.MethodDelete, "/api/crops/"+id, token, "")
	require.Equal(t, http.StatusNoContent, res.Status)

	res = api.do(http.MethodGet, "/api/crops/"+id, token, "")
	assert.JSONEq(t, `{"crops":[]}`, string(res.Body))
}

func TestCrops_Validation(t *testing.T) {
	api := newTestAPI(t, Options{})
	token := api.signup("ann", "pw")
	id := api.createCrop(token, tomatoBody)

	requireError(t, api.do(http.MethodPost, "/api/crops", token, `{"name":"Pea"}`), http.StatusBadRequest,
		"The request is missing the following field(s): 'variety', 'plant_date', 'germination_days', 'harvest_days'")

	requireError(t, api.do(http.MethodPost, "/api/crops", token,
		`{"name":"Pea","variety":"x","plant_date":"2024-01-01","germination_days":"7","harvest_days":60}`),
		http.StatusUnprocessableEntity, "Incorrect field types for the following fields: 'germination_days'")

	requireError(t, api.do(http.MethodPut, "/api/crops/"+id, token, `{"id":"other","name":"Pea"}`),
		http.StatusBadRequest, "Please ensure the correctness of the ids")
	requireError(t, api.do(http.MethodPut, "/api/crops/"+id, token, `{"name":"Pea"}`),
		http.StatusBadRequest, "Please ensure the correctness of the ids")
}

func TestCrops_OwnershipIsolation(t *testing.T) {
	api := newTestAPI(t, Options{})
	ann := api.signup("ann", "pw")
	bob := api.signup("bob", "pw")

	id := api.createCrop(ann, tomatoBody)

	res := api.do(http.MethodGet, "/api/crops", bob, "")
	assert.JSONEq(t, `{"crops":[]}`, string(res.Body))

	res = api.do(http.MethodGet, "/api/crops/"+id, bob, "")
	assert.JSONEq(t, `{"crops":[]}`, string(res.Body))

	res = api.do(http.MethodPut, "/api/crops/"+id, bob, `{"id":"`+id+`","name":"Stolen"}`)
	assert.Equal(t, http.StatusOK, res.Status)

	res = api.do(http.MethodDelete, "/api/crops/"+id, bob, "")
	assert.Equal(t, http.StatusNoContent, res.Status)

	crops := api.do(http.MethodGet, "/api/crops/"+id, ann, "").JSON(t)["crops"].([]any)
	require.Len(t, crops, 1)
	assert.Equal(t, "Tomato", crops[0].(map[string]any)["name"])
}

func TestJournal_Lifecycle(t *testing.T) {
	api := newTestAPI(t, Options{})
	token := api.signup("ann", "pw")
	cropID := api.createCrop(token, tomatoBody)

	res := api.do(http.MethodPost, "/api/journal", token,
		`{"date":"2024-03-05","scope":"`+cropID+`","text":"sprouted"}`)
	require.Equal(t, http.StatusCreated, res.Status, "body: %s", res.Body)
	id, _ := res.JSON(t)["id"].(string)
	require.NotEmpty(t, id)

	res = api.do(http.MethodPut, "/api/journal/"+id, token, `{"id":"`+id+`","text":"first leaves"}`)
	require.Equal(t, http.StatusOK, res.Status, "body: %s", res.Body)

	res = api.do(http.MethodGet, "/api/journal/"+id, token, "")
	assert.JSONEq(t, `{"journal":[{"id":"`+id+`","date":"2024-03-05T00:00:00Z","scope":"`+cropID+`","text":"first leaves"}]}`,
		string(res.Body))

	res = api.do(http.MethodGet, "/api/journal", token, "")
	assert.Len(t, res.JSON(t)["journal"], 1)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/journal/"+id, token, "").Status)
	assert.JSONEq(t, `{"journal":[]}`, string(api.do(http.MethodGet, "/api/journal", token, "").Body))
}

func TestJournal_ScopeMustBeOwnCrop(t *testing.T) {
	api := newTestAPI(t, Options{})
	ann := api.signup("ann", "pw")
	bob := api.signup("bob", "pw")
	annCrop := api.createCrop(ann, tomatoBody)
	bobCrop := api.createCrop(bob, tomatoBody)

	requireError(t, api.do(http.MethodPost, "/api/journal", bob,
		`{"date":"2024-03-05","scope":"`+annCrop+`","text":"mine now"}`),
		http.StatusUnprocessableEntity, "scope must reference one of your records")

	res := api.do(http.MethodPost, "/api/journal", bob,
		`{"date":"2024-03-05","scope":"`+bobCrop+`","text":"ok"}`)
	require.Equal(t, http.StatusCreated, res.Status)
	id, _ := res.JSON(t)["id"].(string)

	requireError(t, api.do(http.MethodPut, "/api/journal/"+id, bob, `{"id":"`+id+`","scope":"`+annCrop+`"}`),
		http.StatusUnprocessableEntity, "scope must reference one of your records")

	requireError(t, api.do(http.MethodPost, "/api/journal", bob, `{"date":"2024-03-05","scope":"`+bobCrop+`"}`),
		http.StatusBadRequest, "The request is missing the following field(s): 'text'")
}

func TestHealthAndMetrics(t *testing.T) {
	api := newTestAPI(t, Options{})

	res := api.do(http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `{"status":"ok"}`, string(res.Body))

	api.do(http.MethodGet, "/api/crops", "", "")

	res = api.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, res.Status)
	body := string(res.Body)
	assert.True(t, strings.Contains(body, "gardenkeeper_http_requests_total"), "metrics: %s", body)
	assert.True(t, strings.Contains(body, `status="401"`), "metrics: %s", body)
	assert.True(t, strings.Contains(body, "go_goroutines"), "metrics: %s", body)
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	api := newTestAPI(t, Options{})

	requireError(t, api.do(http.MethodGet, "/nope", "", ""), http.StatusNotFound, "Not Found")
	requireError(t, api.do(http.MethodPatch, "/healthz", "", ""), http.StatusMethodNotAllowed, "Method Not Allowed")
}

func TestAuthRateLimit(t *testing.T) {
	api := newTestAPI(t, Options{AuthRateLimit: 2})

	for i := 0; i < 2; i++ {
		requireError(t, api.do(http.MethodPost, "/api/auth/login", "", `{}`), http.StatusUnauthorized, "Unauthorized")
	}
	requireError(t, api.do(http.MethodPost, "/api/auth/login", "", `{}`), http.StatusTooManyRequests, "Too Many Requests")
}
