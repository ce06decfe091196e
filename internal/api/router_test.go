package api_test

import (
	"net/http"
	"testing"

	"github.com/strikbal/rating-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_CORSPreflight(t *testing.T) {
	ts := testutil.NewTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.APIURL("/games"), nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Preflight succeeds without a session token
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PUT")
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "X-Authorization")
}

func TestRouter_CORSHeadersOnEveryResponse(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, _, token := testutil.NewUserBuilder().BuildWithSession(t, ts.DB.DB)

	// Authenticated success
	resp := testutil.DoJSON(t, http.MethodGet, ts.APIURL("/players"), token, nil)
	defer resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	// Rejection responses carry the headers too
	resp = testutil.DoJSON(t, http.MethodGet, ts.APIURL("/players"), "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, _, token := testutil.NewUserBuilder().BuildWithSession(t, ts.DB.DB)

	resp := testutil.DoJSON(t, http.MethodPatch, ts.APIURL("/games"), token, nil)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusMethodNotAllowed, "method not allowed")
}

func TestRouter_Health(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.Server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_UnknownRoute(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.Server.URL + "/api/v1/nonexistent")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
