package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rohits-web03/usefulutilities/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent int
	fail error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent++
	return nil
}

func newTestServer(t *testing.T, mail *fakeMailer) *httptest.Server {
	t.Helper()
	db, err := repositories.ConnectDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	srv := httptest.NewServer(SetupRouter(db, mail))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	mail := &fakeMailer{}
	srv := newTestServer(t, mail)

	resp, body := postJSON(t, srv.URL+"/api/signup", map[string]any{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Regexp(t, `^[0-9A-Z]{6}$`, body["code"])
	userID := body["userId"].(float64)
	assert.NotZero(t, userID)
	assert.Equal(t, 1, mail.sent)

	// Login is gated on confirmation.
	resp, body = postJSON(t, srv.URL+"/api/login", map[string]any{
		"email":    "a@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Account not confirmed", body["error"])

	resp, body = postJSON(t, srv.URL+"/api/confirm", map[string]any{"userId": userID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = postJSON(t, srv.URL+"/api/login", map[string]any{
		"email":    "a@x.com",
		"password": "pw123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, userID, body["userId"])
	assert.Equal(t, "alice", body["username"])

	resp, body = postJSON(t, srv.URL+"/api/login", map[string]any{
		"email":    "a@x.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid password", body["error"])
}

func TestSignupDuplicateEmailOverHTTP(t *testing.T) {
	srv := newTestServer(t, &fakeMailer{})

	input := map[string]any{"username": "bob", "email": "b@x.com", "password": "pw"}
	resp, _ := postJSON(t, srv.URL+"/api/signup", input)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := postJSON(t, srv.URL+"/api/signup", input)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists with this email", body["error"])
}

func TestSignupDeliveryFailureOverHTTP(t *testing.T) {
	srv := newTestServer(t, &fakeMailer{fail: assert.AnError})

	resp, _ := postJSON(t, srv.URL+"/api/signup", map[string]any{
		"username": "carol", "email": "c@x.com", "password": "pw",
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRecoverOverHTTP(t *testing.T) {
	mail := &fakeMailer{}
	srv := newTestServer(t, mail)

	// No signup happened; recovery dispatches regardless.
	resp, body := postJSON(t, srv.URL+"/api/recover", map[string]any{"email": "g@x.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Regexp(t, `^[0-9A-Z]{6}$`, body["code"])
	assert.Equal(t, 1, mail.sent)
}

func TestDownloadCounterOverHTTP(t *testing.T) {
	srv := newTestServer(t, &fakeMailer{})

	resp, body := getJSON(t, srv.URL+"/api/downloads/unseen")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["downloads"])

	for i := 0; i < 3; i++ {
		resp, body = postJSON(t, srv.URL+"/api/download", map[string]any{"utilityName": "zipper"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])
	}

	resp, body = getJSON(t, srv.URL+"/api/downloads/zipper")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, body["downloads"])
}

func TestReviewsOverHTTP(t *testing.T) {
	srv := newTestServer(t, &fakeMailer{})

	resp, body := postJSON(t, srv.URL+"/api/signup", map[string]any{
		"username": "dana", "email": "d@x.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	userID := body["userId"].(float64)

	review := map[string]any{
		"userId":      userID,
		"utilityName": "pixel-tool",
		"rating":      4,
		"review":      "solid",
	}

	resp, body = postJSON(t, srv.URL+"/api/review", review)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Utility not found", body["error"])

	resp, _ = postJSON(t, srv.URL+"/api/download", map[string]any{"utilityName": "pixel-tool"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = postJSON(t, srv.URL+"/api/review", review)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = getJSON(t, srv.URL+"/api/reviews/pixel-tool")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entries := body["reviews"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.EqualValues(t, 4, entry["rating"])
	assert.Equal(t, "solid", entry["review"])
	assert.Equal(t, "dana", entry["username"])

	resp, body = getJSON(t, srv.URL+"/api/reviews/unknown")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["reviews"])
}

func TestInvalidInputOverHTTP(t *testing.T) {
	srv := newTestServer(t, &fakeMailer{})

	resp, body := postJSON(t, srv.URL+"/api/signup", map[string]any{
		"username": "", "email": "", "password": "",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid input", body["error"])

	resp, body = postJSON(t, srv.URL+"/api/login", map[string]any{"email": "a@x.com"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid input", body["error"])
}

func TestHealthAndRequestID(t *testing.T) {
	srv := newTestServer(t, &fakeMailer{})

	resp, err := http.Get(fmt.Sprintf("%s/health", srv.URL))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
