package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/rover/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.MaxCommandBytes = 1024
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func postJSON(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/rover", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, s *Server, command string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"masterCommand": {command}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestAPIRover(t *testing.T) {
	s := newTestServer(t)

	t.Run("end to end", func(t *testing.T) {
		rec := postJSON(t, s, `{"command":"5 5 1 2 N LMLMLMLMM"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Run-ID"))

		var res roverRes
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "1 3 N", res.Output)
		assert.Len(t, res.Trajectory, 9)
		assert.Empty(t, res.Resets)
		assert.Equal(t, rec.Header().Get("X-Run-ID"), res.RunID)
	})

	t.Run("boundary reset is reported", func(t *testing.T) {
		rec := postJSON(t, s, `{"command":"5 5 5 5 N M"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "5 5 N", body["output"])
		resets, ok := body["resets"].([]any)
		require.True(t, ok)
		assert.Len(t, resets, 1)
	})

	t.Run("empty instructions", func(t *testing.T) {
		rec := postJSON(t, s, `{"command":"5 5 3 3 E "}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"output":"3 3 E"`)
		assert.Contains(t, rec.Body.String(), `"trajectory":[]`)
	})

	t.Run("malformed command", func(t *testing.T) {
		rec := postJSON(t, s, `{"command":"5 5 1 2 N MX"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var res malformedRes
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "malformed_command", res.Error)
		assert.Equal(t, "instructions", string(res.Rule))
		assert.NotContains(t, rec.Body.String(), "trajectory")
	})

	t.Run("bad json", func(t *testing.T) {
		rec := postJSON(t, s, `{"command":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("too large", func(t *testing.T) {
		rec := postJSON(t, s, `{"command":"5 5 0 0 N `+strings.Repeat("R", 2048)+`"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/rover", nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, config.Default().ClientOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestForm(t *testing.T) {
	s := newTestServer(t)

	t.Run("renders form", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), `name="masterCommand"`)
	})

	t.Run("renders result", func(t *testing.T) {
		rec := postForm(t, s, "5 5 1 2 N LMLMLMLMM")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<p class="output">1 3 N</p>`)
		assert.Contains(t, rec.Body.String(), "0 boundary resets")
	})

	t.Run("renders rejection", func(t *testing.T) {
		rec := postForm(t, s, "5 5 1 2 Q M")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-rule="heading"`)
		assert.NotContains(t, rec.Body.String(), `class="output"`)
	})
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found","path":"/nope"}`, rec.Body.String())
}
