package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"stepwise_backend/internal/config"
	"stepwise_backend/internal/llm"
	"stepwise_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: "test"},
		Database:  config.DatabaseConfig{Driver: driver, Path: filepath.Join(dir, "stepwise.db")},
		JWT:       config.JWTConfig{Secret: "0123456789abcdef0123456789abcdef", ExpireTime: time.Hour},
		Auth:      config.AuthConfig{CookieName: "app_session_id", OwnerOpenID: "owner"},
		Storage:   config.StorageConfig{Type: "local", LocalPath: filepath.Join(dir, "uploads"), MaxUploadMB: 1},
		AI:        config.AIConfig{Provider: "mock"},
		Log:       config.LogConfig{File: filepath.Join(dir, "app.log")},
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1},
		ForceMigrate: true,
	}
}

func newTestApp(t *testing.T, driver string) *App {
	t.Helper()
	application, err := NewApp(newTestConfig(t, driver))
	require.NoError(t, err)
	t.Cleanup(application.Close)
	return application
}

func call(t *testing.T, a *App, method, path, token string, body any) (int, json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &env)
	return w.Code, env.Data
}

func login(t *testing.T, a *App, openID string) string {
	t.Helper()
	_, token, err := a.Services.Auth.Login(t.Context(), model.Identity{OpenID: openID})
	require.NoError(t, err)
	return token
}

func TestApp_ProblemLifecycle(t *testing.T) {
	a := newTestApp(t, "sqlite")
	admin := login(t, a, "owner")
	student := login(t, a, "student")

	steps := []model.Step{{ID: "step-1", Text: "$x=1$"}, {ID: "step-2", Text: "$x+1=2$"}}

	code, _ := call(t, a, http.MethodPost, "/api/problems", "", map[string]any{"steps": steps})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = call(t, a, http.MethodPost, "/api/problems", student, map[string]any{"steps": steps})
	assert.Equal(t, http.StatusForbidden, code)

	code, data := call(t, a, http.MethodPost, "/api/problems", admin, map[string]any{
		"title": "一元一次方程", "steps": steps, "conditions": []string{"$x$ 为整数"},
	})
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &created))

	code, data = call(t, a, http.MethodGet, "/api/problems/1", "", nil)
	require.Equal(t, http.StatusOK, code)
	var problem model.Problem
	require.NoError(t, json.Unmarshal(data, &problem))
	assert.Equal(t, created.ID, problem.ID)
	assert.Equal(t, model.Steps(steps), problem.Steps)

	code, _ = call(t, a, http.MethodGet, "/api/problems/99", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestApp_ProgressFlow(t *testing.T) {
	a := newTestApp(t, "sqlite")
	admin := login(t, a, "owner")
	student := login(t, a, "student")

	code, _ := call(t, a, http.MethodPost, "/api/problems", admin, map[string]any{"steps": []model.Step{{ID: "step-1", Text: "1"}}})
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, a, http.MethodPost, "/api/problems/1/progress/view", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	for _, path := range []string{"view", "hint", "hint", "condition-click", "solution-view"} {
		code, _ = call(t, a, http.MethodPost, "/api/problems/1/progress/"+path, student, nil)
		require.Equal(t, http.StatusOK, code, path)
	}
	code, _ = call(t, a, http.MethodPost, "/api/problems/1/progress/steps-revealed", student, map[string]int{"count": 4})
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, a, http.MethodPost, "/api/problems/1/progress/steps-revealed", student, map[string]int{"count": 2})
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, a, http.MethodPost, "/api/problems/2/progress/hint", student, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, data := call(t, a, http.MethodGet, "/api/progress", student, nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"totalProblemsViewed":1,"totalHintsRequested":2,"totalConditionsClicked":1,"totalStepsRevealed":4,"totalSolutionsViewed":1}`, string(data))

	code, data = call(t, a, http.MethodGet, "/api/problems/1/progress", student, nil)
	require.Equal(t, http.StatusOK, code)
	var row model.UserProgress
	require.NoError(t, json.Unmarshal(data, &row))
	assert.Equal(t, 4, row.StepsRevealed)
}

func TestApp_HintThroughRouter(t *testing.T) {
	a := newTestApp(t, "sqlite")
	mock := llm.NewMockProvider()
	mock.AddText("想想等式两边同时减 1。")
	a.Services.Hint.LLM = mock

	code, data := call(t, a, http.MethodPost, "/api/problems/hint", "", map[string]any{
		"steps":          []model.Step{{ID: "step-1", Text: "$x+1=2$"}, {ID: "step-2", Text: "$x=1$"}},
		"mode":           "next",
		"selectedStepId": "step-1",
	})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"hint":"想想等式两边同时减 1。"}`, string(data))
}

func TestApp_Offline(t *testing.T) {
	a := newTestApp(t, "")
	assert.Nil(t, a.DB)

	code, data := call(t, a, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(data), `"database":"offline"`)

	code, data = call(t, a, http.MethodGet, "/api/problems", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(data))

	code, data = call(t, a, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "null", string(data))
}

func TestApp_HealthAndMetrics(t *testing.T) {
	a := newTestApp(t, "sqlite")

	code, data := call(t, a, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(data), `"database":"up"`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
