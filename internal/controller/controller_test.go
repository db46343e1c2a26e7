package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"stepwise_backend/internal/config"
	"stepwise_backend/internal/llm"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/repository"
	"stepwise_backend/internal/service"
	"stepwise_backend/internal/util"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fixture struct {
	router *gin.Engine
	mock   *llm.MockProvider
	user   *model.User
}

// newFixture 离线存储 + mock 模型，user 非空时模拟已登录
func newFixture(t *testing.T, user *model.User) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock := llm.NewMockProvider()
	offline := repository.NewOffline()
	storage, err := service.NewStorageService(&config.StorageConfig{Type: "local", LocalPath: t.TempDir()})
	require.NoError(t, err)

	problems := NewProblemController(
		service.NewProblemService(offline, nil),
		service.NewExtractionService(mock, 0),
		service.NewHintService(mock, 0),
		service.NewGuidingService(mock, 0),
	)
	progress := NewProgressController(service.NewProgressService(offline, offline))
	upload := NewUploadController(service.NewUploadService(storage))
	auth := NewAuthController(&config.Config{Auth: config.AuthConfig{CookieName: "sid"}})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != nil {
			c.Set(util.ContextUserKey, user)
		}
		c.Next()
	})
	r.GET("/api/auth/me", auth.Me)
	r.POST("/api/auth/logout", auth.Logout)
	r.GET("/api/problems", problems.List)
	r.POST("/api/problems", problems.Create)
	r.GET("/api/problems/:id", problems.GetByID)
	r.POST("/api/problems/hint", problems.Hint)
	r.POST("/api/problems/extract-steps", problems.ExtractSteps)
	r.POST("/api/problems/guiding-questions", problems.GuidingQuestions)
	r.POST("/api/problems/:id/progress/view", progress.RecordView)
	r.POST("/api/problems/:id/progress/steps-revealed", progress.RecordStepsRevealed)
	r.GET("/api/progress", progress.GetProgress)
	r.POST("/api/upload-images", upload.Upload)

	return &fixture{router: r, mock: mock, user: user}
}

func (f *fixture) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

var steps = []model.Step{
	{ID: "step-1", Text: "$x + 1 = 3$"},
	{ID: "step-2", Text: "$x = 2$"},
}

func TestHint_Modes(t *testing.T) {
	f := newFixture(t, nil)
	f.mock.AddText("移项即可。")

	w, env := f.do(t, http.MethodPost, "/api/problems/hint", gin.H{
		"steps": steps, "mode": "why", "selectedStepId": "step-2",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hint":"移项即可。"}`, string(env.Data))

	w, env = f.do(t, http.MethodPost, "/api/problems/hint", gin.H{
		"steps": steps, "mode": "next", "selectedStepId": "step-7",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, util.ErrStepNotFound.Error(), env.Message)

	w, env = f.do(t, http.MethodPost, "/api/problems/hint", gin.H{
		"steps": steps, "mode": "explainCondition",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, util.ErrConditionRequired.Error(), env.Message)

	w, _ = f.do(t, http.MethodPost, "/api/problems/hint", gin.H{"steps": steps, "mode": "answer"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = f.do(t, http.MethodPost, "/api/problems/hint", gin.H{"steps": steps})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHint_ModelFailureIs500(t *testing.T) {
	f := newFixture(t, nil)
	f.mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	w, _ := f.do(t, http.MethodPost, "/api/problems/hint", gin.H{
		"steps": steps, "mode": "why", "selectedStepId": "step-1",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExtractSteps(t *testing.T) {
	f := newFixture(t, &model.User{OpenID: "u"})
	require.NoError(t, f.mock.AddJSON(gin.H{
		"problemText": "解方程", "problemTextEn": "Solve", "conditions": []string{},
		"steps": []gin.H{{"text": "$x=2$"}},
	}))

	w, env := f.do(t, http.MethodPost, "/api/problems/extract-steps", gin.H{"problemImageUrl": "https://x/p.png"})
	require.Equal(t, http.StatusOK, w.Code)

	var result service.ExtractionResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "step-1", result.Steps[0].ID)
}

func TestGuidingQuestions(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.mock.AddJSON(gin.H{"questions": []gin.H{
		{"question": "第一步做什么？", "options": []string{"移项", "通分"}, "correctIndex": 0, "explanation": "先移项"},
	}}))

	w, env := f.do(t, http.MethodPost, "/api/problems/guiding-questions", gin.H{"steps": steps})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Questions []service.GuidingQuestion `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Questions, 1)
}

func TestProblems_OfflineStore(t *testing.T) {
	f := newFixture(t, &model.User{OpenID: "owner", Role: model.RoleAdmin})

	w, env := f.do(t, http.MethodGet, "/api/problems", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	w, _ = f.do(t, http.MethodGet, "/api/problems/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = f.do(t, http.MethodGet, "/api/problems/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = f.do(t, http.MethodPost, "/api/problems", gin.H{"steps": steps})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w, _ = f.do(t, http.MethodPost, "/api/problems/1/progress/view", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w, env = f.do(t, http.MethodGet, "/api/progress", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalProblemsViewed":0,"totalHintsRequested":0,"totalConditionsClicked":0,"totalStepsRevealed":0,"totalSolutionsViewed":0}`, string(env.Data))
}

func TestCreateProblem_Forbidden(t *testing.T) {
	f := newFixture(t, &model.User{OpenID: "student", Role: model.RoleUser})

	w, _ := f.do(t, http.MethodPost, "/api/problems", gin.H{"steps": steps})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateProblem_DuplicateStepIDs(t *testing.T) {
	f := newFixture(t, &model.User{OpenID: "owner", Role: model.RoleAdmin})

	w, _ := f.do(t, http.MethodPost, "/api/problems", gin.H{"steps": []gin.H{
		{"id": "step-1", "text": "a"},
		{"id": "step-1", "text": "b"},
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStepsRevealed_Validation(t *testing.T) {
	f := newFixture(t, &model.User{OpenID: "u"})

	w, _ := f.do(t, http.MethodPost, "/api/problems/1/progress/steps-revealed", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = f.do(t, http.MethodPost, "/api/problems/1/progress/steps-revealed", gin.H{"count": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeAndLogout(t *testing.T) {
	f := newFixture(t, nil)
	w, env := f.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", string(env.Data))

	w, env = f.do(t, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, string(env.Data))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "sid=;")

	f = newFixture(t, &model.User{OpenID: "u1", Name: "小明"})
	_, env = f.do(t, http.MethodGet, "/api/auth/me", nil)
	var user model.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "u1", user.OpenID)
}

func TestUploadImages(t *testing.T) {
	f := newFixture(t, &model.User{OpenID: "u"})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(util.UploadFieldSolution, "s.png")
	require.NoError(t, err)
	part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var result service.UploadResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Empty(t, result.ProblemImageURL)
	assert.Contains(t, result.SolutionImageKey, "problems/solution-")
	assert.Contains(t, result.SolutionImageURL, "/uploads/problems/solution-")
}
