package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusive-jobs/server/internal/generation"
	"github.com/inclusive-jobs/server/internal/repository/memory"
	"github.com/inclusive-jobs/server/internal/service"
	storageMemory "github.com/inclusive-jobs/server/internal/storage/memory"
	"github.com/inclusive-jobs/server/internal/testutil"
	"github.com/inclusive-jobs/server/internal/token"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testutil.MakeNoopLogger()

	userRepo := memory.NewUserRepository()
	sessionRepo := memory.NewSessionRepository()
	catalogRepo := memory.NewCatalogRepository()
	resumeRepo := memory.NewResumeRepository()
	applicationRepo := memory.NewApplicationRepository()
	chatRepo := memory.NewChatRepository()
	forumRepo := memory.NewForumRepository()
	supportRepo := memory.NewSupportRepository()

	tokenManager := token.NewJWT("test-secret")
	storageClient := storageMemory.NewStorage()
	generator := generation.NewDisabled()

	authService := service.NewAuth(userRepo, sessionRepo, storageClient, tokenManager, log)
	subscriptionService := service.NewSubscription(userRepo, sessionRepo, false, log)
	catalogService := service.NewCatalog(catalogRepo, userRepo, generator, subscriptionService, log)
	resumeService := service.NewResume(resumeRepo, userRepo, storageClient, generator, subscriptionService, log)
	applicationService := service.NewApplications(applicationRepo, catalogRepo, resumeRepo, log)
	assistantService := service.NewAssistant(chatRepo, userRepo, generator, log)
	forumService := service.NewForum(forumRepo, userRepo, log)
	supportService := service.NewSupport(supportRepo, log)

	r := New(
		authService,
		catalogService,
		resumeService,
		applicationService,
		subscriptionService,
		assistantService,
		forumService,
		supportService,
		tokenManager,
		log,
	)

	return r.Register()
}

func doJSON(t *testing.T, engine *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	return recorder
}

func TestRouter_PublicRoutes(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, http.StatusOK, doJSON(t, engine, http.MethodGet, "/api/jobs", "", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(t, engine, http.MethodGet, "/api/forum", "", nil).Code)
	assert.Equal(t, http.StatusCreated, doJSON(t, engine, http.MethodPost, "/api/support", "", map[string]string{
		"name":    "Анна",
		"email":   "anna@example.com",
		"message": "Вопрос по регистрации",
	}).Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	engine := newTestEngine(t)

	protected := []struct {
		method string
		url    string
	}{
		{http.MethodPost, "/api/jobs"},
		{http.MethodPost, "/api/resumes/generate"},
		{http.MethodGet, "/api/applications"},
		{http.MethodPost, "/api/subscription"},
		{http.MethodPost, "/api/assistant/chat"},
		{http.MethodPost, "/api/forum"},
	}

	for _, route := range protected {
		recorder := doJSON(t, engine, route.method, route.url, "", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "%s %s", route.method, route.url)
	}
}

func TestRouter_EmployerFlow(t *testing.T) {
	engine := newTestEngine(t)

	register := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", map[string]string{
		"type":        "employer",
		"fullName":    "ТОО Ромашка",
		"email":       "hr@romashka.kz",
		"companyName": "Ромашка",
	})
	require.Equal(t, http.StatusCreated, register.Code)

	var auth struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(register.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.AccessToken)

	posted := doJSON(t, engine, http.MethodPost, "/api/jobs", auth.AccessToken, map[string]any{
		"title":       "Оператор чата",
		"format":      "remote",
		"salary":      180000,
		"description": "Поддержка клиентов в чате",
		"features":    []string{"Без звонков", "Только текст"},
	})
	require.Equal(t, http.StatusCreated, posted.Code)

	list := doJSON(t, engine, http.MethodGet, "/api/jobs?format=remote", "", nil)
	require.Equal(t, http.StatusOK, list.Code)

	var jobs []struct {
		Title   string `json:"title"`
		Company string `json:"company"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "Оператор чата", jobs[0].Title)
	assert.Equal(t, "Ромашка", jobs[0].Company)
}

func TestRouter_ApplyWithoutResumeConflicts(t *testing.T) {
	engine := newTestEngine(t)

	employer := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", map[string]string{
		"type":        "employer",
		"fullName":    "ТОО Ромашка",
		"email":       "hr@romashka.kz",
		"companyName": "Ромашка",
	})
	require.Equal(t, http.StatusCreated, employer.Code)

	var employerAuth struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(employer.Body.Bytes(), &employerAuth))

	posted := doJSON(t, engine, http.MethodPost, "/api/jobs", employerAuth.AccessToken, map[string]any{
		"title":       "Модератор",
		"format":      "remote",
		"salary":      200000,
		"description": "Проверка объявлений",
	})
	require.Equal(t, http.StatusCreated, posted.Code)

	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(posted.Body.Bytes(), &job))

	employee := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", map[string]string{
		"type":     "employee",
		"fullName": "Иван Петров",
		"email":    "ivan@example.com",
	})
	require.Equal(t, http.StatusCreated, employee.Code)

	var employeeAuth struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(employee.Body.Bytes(), &employeeAuth))

	apply := doJSON(t, engine, http.MethodPost, "/api/applications", employeeAuth.AccessToken, map[string]string{
		"jobId": job.ID,
	})
	assert.Equal(t, http.StatusConflict, apply.Code)
}
