package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio-backoffice/internal/config"
	"studio-backoffice/internal/models"
	"studio-backoffice/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminEmail    = "admin@studio.local"
	testAdminPassword = "Admin123!"
	testTokenSecret   = "test-service-secret"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Fields  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	} `json:"error"`
}

type testApp struct {
	t       *testing.T
	router  *gin.Engine
	store   *storage.Store
	cookies []*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	return newTestAppAutoApply(t, false)
}

func newTestAppAutoApply(t *testing.T, autoApply bool) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBDriver:           "sqlite",
		DBDSN:              fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		SessionSecret:      "test-session-secret",
		ServiceTokenSecret: testTokenSecret,
		AdminEmail:         testAdminEmail,
		AdminPassword:      testAdminPassword,
		AutoApplyEnabled:   autoApply,
	}

	store, err := storage.Open(cfg, zap.NewNop())
	require.NoError(t, err)

	return &testApp{
		t:      t,
		router: NewRouter(cfg, store, zap.NewNop()),
		store:  store,
	}
}

func (a *testApp) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if got := w.Result().Cookies(); len(got) > 0 {
		a.cookies = got
	}

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (a *testApp) login(email, password string) {
	a.t.Helper()
	w, env := a.do(http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code)
	require.True(a.t, env.Success)
}

func (a *testApp) createUser(email string, role models.UserRole) *models.User {
	a.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	require.NoError(a.t, err)
	u := &models.User{Email: email, PasswordHash: string(hash), Name: "Test", Role: role}
	require.NoError(a.t, a.store.CreateUser(u))
	return u
}

func serviceToken(t *testing.T, secret string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"service": "campaign-analyzer"})
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	w, _ := a.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicLeadSubmission(t *testing.T) {
	a := newTestApp(t)

	w, env := a.do(http.MethodPost, "/api/leads", gin.H{
		"name":        "Jana Novakova",
		"email":       "jana@example.cz",
		"companyName": "Novak Design",
		"projectType": "website",
		"message":     "We need a full redesign of our site.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)

	var data struct {
		PublicID string `json:"public_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.PublicID)

	leads, err := a.store.ListLeads(storage.LeadFilter{})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, models.LeadNew, leads[0].Status)
}

// Bad company + bad email: both field errors come back and no record exists.
func TestPublicLeadValidationRejects(t *testing.T) {
	a := newTestApp(t)

	w, env := a.do(http.MethodPost, "/api/leads", gin.H{
		"name":        "Jana",
		"email":       "not-an-email",
		"companyName": "",
		"message":     "please quote a redesign for us",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.False(t, env.Success)
	assert.Equal(t, "validation_error", env.Error.Code)
	require.Len(t, env.Error.Fields, 2)

	fields := []string{env.Error.Fields[0].Field, env.Error.Fields[1].Field}
	assert.ElementsMatch(t, []string{"email", "companyName"}, fields)

	leads, err := a.store.ListLeads(storage.LeadFilter{})
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestAdminEndpointsRequireSession(t *testing.T) {
	a := newTestApp(t)
	w, env := a.do(http.MethodGet, "/api/admin/leads", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", env.Error.Code)
}

func TestCurrentUserEndpoint(t *testing.T) {
	a := newTestApp(t)

	w, _ := a.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	a.login(testAdminEmail, testAdminPassword)
	w, env := a.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var u models.User
	require.NoError(t, json.Unmarshal(env.Data, &u))
	assert.Equal(t, testAdminEmail, u.Email)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	a := newTestApp(t)
	w, _ := a.do(http.MethodPost, "/api/auth/login", gin.H{
		"email": testAdminEmail, "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTaskClaimConflictOverAPI(t *testing.T) {
	a := newTestApp(t)
	a.login(testAdminEmail, testAdminPassword)

	w, env := a.do(http.MethodPost, "/api/admin/tasks", gin.H{
		"title": "Prepare launch checklist", "priority": "high",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(env.Data, &task))

	w, _ = a.do(http.MethodPost, fmt.Sprintf("/api/admin/tasks/%d/claim", task.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// second claim for the same task, same session: conflict, not overwrite
	w, env = a.do(http.MethodPost, fmt.Sprintf("/api/admin/tasks/%d/claim", task.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "already_assigned", env.Error.Code)

	w, _ = a.do(http.MethodPost, fmt.Sprintf("/api/admin/tasks/%d/release", task.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaffCannotCreateTasks(t *testing.T) {
	a := newTestApp(t)
	a.createUser("staff@studio.local", models.RoleStaff)
	a.login("staff@studio.local", "Password1!")

	w, env := a.do(http.MethodPost, "/api/admin/tasks", gin.H{"title": "sneaky task"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", env.Error.Code)
}

func TestRecommendationApproveThenRejectOverAPI(t *testing.T) {
	a := newTestApp(t)

	rec := &models.Recommendation{
		Type: "raise_budget", Priority: models.RecMedium, Reasoning: "campaign is capped daily",
	}
	require.NoError(t, a.store.CreateRecommendation(rec))

	a.login(testAdminEmail, testAdminPassword)

	w, _ := a.do(http.MethodPost, fmt.Sprintf("/api/admin/recommendations/%d/approve", rec.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := a.do(http.MethodPost, fmt.Sprintf("/api/admin/recommendations/%d/reject", rec.ID),
		gin.H{"reason": "changed my mind"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "already_resolved", env.Error.Code)

	got, err := a.store.GetRecommendation(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RecApproved, got.Status)
}

func TestAutomationRequiresServiceToken(t *testing.T) {
	a := newTestApp(t)
	w, env := a.do(http.MethodPost, "/api/automation/recommendations", gin.H{
		"type": "pause_keyword", "priority": "low", "reasoning": "no conversions",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", env.Error.Code)
}

func TestAnalyzerSubmitsRecommendation(t *testing.T) {
	a := newTestApp(t)

	body, _ := json.Marshal(gin.H{
		"type": "pause_keyword", "priority": "low", "reasoning": "no conversions in 30 days",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/automation/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+serviceToken(t, testTokenSecret))

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	recs, err := a.store.ListRecommendations(storage.RecommendationFilter{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, models.RecPending, recs[0].Status)
}

func submitRecommendation(t *testing.T, a *testApp, body gin.H) envelope {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/automation/recommendations", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+serviceToken(t, testTokenSecret))

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAutoApplyAppliesEligibleSubmission(t *testing.T) {
	a := newTestAppAutoApply(t, true)

	env := submitRecommendation(t, a, gin.H{
		"type": "pause_keyword", "priority": "low",
		"reasoning": "no conversions in 30 days", "auto_applicable": true,
	})

	var rec models.Recommendation
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, models.RecAutoApplied, rec.Status)

	stored, err := a.store.GetRecommendation(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RecAutoApplied, stored.Status)
}

func TestAutoApplySkipsCriticalPriority(t *testing.T) {
	a := newTestAppAutoApply(t, true)

	env := submitRecommendation(t, a, gin.H{
		"type": "raise_budget", "priority": "critical",
		"reasoning": "budget exhausted before noon", "auto_applicable": true,
	})

	var rec models.Recommendation
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, models.RecPending, rec.Status)
}

func TestAutoApplySkipsNonApplicableSubmission(t *testing.T) {
	a := newTestAppAutoApply(t, true)

	env := submitRecommendation(t, a, gin.H{
		"type": "pause_keyword", "priority": "low",
		"reasoning": "no conversions in 30 days",
	})

	var rec models.Recommendation
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, models.RecPending, rec.Status)
}

func TestBlogPostDetailBySlug(t *testing.T) {
	a := newTestApp(t)
	a.login(testAdminEmail, testAdminPassword)

	w, _ := a.do(http.MethodPost, "/api/admin/blog", gin.H{
		"title": "Launch notes", "slug": "launch-notes",
		"body": "What shipped this week.", "published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = a.do(http.MethodPost, "/api/admin/blog", gin.H{
		"title": "Unfinished draft", "slug": "unfinished-draft",
		"body": "Still writing.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := a.do(http.MethodGet, "/api/blog/launch-notes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var post models.BlogPost
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, "Launch notes", post.Title)

	// Drafts and unknown slugs are indistinguishable from the outside.
	w, env = a.do(http.MethodGet, "/api/blog/unfinished-draft", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", env.Error.Code)

	w, _ = a.do(http.MethodGet, "/api/blog/no-such-post", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportsOverview(t *testing.T) {
	a := newTestApp(t)
	a.login(testAdminEmail, testAdminPassword)

	_, _ = a.do(http.MethodPost, "/api/admin/tasks", gin.H{"title": "First task"})

	w, env := a.do(http.MethodGet, "/api/admin/reports/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Tasks struct {
			Total    int `json:"total"`
			ByStatus map[string]int
		} `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Tasks.Total)
}

func TestLeadStatusAndArchiveOverAPI(t *testing.T) {
	a := newTestApp(t)

	lead := &models.Lead{
		PublicID: "test-public-id", Name: "J", Email: "j@x.cz",
		Company: "X", Type: models.LeadWebsite, Message: "a long enough message",
	}
	require.NoError(t, a.store.CreateLead(lead))

	a.login(testAdminEmail, testAdminPassword)

	w, _ := a.do(http.MethodPatch, fmt.Sprintf("/api/admin/leads/%d/status", lead.ID),
		gin.H{"status": "contacted"})
	require.Equal(t, http.StatusOK, w.Code)

	got, err := a.store.GetLead(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeadContacted, got.Status)
	assert.NotNil(t, got.ContactedAt)

	w, _ = a.do(http.MethodDelete, fmt.Sprintf("/api/admin/leads/%d", lead.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// archived leads disappear from listings but the row survives
	_, err = a.store.GetLead(lead.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
