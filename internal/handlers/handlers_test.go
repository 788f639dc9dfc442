package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dconn.dev/portfolio/internal/config"
	"dconn.dev/portfolio/internal/models"
	"dconn.dev/portfolio/internal/services"
)

func setupTest(t *testing.T) (http.Handler, *services.ViewService) {
	t.Helper()

	cfg := config.DefaultConfig()
	logger := zaptest.NewLogger(t)
	ps := services.NewProjectService(models.SeedProjects())
	vs := services.NewViewService(ps, cfg.Session.TTL, logger)

	return SetupRoutes(Deps{
		Config:   cfg,
		Logger:   logger,
		Projects: ps,
		Views:    vs,
	}), vs
}

// browser replays cookies between requests like a real browser would.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, h http.Handler) *browser {
	return &browser{t: t, handler: h, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) postSection(section string, htmx bool) *httptest.ResponseRecorder {
	form := url.Values{"section": {section}}
	req := httptest.NewRequest(http.MethodPost, "/section", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return b.do(req)
}

func highlighted(body string, s models.Section) bool {
	return strings.Contains(body, `data-section="`+string(s)+`" data-active="true"`)
}

func TestInitialPageShowsHome(t *testing.T) {
	h, vs := setupTest(t)
	b := newBrowser(t, h)

	w := b.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, `data-section-view="home"`)
	assert.True(t, highlighted(body, models.SectionHome))
	assert.False(t, highlighted(body, models.SectionProjects))
	assert.False(t, highlighted(body, models.SectionContact))
	assert.Equal(t, 3, strings.Count(body, "data-shape="))

	assert.Contains(t, b.cookies, "portfolio_session")
	assert.Equal(t, 1, vs.Len())
}

func TestSwitchToProjects(t *testing.T) {
	h, _ := setupTest(t)
	b := newBrowser(t, h)

	b.get("/")

	w := b.postSection("projects", false)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	body := b.get("/").Body.String()
	assert.True(t, highlighted(body, models.SectionProjects))
	assert.False(t, highlighted(body, models.SectionHome))
	assert.Equal(t, 3, strings.Count(body, "data-project-id="))

	creative := strings.Index(body, ">Creative Design</h3>")
	web := strings.Index(body, ">Web Development</h3>")
	mobile := strings.Index(body, ">Mobile App</h3>")
	require.True(t, creative >= 0 && web >= 0 && mobile >= 0)
	assert.Less(t, creative, web)
	assert.Less(t, web, mobile)
}

func TestSwitchEachSection(t *testing.T) {
	h, _ := setupTest(t)
	b := newBrowser(t, h)

	for _, s := range models.KnownSections() {
		b.postSection(string(s), false)
		body := b.get("/").Body.String()

		assert.Equal(t, 1, strings.Count(body, `data-active="true"`), "section %s", s)
		assert.True(t, highlighted(body, s), "section %s", s)
		assert.Contains(t, body, `data-section-view="`+string(s)+`"`)
	}
}

func TestSetSectionHTMXReturnsStageAndNav(t *testing.T) {
	h, _ := setupTest(t)
	b := newBrowser(t, h)
	b.get("/")

	w := b.postSection("contact", true)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.False(t, strings.HasPrefix(body, "<!doctype"))
	assert.True(t, strings.HasPrefix(body, `<div id="stage"`))
	assert.Contains(t, body, `data-section-view="contact"`)
	assert.NotContains(t, body, "data-shape=")

	// The nav comes back out of band, without its entrance animation.
	assert.Contains(t, body, `<nav id="nav" class="bg-white shadow-md p-4" hx-swap-oob="true">`)
	assert.NotContains(t, body, `p-4 m-nav"`)
	assert.True(t, highlighted(body, models.SectionContact))
}

func TestSetSectionHTMXSameSectionSkipsSwap(t *testing.T) {
	h, _ := setupTest(t)
	b := newBrowser(t, h)
	b.get("/")

	w := b.postSection("home", true)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "none", w.Header().Get("HX-Reswap"))
	assert.Empty(t, w.Body.String())

	w = b.postSection("projects", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, strings.Count(w.Body.String(), "data-project-id="))

	w = b.postSection("projects", true)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// Without htmx the page is always reloaded.
	w = b.postSection("projects", false)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, highlighted(b.get("/").Body.String(), models.SectionProjects))
}

func TestSetSectionUnknownRendersBlank(t *testing.T) {
	h, _ := setupTest(t)
	b := newBrowser(t, h)
	b.get("/")

	b.postSection("bogus", false)
	body := b.get("/").Body.String()

	assert.Contains(t, body, `<div id="stage" class="m-stage" data-key="bogus"></div>`)
	assert.NotContains(t, body, `data-active="true"`)
	assert.NotContains(t, body, "data-section-view=")
	// Decoration is unaffected.
	assert.Equal(t, 3, strings.Count(body, "data-shape="))
}

func TestContactSubmitIsNoop(t *testing.T) {
	h, _ := setupTest(t)
	b := newBrowser(t, h)
	b.postSection("contact", false)

	// A submitted contact form reloads the page with an empty query.
	w := b.get("/?")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, highlighted(w.Body.String(), models.SectionContact))
}

func TestSessionsAreIsolated(t *testing.T) {
	h, vs := setupTest(t)
	alice := newBrowser(t, h)
	bob := newBrowser(t, h)

	alice.get("/")
	bob.get("/")
	alice.postSection("projects", false)

	assert.True(t, highlighted(alice.get("/").Body.String(), models.SectionProjects))
	assert.True(t, highlighted(bob.get("/").Body.String(), models.SectionHome))
	assert.Equal(t, 2, vs.Len())
}

func TestUnknownCookieStartsNewSession(t *testing.T) {
	h, vs := setupTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "portfolio_session", Value: "expired"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "expired", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 1, vs.Len())
}

func TestSessionCookieIsRefreshed(t *testing.T) {
	h, vs := setupTest(t)
	b := newBrowser(t, h)

	first := b.get("/").Result().Cookies()
	require.Len(t, first, 1)
	id := first[0].Value

	for _, w := range []*httptest.ResponseRecorder{
		b.postSection("projects", true),
		b.get("/"),
		b.get("/api/state"),
	} {
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, id, cookies[0].Value)
		assert.Equal(t, 1800, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
	}
	assert.Equal(t, 1, vs.Len())
}

func TestFragment(t *testing.T) {
	h, _ := setupTest(t)
	b := newBrowser(t, h)

	w := b.get("/fragments/app")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, highlighted(w.Body.String(), models.SectionHome))
}

func TestStylesheetEndpoint(t *testing.T) {
	h, _ := setupTest(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, StylesheetPath, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "@keyframes m-float-in")
}

func TestHealthEndpoint(t *testing.T) {
	h, _ := setupTest(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListProjects(t *testing.T) {
	h, _ := setupTest(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list models.ProjectList
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	assert.Equal(t, models.SeedProjects(), list.Projects)
}

func TestGetProject(t *testing.T) {
	h, _ := setupTest(t)

	tests := []struct {
		path   string
		status int
		title  string
	}{
		{"/api/projects/1", http.StatusOK, "Creative Design"},
		{"/api/projects/3", http.StatusOK, "Mobile App"},
		{"/api/projects/9", http.StatusNotFound, ""},
		{"/api/projects/abc", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, w.Code)

			if tt.status != http.StatusOK {
				var e map[string]string
				require.NoError(t, json.NewDecoder(w.Body).Decode(&e))
				assert.NotEmpty(t, e["error"])
				return
			}
			var p models.Project
			require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
			assert.Equal(t, tt.title, p.Title)
		})
	}
}

func TestStateAPI(t *testing.T) {
	h, _ := setupTest(t)
	b := newBrowser(t, h)

	var state stateResponse
	w := b.get("/api/state")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Equal(t, models.SectionHome, state.ActiveSection)
	assert.True(t, state.Known)
	assert.Equal(t, models.KnownSections(), state.Sections)

	req := httptest.NewRequest(http.MethodPut, "/api/state", strings.NewReader(`{"active_section":"contact"}`))
	req.Header.Set("Content-Type", "application/json")
	w = b.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	// The page follows the API change.
	assert.True(t, highlighted(b.get("/").Body.String(), models.SectionContact))

	req = httptest.NewRequest(http.MethodPut, "/api/state", strings.NewReader(`{"active_section":"gallery"}`))
	w = b.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Equal(t, models.Section("gallery"), state.ActiveSection)
	assert.False(t, state.Known)
}

func TestPutStateInvalidBody(t *testing.T) {
	h, _ := setupTest(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/state", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceholder(t *testing.T) {
	h, _ := setupTest(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, models.PlaceholderImage, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<svg"))
	assert.Contains(t, body, `width="400" height="300" viewBox="0 0 400 300"`)
	assert.Contains(t, body, "400×300")
}

func TestPlaceholderClampsAndRejects(t *testing.T) {
	h, _ := setupTest(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/placeholder/5000/0", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `width="2000" height="1"`)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/placeholder/wide/300", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	h, _ := setupTest(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, clamp(-5, 1, 10))
	assert.Equal(t, 10, clamp(50, 1, 10))
	assert.Equal(t, 7, clamp(7, 1, 10))
}
