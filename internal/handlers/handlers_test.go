package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/memory/v2"
	"github.com/khanghh/authportal/internal/authapi"
	"github.com/khanghh/authportal/internal/forms"
	"github.com/khanghh/authportal/internal/middlewares"
	"github.com/khanghh/authportal/internal/middlewares/csrf"
	"github.com/khanghh/authportal/internal/middlewares/sessions"
	"github.com/khanghh/authportal/internal/render"
	"github.com/khanghh/authportal/internal/store"
	"github.com/khanghh/authportal/internal/validation"
	"github.com/khanghh/authportal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var csrfFieldRegex = regexp.MustCompile(`name="_csrf" value="([0-9a-f]+)"`)

type fakeAuthAPI struct {
	*httptest.Server
	calls atomic.Int32
}

func newFakeAuthAPI(t *testing.T, handler http.HandlerFunc) *fakeAuthAPI {
	api := &fakeAuthAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(api.Close)
	return api
}

func newTestApp(apiURL string) *fiber.App {
	storage := memory.New()
	app := fiber.New(fiber.Config{
		Views:        render.NewHtmlEngine(""),
		ErrorHandler: middlewares.ErrorHandler,
	})
	sessionStore := session.New(session.Config{
		Storage:    store.NewKVStorage(storage, params.SessionKeyPrefix),
		KeyLookup:  "cookie:test_session",
		Expiration: time.Hour,
	})
	app.Use(sessions.SessionMiddleware(sessionStore))
	app.Use(csrf.New())

	submitter := forms.NewSubmitter(authapi.NewClient(apiURL, 5*time.Second), store.NewMemoryLocker(), time.Minute)
	SetupRoutes(app, submitter, store.NewClientStorage(storage, time.Hour))
	return app
}

// browser replays the cookies it received like a real user agent.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, app *fiber.App) *browser {
	return &browser{t: t, app: app, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(req *http.Request) (*http.Response, string) {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)
	for _, c := range resp.Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	body, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return resp, string(body)
}

func (b *browser) get(path string) (*http.Response, string) {
	return b.do(httptest.NewRequest(fiber.MethodGet, path, nil))
}

func (b *browser) postForm(path string, values url.Values) (*http.Response, string) {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return b.do(req)
}

// csrfToken loads path and returns the token embedded in its form.
func (b *browser) csrfToken(path string) string {
	resp, body := b.get(path)
	require.Equal(b.t, fiber.StatusOK, resp.StatusCode)
	match := csrfFieldRegex.FindStringSubmatch(body)
	require.Len(b.t, match, 2, "csrf field not found on %s", path)
	return match[1]
}

func validSignupValues(csrfToken string) url.Values {
	return url.Values{
		"_csrf":           {csrfToken},
		"name":            {"홍길동"},
		"id":              {"hong"},
		"email":           {"hong@example.com"},
		"age":             {"25"},
		"password":        {"abc1!"},
		"confirmPassword": {"abc1!"},
	}
}

func TestSignupFlow(t *testing.T) {
	api := newFakeAuthAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, params.AuthSignupPath, r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(25), body["age"])
		assert.Equal(t, "hong", body["username"])
		assert.Equal(t, "abc1!", body["passwordCheck"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"tok-123","username":"hong"}`))
	})
	b := newBrowser(t, newTestApp(api.URL))

	token := b.csrfToken("/signup")
	resp, _ := b.postForm("/signup", validSignupValues(token))
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
	assert.EqualValues(t, 1, api.calls.Load())

	resp, body := b.get("/login")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, forms.MsgSignupCompleted)

	_, body = b.get("/login")
	assert.NotContains(t, body, forms.MsgSignupCompleted)

	resp, body = b.get("/")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "hong")
}

func TestSignupInvalidSkipsAPI(t *testing.T) {
	api := newFakeAuthAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	b := newBrowser(t, newTestApp(api.URL))

	values := validSignupValues(b.csrfToken("/signup"))
	values.Set("age", "17")
	resp, body := b.postForm("/signup", values)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, validation.MsgAgeUnderage)
	assert.Contains(t, body, `value="hong@example.com"`)
	assert.NotContains(t, body, "abc1!")
	assert.EqualValues(t, 0, api.calls.Load())
}

func TestSignupRejectedShowsServerMessage(t *testing.T) {
	api := newFakeAuthAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"이미 존재하는 아이디입니다."}`))
	})
	b := newBrowser(t, newTestApp(api.URL))

	resp, body := b.postForm("/signup", validSignupValues(b.csrfToken("/signup")))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "이미 존재하는 아이디입니다.")
}

func TestLoginFlow(t *testing.T) {
	api := newFakeAuthAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, params.AuthLoginPath, r.URL.Path)
		w.Write([]byte(`{"token":"tok-456"}`))
	})
	b := newBrowser(t, newTestApp(api.URL))

	resp, _ := b.get("/")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	resp, _ = b.postForm("/login", url.Values{
		"_csrf":    {b.csrfToken("/login")},
		"username": {"hong"},
		"password": {"abcd"},
	})
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

	resp, _ = b.get("/")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = b.postForm("/logout", url.Values{"_csrf": {b.csrfToken("/login")}})
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	resp, _ = b.get("/")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	api := newFakeAuthAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"wrong password"}`))
	})
	b := newBrowser(t, newTestApp(api.URL))

	resp, body := b.postForm("/login", url.Values{
		"_csrf":    {b.csrfToken("/login")},
		"username": {"hong"},
		"password": {"abcd"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, forms.MsgLoginFailed)
	assert.NotContains(t, body, "wrong password")
	assert.EqualValues(t, 1, api.calls.Load())
}

func TestSubmitWithoutCSRF(t *testing.T) {
	api := newFakeAuthAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok"}`))
	})
	b := newBrowser(t, newTestApp(api.URL))

	b.csrfToken("/login")
	resp, body := b.postForm("/login", url.Values{
		"username": {"hong"},
		"password": {"abcd"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, MsgInvalidRequest)
	assert.EqualValues(t, 0, api.calls.Load())
}

func TestValidateEndpoint(t *testing.T) {
	app := newTestApp("http://127.0.0.1:1")
	tests := []struct {
		path            string
		body            string
		wantErrors      map[string]string
		wantSubmittable bool
	}{
		{
			path: "/signup/validate",
			body: `{"name":"a","id":"b","email":"c@d","age":"12.5","password":"abc1!","confirmPassword":"abc1!"}`,
			wantErrors: map[string]string{
				"age": validation.MsgAgeNotInteger,
			},
		},
		{
			path:            "/signup/validate",
			body:            `{"name":"a","id":"b","email":"c@d","age":"19","password":"abc1!","confirmPassword":"abc1!"}`,
			wantErrors:      map[string]string{},
			wantSubmittable: true,
		},
		{
			path: "/login/validate",
			body: `{"username":" ","password":"abc"}`,
			wantErrors: map[string]string{
				"username": validation.MsgUsernameRequired,
				"password": validation.MsgLoginPasswordTooShort,
			},
		},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(fiber.MethodPost, tt.path, strings.NewReader(tt.body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got struct {
			Errors      map[string]string `json:"errors"`
			Submittable bool              `json:"submittable"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, tt.wantErrors, got.Errors, tt.body)
		assert.Equal(t, tt.wantSubmittable, got.Submittable, tt.body)
	}
}
