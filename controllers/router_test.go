package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"contacts-http-service/config"
	"contacts-http-service/models"
	"contacts-http-service/routes"
	"contacts-http-service/services/container"
)

// testApp bundles a router over a throwaway database and carries cookies
// across requests the way a browser would, so flash messages survive
// redirects in tests.
type testApp struct {
	router    *gin.Engine
	db        *gorm.DB
	container *container.ServiceContainer
	cookies   []*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "contacts_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Person{},
		&models.PhoneNumber{},
		&models.StreetAddress{},
		&models.EmailAddress{},
	))

	cfg := &config.Config{
		TemplatesGlob: filepath.Join("..", "templates", "*.html"),
	}

	// nil Redis client: the container falls back to the in-memory flash store
	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	router := routes.SetupRouterWithContainer(serviceContainer, cfg)

	return &testApp{
		router:    router,
		db:        db,
		container: serviceContainer,
	}
}

// get performs a GET request
func (a *testApp) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return a.do(t, http.MethodGet, path, nil)
}

// postForm performs a POST request with form-encoded fields
func (a *testApp) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return a.do(t, http.MethodPost, path, form)
}

func (a *testApp) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, cookie := range a.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	// The session cookie is only set once, on the first response
	a.cookies = append(a.cookies, w.Result().Cookies()...)
	return w
}
