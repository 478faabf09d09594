package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/velvetcut/salon-scheduler/internal/config"
	"github.com/velvetcut/salon-scheduler/internal/middleware"
	"github.com/velvetcut/salon-scheduler/internal/models"
	"github.com/velvetcut/salon-scheduler/internal/routes"
)

type testEnv struct {
	db     *gorm.DB
	config *config.Config
	router *gin.Engine
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		ServerPort:             "8080",
		SessionSecret:          "test-secret",
		AdminEmails:            []string{"admin@example.com"},
		DefaultServiceDuration: 120,
		TimeSlotLabels:         []string{"9:00 AM", "11:15 AM", "1:15 PM", "3:00 PM"},
		UploadDir:              t.TempDir(),
	}
}

// newTestEnv wires the full router over an in-memory database with all
// tables migrated.
func newTestEnv(t *testing.T) *testEnv {
	return newEnv(t, true)
}

// newTestEnvFresh skips the bookings table migration, simulating a
// first-run database.
func newTestEnvFresh(t *testing.T) *testEnv {
	return newEnv(t, false)
}

func newEnv(t *testing.T, withBookings bool) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	migrations := []any{
		&models.Admin{},
		&models.Client{},
		&models.Service{},
		&models.ServiceAvailability{},
		&models.AuditLog{},
	}
	if withBookings {
		migrations = append(migrations, &models.Booking{})
	}
	if err := db.AutoMigrate(migrations...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cfg := testConfig(t)

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)

	// Session fixtures, registered only on the test router.
	r.GET("/__test/login-admin", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(middleware.KeyClientID, uint(1))
		session.Set(middleware.KeyEmail, "admin@example.com")
		session.Set(middleware.KeyName, "Admin User")
		session.Set(middleware.KeyIsAdmin, true)
		_ = session.Save()
		c.Status(http.StatusNoContent)
	})

	r.GET("/__test/login-client", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Query("id"))
		session := sessions.Default(c)
		session.Set(middleware.KeyClientID, uint(id))
		session.Set(middleware.KeyEmail, c.Query("email"))
		session.Set(middleware.KeyName, c.Query("name"))
		session.Set(middleware.KeyIsAdmin, false)
		_ = session.Save()
		c.Status(http.StatusNoContent)
	})

	return &testEnv{db: db, config: cfg, router: r}
}

func (e *testEnv) adminCookies(t *testing.T) []*http.Cookie {
	return e.sessionCookies(t, "/__test/login-admin")
}

func (e *testEnv) clientCookies(t *testing.T, clientID uint, email string) []*http.Cookie {
	path := "/__test/login-client?id=" + strconv.Itoa(int(clientID)) + "&email=" + email
	return e.sessionCookies(t, path)
}

func (e *testEnv) sessionCookies(t *testing.T, path string) []*http.Cookie {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	e.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("session fixture returned %d", resp.Code)
	}
	return resp.Result().Cookies()
}

func (e *testEnv) do(method, path string, body io.Reader, contentType string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp := httptest.NewRecorder()
	e.router.ServeHTTP(resp, req)
	return resp
}
