package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/flightbase-api/internal/config"
	"github.com/flightbase-api/internal/constants"
	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/queue"
	"github.com/flightbase-api/internal/repository"
	"github.com/flightbase-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if generated := strings.TrimSpace(w2.Header().Get(requestIDHeader)); generated == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func setupStaffAuthMiddlewareTest(t *testing.T) (*gin.Engine, *service.AuthService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_mw_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Staff{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "router-middleware-test-secret-key"
	cfg.JWT.Issuer = "flightbase"
	cfg.JWT.Audience = "flightbase-clients"
	cfg.JWT.ExpireMinutes = 60

	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}
	staffRepo := repository.NewStaffRepository(db)
	authService := service.NewAuthService(cfg, staffRepo, queueClient)

	r := gin.New()
	r.Use(StaffJWTAuthMiddleware(authService, staffRepo))
	r.GET("/secure", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"staff_id": c.GetUint("staff_id"),
			"role":     c.GetString("staff_role"),
		})
	})
	return r, authService, db
}

func createMiddlewareTestStaff(t *testing.T, db *gorm.DB, username string, active bool) models.Staff {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Correct123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	row := models.Staff{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         constants.RoleOperator,
		IsActive:     active,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	return row
}

func decodeEnvelope(t *testing.T, body []byte) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestStaffJWTAuthMiddlewareAcceptsValidToken(t *testing.T) {
	r, authService, db := setupStaffAuthMiddlewareTest(t)
	row := createMiddlewareTestStaff(t, db, "mw-staff", true)

	token, _, err := authService.GenerateStaffJWT(&row)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StaffID uint   `json:"staff_id"`
		Role    string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StaffID != row.ID || resp.Role != constants.RoleOperator {
		t.Fatalf("unexpected context values: %+v", resp)
	}
}

func TestStaffJWTAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	r, _, _ := setupStaffAuthMiddlewareTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure", nil))
	if decodeEnvelope(t, w.Body.Bytes()) != 401 {
		t.Fatalf("expected 401 envelope for missing header")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	if decodeEnvelope(t, w.Body.Bytes()) != 401 {
		t.Fatalf("expected 401 envelope for invalid token")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	if decodeEnvelope(t, w.Body.Bytes()) != 401 {
		t.Fatalf("expected 401 envelope for non-bearer scheme")
	}
}

func TestStaffJWTAuthMiddlewareRejectsDeactivatedAccount(t *testing.T) {
	r, authService, db := setupStaffAuthMiddlewareTest(t)
	row := createMiddlewareTestStaff(t, db, "mw-inactive", true)

	token, _, err := authService.GenerateStaffJWT(&row)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	// Deactivation takes effect on the next request even though the
	// token is still unexpired.
	if err := db.Model(&models.Staff{}).Where("id = ?", row.ID).
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate staff failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if decodeEnvelope(t, w.Body.Bytes()) != 403 {
		t.Fatalf("expected 403 envelope for deactivated account")
	}
}
