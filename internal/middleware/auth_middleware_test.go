package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/app/models"
	"github.com/internhub/internhub/internal/pkg/auth"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID: 1, Email: "a@b.com", Role: role,
	})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return accessToken
}

func newGuardedRouter(jwtService *auth.JWTService, roles ...models.RoleType) *gin.Engine {
	router := gin.New()
	group := router.Group("/secure")
	group.Use(JWTAuth(jwtService))
	if len(roles) > 0 {
		group.Use(RoleRequired(roles...))
	}
	group.GET("", func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	return router
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	router := newGuardedRouter(newTestJWTService())

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthRejectsMalformedHeader(t *testing.T) {
	jwtService := newTestJWTService()
	router := newGuardedRouter(jwtService)

	token := issueToken(t, jwtService, models.RoleStudent)

	// Token without the Bearer prefix is rejected
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	router := newGuardedRouter(jwtService)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204; body: %s", w.Code, w.Body.String())
	}
}

func TestRoleRequired(t *testing.T) {
	jwtService := newTestJWTService()
	router := newGuardedRouter(jwtService, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("student against admin route: status = %d, want 403", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleAdmin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("admin against admin route: status = %d, want 204", w.Code)
	}
}

func TestJWTAuthRejectsWrongSignature(t *testing.T) {
	otherService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "other-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
	router := newGuardedRouter(newTestJWTService())

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, otherService, models.RoleStudent))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
