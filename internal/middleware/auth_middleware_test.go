package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/interntrack/server/internal/app/models"
	"github.com/interntrack/server/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/protected", JWTAuth(jwtService), func(c *gin.Context) {
		claims, _ := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"identifier": claims.Identifier})
	})
	router.GET("/faculty-only", JWTAuth(jwtService), RoleRequired("faculty"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func testToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()

	user := &models.User{ID: 1, Name: "Test User", Role: role}
	if role == models.RoleStudent {
		roll := "21CS045"
		user.Roll = &roll
	} else {
		email := "jane@college.edu"
		user.Email = &email
	}

	token, _, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", TokenExp: time.Hour})
	router := newTestRouter(jwtService)

	w := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_004")
}

func TestJWTAuthGarbageToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", TokenExp: time.Hour})
	router := newTestRouter(jwtService)

	w := doRequest(router, "/protected", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", TokenExp: -time.Minute})
	router := newTestRouter(jwtService)

	token := testToken(t, jwtService, models.RoleStudent)
	w := doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", TokenExp: time.Hour})
	router := newTestRouter(jwtService)

	token := testToken(t, jwtService, models.RoleStudent)
	w := doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "21CS045")
}

func TestRoleRequiredRejectsWrongRole(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", TokenExp: time.Hour})
	router := newTestRouter(jwtService)

	token := testToken(t, jwtService, models.RoleStudent)
	w := doRequest(router, "/faculty-only", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestRoleRequiredAllowsListedRole(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", TokenExp: time.Hour})
	router := newTestRouter(jwtService)

	token := testToken(t, jwtService, models.RoleFaculty)
	w := doRequest(router, "/faculty-only", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
