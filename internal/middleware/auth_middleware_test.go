package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/pkg/auth"
)

func newTestJWT(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "councilhub.test",
	})
}

func protectedRouter(jwtService *auth.JWTService) *gin.Engine {
	m := NewAuthMiddleware(jwtService, nil)
	r := gin.New()
	r.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "email": c.GetString(ContextEmail), "role": c.GetString(ContextRole)})
	})
	return r
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r := protectedRouter(newTestJWT(time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	r := protectedRouter(newTestJWT(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := newTestJWT(-time.Minute)
	token, _, err := jwtService.GenerateToken(1, "a@b.c", "user")
	require.NoError(t, err)

	r := protectedRouter(jwtService)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
}

func TestJWTAuthValidTokenSetsIdentity(t *testing.T) {
	jwtService := newTestJWT(time.Hour)
	token, _, err := jwtService.GenerateToken(42, "student@example.edu", "user")
	require.NoError(t, err)

	r := protectedRouter(jwtService)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
	assert.Contains(t, w.Body.String(), `"email":"student@example.edu"`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestGetUserIDWithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetUserID(c)
	assert.False(t, ok)
}
