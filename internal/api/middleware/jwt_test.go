package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

var testJWTConfig = JWTConfig{
	SigningKey: []byte("test-signing-key-1234567890123456"),
	Issuer:     "registry",
	ExpiresIn:  time.Hour,
}

func authRouter(signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(signingKey))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  GetUserID(c.Request.Context()),
			"username": GetUsername(c.Request.Context()),
		})
	})
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token, _, err := GenerateToken(testJWTConfig, "rev-1", "amal", []string{"reviewer"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authRouter(testJWTConfig.SigningKey).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "rev-1", body["user_id"])
	assert.Equal(t, "amal", body["username"])
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	authRouter(testJWTConfig.SigningKey).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.CodeNotAuthenticated, body["code"])
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abcdef")
	authRouter(testJWTConfig.SigningKey).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := JWTConfig{
		SigningKey: testJWTConfig.SigningKey,
		Issuer:     "registry",
		ExpiresIn:  -time.Hour,
	}
	token, _, err := GenerateToken(expired, "rev-1", "amal", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authRouter(testJWTConfig.SigningKey).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.CodeTokenExpired, body["code"])
}

func TestJWTAuth_WrongKey(t *testing.T) {
	token, _, err := GenerateToken(testJWTConfig, "rev-1", "amal", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authRouter([]byte("another-key-9876543210987654321098")).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.CodeTokenInvalid, body["code"])
}

func TestJWTAuth_RejectsNoneSigningMethod(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{
		UserID: "rev-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "registry",
			Subject:   "rev-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	authRouter(testJWTConfig.SigningKey).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	newRouter := func(roles []string) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(
				SetUserContext(c.Request.Context(), "u-1", "amal", roles))
		})
		router.Use(RequireRole("reviewer"))
		router.GET("/reviewer-only", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return router
	}

	t.Run("role present", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter([]string{"reviewer"}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reviewer-only", nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("admin passes every check", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter([]string{"admin"}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reviewer-only", nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing role", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter([]string{"clerk"}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reviewer-only", nil))
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
