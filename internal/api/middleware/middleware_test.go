package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/chefskiss/festival-api/internal/pkg/jwthelper"
)

const signingKey = "test-signing-key"

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw)
	router.GET("/", func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	return router
}

func serve(router *gin.Engine, header string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:40000"
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthenticator_VerifyJWT(t *testing.T) {
	router := newRouter(NewAuthenticator(signingKey).VerifyJWT())

	admin, err := jwthelper.GenerateToken([]byte(signingKey), "admin-1", jwthelper.RoleAdmin, "test")
	assert.NoError(t, err)
	viewer, err := jwthelper.GenerateToken([]byte(signingKey), "viewer-1", "viewer", "test")
	assert.NoError(t, err)
	forged, err := jwthelper.GenerateToken([]byte("other-key"), "admin-1", jwthelper.RoleAdmin, "test")
	assert.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"admin", "Bearer " + admin, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong key", "Bearer " + forged, http.StatusUnauthorized},
		{"not admin", "Bearer " + viewer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(router, tt.header))
		})
	}
}

func TestRateLimiter_Limit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	router := newRouter(NewRateLimiter(client, 2, time.Minute).Limit("submit"))

	const key = "ratelimit:submit:203.0.113.7"
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, time.Minute).SetVal(true)
	mock.ExpectIncr(key).SetVal(2)
	mock.ExpectIncr(key).SetVal(3)

	assert.Equal(t, http.StatusNoContent, serve(router, ""))
	assert.Equal(t, http.StatusNoContent, serve(router, ""))
	assert.Equal(t, http.StatusTooManyRequests, serve(router, ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	client, mock := redismock.NewClientMock()
	router := newRouter(NewRateLimiter(client, 1, time.Minute).Limit("submit"))

	mock.ExpectIncr("ratelimit:submit:203.0.113.7").SetErr(errors.New("connection refused"))

	assert.Equal(t, http.StatusNoContent, serve(router, ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}
