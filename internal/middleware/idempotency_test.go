package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotencyRouter(rdb *redis.Client, handlerHit *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payrolls/release",
		func(c *gin.Context) {
			c.Set("user_id_validated", "u-1")
			c.Next()
		},
		middleware.Idempotency(rdb),
		func(c *gin.Context) {
			*handlerHit = true
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)
	return r
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	hit := false
	router := newIdempotencyRouter(rdb, &hit)

	mock.ExpectGet("idemp:/payrolls/release:u-1:key-1").SetVal(`{"ref_no":"PR-2025-0001"}`)

	req := httptest.NewRequest(http.MethodPost, "/payrolls/release", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, hit, "cached responses must not re-run the handler")
	assert.Contains(t, w.Body.String(), "PR-2025-0001")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRejectsInFlightDuplicate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	hit := false
	router := newIdempotencyRouter(rdb, &hit)

	cacheKey := "idemp:/payrolls/release:u-1:key-2"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	req := httptest.NewRequest(http.MethodPost, "/payrolls/release", nil)
	req.Header.Set("Idempotency-Key", "key-2")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, hit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyFirstRequestProceeds(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	hit := false
	router := newIdempotencyRouter(rdb, &hit)

	cacheKey := "idemp:/payrolls/release:u-1:key-3"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

	req := httptest.NewRequest(http.MethodPost, "/payrolls/release", nil)
	req.Header.Set("Idempotency-Key", "key-3")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, hit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyIgnoresRequestsWithoutKey(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	hit := false
	router := newIdempotencyRouter(rdb, &hit)

	req := httptest.NewRequest(http.MethodPost, "/payrolls/release", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, hit)
	assert.NoError(t, mock.ExpectationsWereMet())
}
