package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/generate", Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"records": 5})
	})
	return r, mock
}

func postGenerate(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_PassesThroughWithoutKey(t *testing.T) {
	r, mock := newIdempotencyRouter(t)

	w := postGenerate(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_CachesFirstResponse(t *testing.T) {
	r, mock := newIdempotencyRouter(t)
	cacheKey := "idemp:/generate::abc"

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", lockTTL).SetVal(true)
	mock.ExpectSet(cacheKey, []byte(`{"records":5}`), idempotencyTTL).SetVal("OK")
	mock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := postGenerate(r, "abc")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"records":5}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	r, mock := newIdempotencyRouter(t)
	cacheKey := "idemp:/generate::abc"

	mock.ExpectGet(cacheKey).SetVal(`{"records":5}`)

	w := postGenerate(r, "abc")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"records":5}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_RejectsInFlightKey(t *testing.T) {
	r, mock := newIdempotencyRouter(t)
	cacheKey := "idemp:/generate::abc"

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", lockTTL).SetVal(false)

	w := postGenerate(r, "abc")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	require.NoError(t, mock.ExpectationsWereMet())
}
