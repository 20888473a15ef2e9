package cartControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performCartRequest(t *testing.T, handler gin.HandlerFunc, identity interface{}, setIdentity bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/user/cart", nil)
	if setIdentity {
		c.Set("user_id", identity)
	}
	handler(c)
	return w
}

func TestCartHandlersRejectMissingIdentity(t *testing.T) {
	db := newTestDB(t)

	w := performCartRequest(t, GetUserCart(db), nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartHandlersRejectNonStringIdentity(t *testing.T) {
	db := newTestDB(t)

	// a misconfigured middleware chain must surface as 401, not a panic
	w := performCartRequest(t, GetUserCart(db), 42, true)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performCartRequest(t, GetCartItemCount(db), "", true)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
