package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func newBodyLimitRouter(maxBytes int64) *gin.Engine {
	router := gin.New()
	router.Use(BodyLimit(maxBytes))
	router.POST("/empresas", func(c *gin.Context) {
		buf := make([]byte, 512)
		if _, err := c.Request.Body.Read(buf); err != nil && err.Error() == "http: request body too large" {
			c.String(http.StatusBadRequest, "body too large")
			return
		}
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestBodyLimit(t *testing.T) {
	t.Run("passes a body within the limit", func(t *testing.T) {
		router := newBodyLimitRouter(1024)

		req := httptest.NewRequest("POST", "/empresas", strings.NewReader(`{"nombre":"Acme"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects an oversized Content-Length with the error envelope", func(t *testing.T) {
		router := newBodyLimitRouter(100)

		req := httptest.NewRequest("POST", "/empresas", strings.NewReader(strings.Repeat("x", 200)))
		req.ContentLength = 200
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.False(t, gjson.Get(w.Body.String(), "ok").Bool())
		assert.Equal(t, "ERR_REQUEST_TOO_LARGE", gjson.Get(w.Body.String(), "error.code").String())
	})

	t.Run("limits streaming bodies without Content-Length", func(t *testing.T) {
		router := newBodyLimitRouter(50)

		req := httptest.NewRequest("POST", "/empresas", strings.NewReader(strings.Repeat("x", 200)))
		req.ContentLength = -1
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("leaves bodyless requests alone", func(t *testing.T) {
		router := gin.New()
		router.Use(BodyLimit(10))
		router.GET("/empresas", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest("GET", "/empresas", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
