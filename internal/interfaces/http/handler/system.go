package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/instrategy/salesflow/internal/infrastructure/persistence"
)

// Version is the API version reported by the banner and health endpoints
const Version = "1.0.0"

// Pinger reports whether the backing store is reachable and how its
// connection pool is doing
type Pinger interface {
	Ping() error
	Pool() (persistence.PoolStats, error)
}

// SystemHandler handles the banner and health endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db, startTime: time.Now()}
}

// Root handles GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "SalesFlow CRM API",
		"version": Version,
		"endpoints": []string{
			"/companies", "/contacts", "/calls", "/emails",
			"/emails/send", "/sync/empresa", "/sync/contacto",
			"/hubspot/empresas", "/hubspot/contactos",
			"/parse", "/parse/contacts", "/parse/companies",
			"/health",
		},
	})
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	database := "ok"
	code := http.StatusOK
	if err := h.db.Ping(); err != nil {
		status = "degraded"
		database = err.Error()
		code = http.StatusServiceUnavailable
	}

	payload := gin.H{
		"status":   status,
		"database": database,
		"version":  Version,
		"uptime":   time.Since(h.startTime).Round(time.Second).String(),
	}
	if pool, err := h.db.Pool(); err == nil {
		payload["pool"] = pool
	}

	c.JSON(code, payload)
}
