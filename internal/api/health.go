package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Broker is an optional outbound connection that readiness reports on.
type Broker interface {
	IsConnected() bool
}

type HealthHandler struct {
	db     *gorm.DB
	broker Broker
}

// NewHealthHandler builds the health endpoints. broker may be nil when
// notifications are disabled.
func NewHealthHandler(db *gorm.DB, broker Broker) *HealthHandler {
	return &HealthHandler{db: db, broker: broker}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the database answers and the broker, if any, is
// connected.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db_not_ready", "error": err.Error()})
		return
	}

	if h.broker != nil && !h.broker.IsConnected() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "mq_not_ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
