package webhook

import (
	"context"
	"crypto/subtle"
	"net/http"

	"buildpro-site/internal/content"
	"buildpro-site/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const TokenHeader = "X-Webhook-Token"

// Invalidator drops cached reads of one collection.
type Invalidator interface {
	Invalidate(ctx context.Context, collection content.Collection) error
}

// Handler receives change notifications from the content service.
type Handler struct {
	secret      string
	invalidator Invalidator
	logger      *zap.Logger
}

// NewHandler builds the webhook handler. invalidator may be nil when no cache
// is configured; notifications are then acknowledged and ignored.
func NewHandler(secret string, invalidator Invalidator, logger *zap.Logger) *Handler {
	return &Handler{secret: secret, invalidator: invalidator, logger: logger}
}

func (h *Handler) validToken(token string) bool {
	if h.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

func (h *Handler) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "" || token == "" {
		c.Status(http.StatusBadRequest)
		return
	}
	if mode != "subscribe" || !h.validToken(token) {
		c.Status(http.StatusForbidden)
		return
	}

	h.logger.Info("content webhook verified")
	c.String(http.StatusOK, challenge)
}

func (h *Handler) HandleContentChange(c *gin.Context) {
	if !h.validToken(c.GetHeader(TokenHeader)) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook token"})
		return
	}

	var event models.ContentEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collection, ok := content.ParseCollection(event.Collection)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection " + event.Collection})
		return
	}

	h.logger.Info("content changed",
		zap.String("collection", string(collection)),
		zap.String("event", event.Event),
		zap.String("item_id", event.ItemID),
	)

	if h.invalidator != nil {
		if err := h.invalidator.Invalidate(c.Request.Context(), collection); err != nil {
			h.logger.Error("cache invalidation failed",
				zap.String("collection", string(collection)),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to invalidate cache"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "collection": collection})
}
