// internal/interfaces/http/handlers/notification.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/sneakstore-backend/internal/pkg/notify"
)

// NotificationHandler handles pending notification delivery
type NotificationHandler struct {
	notifier notify.Notifier
	config   *config.Config
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifier notify.Notifier, cfg *config.Config) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
		config:   cfg,
	}
}

// Drain returns and clears the pending notifications for the caller.
// Clients poll this to show toasts for events that happened since the
// last poll.
func (h *NotificationHandler) Drain(c *gin.Context) {
	var recipient string
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		recipient = fmt.Sprintf("user:%d", userID)
	} else {
		sessionID := middleware.GetSessionIDFromContext(c)
		recipient = fmt.Sprintf("session:%s", sessionID)
	}

	notifications := h.notifier.Drain(recipient)

	c.JSON(http.StatusOK, gin.H{
		"data": notifications,
	})
}
