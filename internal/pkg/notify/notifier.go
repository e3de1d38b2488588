// internal/pkg/notify/notifier.go
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/sneakstore-backend/internal/config"
)

// Level marks a notification as a success or error toast
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient user-facing message. There is no delivery
// acknowledgment; the client drains its queue and the queue is capped.
type Notification struct {
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier is the fire-and-forget user-facing notification channel
type Notifier interface {
	Success(recipient, message string)
	Error(recipient, message string)
	Drain(recipient string) []Notification
}

// RedisNotifier keeps a capped notification list per recipient in Redis
type RedisNotifier struct {
	redisClient *redis.Client
	config      *config.Config
	log         *logrus.Logger
}

// NewRedisNotifier creates a Redis-backed notifier
func NewRedisNotifier(redisClient *redis.Client, cfg *config.Config, log *logrus.Logger) *RedisNotifier {
	return &RedisNotifier{
		redisClient: redisClient,
		config:      cfg,
		log:         log,
	}
}

// Success queues a success notification. Failures are logged and dropped;
// callers never see an error.
func (n *RedisNotifier) Success(recipient, message string) {
	n.push(recipient, Notification{Level: LevelSuccess, Message: message, CreatedAt: time.Now().UTC()})
}

// Error queues an error notification
func (n *RedisNotifier) Error(recipient, message string) {
	n.push(recipient, Notification{Level: LevelError, Message: message, CreatedAt: time.Now().UTC()})
}

// Drain returns and clears all pending notifications for the recipient
func (n *RedisNotifier) Drain(recipient string) []Notification {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	key := n.key(recipient)

	pipe := n.redisClient.TxPipeline()
	entries := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		n.log.WithError(err).Warn("Failed to drain notifications")
		return []Notification{}
	}

	values := entries.Val()
	notifications := make([]Notification, 0, len(values))
	for _, raw := range values {
		var notification Notification
		if err := json.Unmarshal([]byte(raw), &notification); err != nil {
			continue
		}
		notifications = append(notifications, notification)
	}
	return notifications
}

func (n *RedisNotifier) push(recipient string, notification Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	data, err := json.Marshal(notification)
	if err != nil {
		n.log.WithError(err).Warn("Failed to encode notification")
		return
	}

	key := n.key(recipient)

	pipe := n.redisClient.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, int64(-n.config.Cart.NotificationsMax), -1)
	pipe.Expire(ctx, key, n.config.Cart.NotificationsTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		n.log.WithError(err).Warn("Failed to queue notification")
	}
}

func (n *RedisNotifier) key(recipient string) string {
	return "notifications:" + recipient
}
