// internal/domain/cart/service_test.go
package cart

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/catalog"
	"github.com/your-org/sneakstore-backend/internal/pkg/notify"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// notifierSpy records every toast the service emits so tests can assert
// exactly when notifications fire.
type notifierSpy struct {
	successes []string
	failures  []string
}

func (n *notifierSpy) Success(recipient, message string) {
	n.successes = append(n.successes, fmt.Sprintf("%s|%s", recipient, message))
}

func (n *notifierSpy) Error(recipient, message string) {
	n.failures = append(n.failures, fmt.Sprintf("%s|%s", recipient, message))
}

func (n *notifierSpy) Drain(recipient string) []notify.Notification {
	return nil
}

func newTestService(t *testing.T) (*Service, *notifierSpy) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalog.Sneaker{}, &catalog.SneakerSize{},
		&catalog.SneakerImage{}, &catalog.SneakerColor{},
	))

	cfg := &config.Config{
		Cart: config.CartConfig{
			SessionTTL:       time.Hour,
			NotificationsMax: 50,
			NotificationsTTL: time.Hour,
		},
	}

	spy := &notifierSpy{}
	return NewService(db, client, cfg, spy), spy
}

func seedSneaker(t *testing.T, db *gorm.DB) *catalog.Sneaker {
	t.Helper()

	snk := &catalog.Sneaker{
		SKU:         "NK-AMP-001",
		Name:        "Air Max Pulse",
		Brand:       "Nike",
		Slug:        "air-max-pulse",
		Price:       decimal.RequireFromString("159.99"),
		StockStatus: catalog.StockStatusInStock,
		StockCount:  12,
		IsActive:    true,
		Sizes:       []catalog.SneakerSize{{Size: 9}, {Size: 10}},
	}
	require.NoError(t, db.Create(snk).Error)
	return snk
}

func TestAddToCartNotifiesOncePerSuccessfulAdd(t *testing.T) {
	svc, spy := newTestService(t)
	snk := seedSneaker(t, svc.db)
	userID := uint(7)

	resp, err := svc.AddToCart(&userID, "", &AddToCartRequest{ProductID: snk.ID, Size: 9})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.Len(t, spy.successes, 1)
	assert.Equal(t, "user:7|Air Max Pulse added to cart!", spy.successes[0])

	// A repeated add merges into the existing line and fires its own toast.
	resp, err = svc.AddToCart(&userID, "", &AddToCartRequest{ProductID: snk.ID, Size: 9})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Len(t, spy.successes, 2)
}

func TestFailedAddNeverNotifies(t *testing.T) {
	svc, spy := newTestService(t)
	snk := seedSneaker(t, svc.db)
	userID := uint(7)

	_, err := svc.AddToCart(&userID, "", &AddToCartRequest{ProductID: 999, Size: 9})
	assert.Error(t, err)

	_, err = svc.AddToCart(&userID, "", &AddToCartRequest{ProductID: snk.ID, Size: 13})
	assert.Error(t, err)

	assert.Empty(t, spy.successes)
	assert.Empty(t, spy.failures)
}

func TestQuantityAndRemovalPathsNeverNotify(t *testing.T) {
	svc, spy := newTestService(t)
	snk := seedSneaker(t, svc.db)
	userID := uint(7)

	_, err := svc.AddToCart(&userID, "", &AddToCartRequest{ProductID: snk.ID, Size: 9})
	require.NoError(t, err)
	require.Len(t, spy.successes, 1)

	key := LineKey{ProductID: snk.ID, Size: 9}

	_, err = svc.UpdateQuantity(&userID, "", key, &UpdateCartItemRequest{Quantity: 3})
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(&userID, "", key, &UpdateCartItemRequest{Quantity: 0})
	require.NoError(t, err)

	_, err = svc.RemoveFromCart(&userID, "", LineKey{ProductID: 999, Size: 9})
	require.NoError(t, err)

	_, err = svc.RemoveFromCart(&userID, "", key)
	require.NoError(t, err)

	// Only the original add toasted.
	assert.Len(t, spy.successes, 1)
	assert.Empty(t, spy.failures)
}

func TestUpdateQuantityBelowOneLeavesCartUnchanged(t *testing.T) {
	svc, _ := newTestService(t)
	snk := seedSneaker(t, svc.db)
	userID := uint(7)

	_, err := svc.AddToCart(&userID, "", &AddToCartRequest{ProductID: snk.ID, Size: 9})
	require.NoError(t, err)

	key := LineKey{ProductID: snk.ID, Size: 9}

	for _, quantity := range []int{0, -3} {
		resp, err := svc.UpdateQuantity(&userID, "", key, &UpdateCartItemRequest{Quantity: quantity})
		require.NoError(t, err, "quantity %d must be ignored, not rejected", quantity)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 1, resp.Items[0].Quantity)
	}
}

// Sub-minimum quantities must survive request binding so the cart's own
// guard handles them; zero and negative payloads behave identically.
func TestUpdateCartItemRequestBindsSubMinimumQuantities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, body := range []string{`{"quantity":0}`, `{"quantity":-3}`} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("PUT", "/cart/items/1/9", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		var req UpdateCartItemRequest
		assert.NoError(t, c.ShouldBindJSON(&req), "payload %s must bind", body)
	}
}
