// internal/domain/checkout/service_test.go
package checkout

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/cart"
	"github.com/your-org/sneakstore-backend/internal/domain/catalog"
	"github.com/your-org/sneakstore-backend/internal/domain/order"
	"github.com/your-org/sneakstore-backend/internal/pkg/notify"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

type testEnv struct {
	svc     *Service
	cartSvc *cart.Service
	cfg     *config.Config
	mr      *miniredis.Miniredis
	spy     *notifierSpy
	db      *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
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
		&order.Order{}, &order.OrderItem{},
	))

	cfg := &config.Config{
		Cart: config.CartConfig{SessionTTL: time.Hour},
		Checkout: config.CheckoutConfig{
			ProcessingDelay: time.Millisecond,
			InFlightTTL:     time.Minute,
		},
	}

	spy := &notifierSpy{}
	log := logrus.New()
	log.SetOutput(io.Discard)

	cartSvc := cart.NewService(db, client, cfg, spy)
	orderSvc := order.NewService(db, cfg)

	return &testEnv{
		svc:     NewService(client, cfg, cartSvc, orderSvc, spy, log),
		cartSvc: cartSvc,
		cfg:     cfg,
		mr:      mr,
		spy:     spy,
		db:      db,
	}
}

func (e *testEnv) seedCart(t *testing.T, userID uint) {
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
		Sizes:       []catalog.SneakerSize{{Size: 9}},
	}
	require.NoError(t, e.db.Create(snk).Error)

	_, err := e.cartSvc.AddToCart(&userID, "", &cart.AddToCartRequest{ProductID: snk.ID, Size: 9})
	require.NoError(t, err)

	// Seeding toasts; the tests only care about checkout notifications.
	e.spy.successes = nil
}

func shippingRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{
		FirstName:  "Jordan",
		LastName:   "Myles",
		Street:     "12 Court St",
		City:       "Portland",
		PostalCode: "97201",
	}
}

func TestPlaceOrderRejectsSecondAttemptWhileInFlight(t *testing.T) {
	env := newTestEnv(t)
	env.seedCart(t, 7)

	// Simulate a checkout mid-processing by holding the marker.
	require.NoError(t, env.mr.Set("checkout:inflight:7", "1"))

	_, err := env.svc.PlaceOrder(7, shippingRequest())
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	var count int64
	require.NoError(t, env.db.Model(&order.Order{}).Count(&count).Error)
	assert.Zero(t, count, "rejected attempt must not create an order")

	resp, err := env.cartSvc.GetCart(ptr(uint(7)), "")
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1, "rejected attempt must leave the cart alone")

	// Once the first checkout finishes, the user can order again.
	env.mr.Del("checkout:inflight:7")
	o, err := env.svc.PlaceOrder(7, shippingRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, o.OrderNumber)
}

func TestConcurrentPlaceOrderAllowsExactlyOne(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Checkout.ProcessingDelay = 200 * time.Millisecond
	env.seedCart(t, 7)

	firstErr := make(chan error, 1)
	go func() {
		_, err := env.svc.PlaceOrder(7, shippingRequest())
		firstErr <- err
	}()

	// Let the first attempt take the marker, then race it.
	time.Sleep(50 * time.Millisecond)
	_, err := env.svc.PlaceOrder(7, shippingRequest())
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	require.NoError(t, <-firstErr)

	var count int64
	require.NoError(t, env.db.Model(&order.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPlaceOrderReleasesMarkerAndClearsCart(t *testing.T) {
	env := newTestEnv(t)
	env.seedCart(t, 7)

	o, err := env.svc.PlaceOrder(7, shippingRequest())
	require.NoError(t, err)

	assert.Contains(t, o.OrderNumber, "ORD-")
	assert.Equal(t, order.StatusConfirmed, o.Status)
	assert.False(t, env.mr.Exists("checkout:inflight:7"), "marker must be released after checkout")

	resp, err := env.cartSvc.GetCart(ptr(uint(7)), "")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)

	require.Len(t, env.spy.successes, 1)
	assert.Equal(t, fmt.Sprintf("user:7|Order %s placed successfully!", o.OrderNumber), env.spy.successes[0])
}

func TestPlaceOrderEmptyCartReleasesMarker(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.PlaceOrder(7, shippingRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.False(t, env.mr.Exists("checkout:inflight:7"))
}

func ptr(v uint) *uint {
	return &v
}
