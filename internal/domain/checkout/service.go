// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/domain/cart"
	"github.com/your-org/sneakstore-backend/internal/domain/order"
	"github.com/your-org/sneakstore-backend/internal/pkg/notify"
)

// ErrCheckoutInProgress is returned when a second checkout is attempted
// while one is still being processed for the same user.
var ErrCheckoutInProgress = fmt.Errorf("checkout already in progress")

// ErrEmptyCart is returned when checkout is attempted on an empty cart
var ErrEmptyCart = fmt.Errorf("cart is empty")

// Service orchestrates checkout: it prices the cart, places the order and
// clears the cart. At most one checkout runs at a time per user.
type Service struct {
	redisClient  *redis.Client
	config       *config.Config
	cartService  *cart.Service
	orderService *order.Service
	notifier     notify.Notifier
	log          *logrus.Logger
}

// NewService creates a new checkout service
func NewService(redisClient *redis.Client, cfg *config.Config, cartService *cart.Service, orderService *order.Service, notifier notify.Notifier, log *logrus.Logger) *Service {
	return &Service{
		redisClient:  redisClient,
		config:       cfg,
		cartService:  cartService,
		orderService: orderService,
		notifier:     notifier,
		log:          log,
	}
}

// PlaceOrderRequest represents the checkout form payload. The promo code
// is recorded on the order but does not change the price.
type PlaceOrderRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Phone      string `json:"phone"`
	PromoCode  string `json:"promo_code"`
}

// QuoteResponse represents the pre-checkout summary
type QuoteResponse struct {
	Items   []cart.Line        `json:"items"`
	Totals  cart.Totals        `json:"totals"`
	Display cart.DisplayTotals `json:"display"`
}

// Quote returns the priced cart as it would be charged at checkout
func (s *Service) Quote(userID uint) (*QuoteResponse, error) {
	resp, err := s.cartService.GetCart(&userID, "")
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, ErrEmptyCart
	}

	return &QuoteResponse{
		Items:   resp.Items,
		Totals:  resp.Totals,
		Display: resp.Display,
	}, nil
}

// PlaceOrder processes a checkout for the user. While an order is being
// processed, further attempts for the same user fail with
// ErrCheckoutInProgress. The in-flight marker expires on its own if the
// process dies mid-checkout.
func (s *Service) PlaceOrder(userID uint, req *PlaceOrderRequest) (*order.Order, error) {
	ctx := context.Background()
	busyKey := fmt.Sprintf("checkout:inflight:%d", userID)

	acquired, err := s.redisClient.SetNX(ctx, busyKey, time.Now().UTC().Unix(), s.config.Checkout.InFlightTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire checkout lock: %w", err)
	}
	if !acquired {
		return nil, ErrCheckoutInProgress
	}
	defer s.redisClient.Del(ctx, busyKey)

	cartResp, err := s.cartService.GetCart(&userID, "")
	if err != nil {
		return nil, err
	}
	if len(cartResp.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Simulated payment processing window
	time.Sleep(s.config.Checkout.ProcessingDelay)

	o := &order.Order{
		UserID:         userID,
		Status:         order.StatusConfirmed,
		Subtotal:       cartResp.Totals.Subtotal,
		Tax:            cartResp.Totals.Tax,
		Shipping:       cartResp.Totals.Shipping,
		Total:          cartResp.Totals.Total,
		PromoCode:      req.PromoCode,
		ShipFirstName:  req.FirstName,
		ShipLastName:   req.LastName,
		ShipStreet:     req.Street,
		ShipCity:       req.City,
		ShipPostalCode: req.PostalCode,
		ShipPhone:      req.Phone,
	}
	for _, line := range cartResp.Items {
		o.Items = append(o.Items, order.OrderItem{
			SneakerID: line.ProductID,
			Name:      line.Name,
			Brand:     line.Brand,
			Image:     line.Image,
			Size:      line.Size,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	if err := s.orderService.Create(o); err != nil {
		s.notifier.Error(fmt.Sprintf("user:%d", userID), "Something went wrong placing your order. Please try again.")
		return nil, err
	}

	if err := s.cartService.ClearCart(&userID, ""); err != nil {
		// The order stands; an uncleared cart is an annoyance, not a failure
		s.log.WithError(err).WithField("order_number", o.OrderNumber).Warn("Failed to clear cart after checkout")
	}

	s.notifier.Success(fmt.Sprintf("user:%d", userID), fmt.Sprintf("Order %s placed successfully!", o.OrderNumber))

	s.log.WithFields(logrus.Fields{
		"user_id":      userID,
		"order_number": o.OrderNumber,
		"total":        o.Total.StringFixed(2),
	}).Info("Order placed")

	return o, nil
}
