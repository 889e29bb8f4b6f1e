package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/rs/zerolog"
)

// RazorpayGateway implements Gateway on top of the Razorpay orders API.
type RazorpayGateway struct {
	client *razorpay.Client
	logger zerolog.Logger
}

// NewRazorpayGateway creates a gateway client from API credentials.
func NewRazorpayGateway(keyID, keySecret string, logger zerolog.Logger) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		logger: logger,
	}
}

// CreateOrder creates an auto-capture order at the gateway.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		g.logger.Error().Err(err).Str("receipt", receipt).Msg("Failed to create gateway order")
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("gateway returned order without id")
	}

	order := &Order{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}
	if amt, ok := body["amount"].(float64); ok {
		order.Amount = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok && cur != "" {
		order.Currency = cur
	}

	g.logger.Info().Str("orderId", order.ID).Int64("amount", order.Amount).Str("currency", order.Currency).Msg("Gateway order created")
	return order, nil
}
