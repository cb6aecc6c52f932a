package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// maskedSuffixLength is how many trailing characters of the card number are
// passed to the gateway. The full number never leaves the command.
const maskedSuffixLength = 4

// CheckoutCommandHandler drives an order through its lifecycle: construction,
// payment, merchant acceptance, and delivery.
//
// The handler is the sole writer of order status. Every flow it runs ends
// with the returned order in exactly one terminal state:
//
//	card approved / cash  -> Delivered
//	card declined         -> Cancelled (no acceptance, no delivery)
//
// Example:
//
//	handler := NewCheckoutCommandHandler(gateway, deliverer)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if placed.Status() == order.Cancelled {
//	    // payment declined
//	}
type CheckoutCommandHandler struct {
	gateway   ports.PaymentGateway
	deliverer ports.Deliverer
}

// NewCheckoutCommandHandler creates a handler using the given payment gateway
// and deliverer.
func NewCheckoutCommandHandler(gateway ports.PaymentGateway, deliverer ports.Deliverer) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		gateway:   gateway,
		deliverer: deliverer,
	}
}

// Handle processes the checkout command.
//
// A fresh Order is constructed for every attempt; its total is fixed at
// construction. For card payment the gateway is asked to authorize the total:
// a decline cancels the order and returns it without touching the merchant or
// the deliverer. Cash payment skips the gateway. Once paid, the merchant
// accepts the order (which synchronously runs delivery) and the handler
// records the Delivered transition.
//
// The returned order is always in a terminal state when err is nil.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		kernel.NewOrderID(),
		cmd.CustomerName(),
		cmd.Merchant().Name(),
		cmd.Cart(),
	)
	if err != nil {
		return nil, err
	}

	if cmd.Method() == MethodCard {
		approved, err := h.gateway.Authorize(ctx, maskedSuffix(cmd.CardNumber()), placed.TotalAmount())
		if err != nil {
			return nil, err
		}
		if !approved {
			if err := placed.Cancel(); err != nil {
				return nil, err
			}
			return placed, nil
		}
	}

	if err := placed.Pay(); err != nil {
		return nil, err
	}

	if err := cmd.Merchant().AcceptOrder(ctx, placed, h.deliverer); err != nil {
		return nil, err
	}

	if err := placed.Deliver(); err != nil {
		return nil, err
	}

	return placed, nil
}

// maskedSuffix returns the trailing characters of the card number used in
// gateway traces. Short inputs are passed through unchanged.
func maskedSuffix(cardNumber string) string {
	runes := []rune(cardNumber)
	if len(runes) <= maskedSuffixLength {
		return cardNumber
	}
	return string(runes[len(runes)-maskedSuffixLength:])
}
