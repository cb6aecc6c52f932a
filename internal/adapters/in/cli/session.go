// Package cli is the inbound adapter: a line-oriented console session that
// drives one order flow from search to checkout. All prompts block until
// valid input arrives; invalid input re-prompts and never aborts the flow.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/merchant"
	"foodorder/internal/core/domain/model/order"
)

// cartDoneSentinel finishes cart building at the menu prompt.
const cartDoneSentinel = "0"

// ErrInputClosed is returned when the input stream ends while a prompt is
// still waiting for an answer.
var ErrInputClosed = errors.New("input stream closed")

// Session runs the interactive order flow over a line-oriented reader and
// writer. One session serves one customer interaction; the handlers it
// composes carry all business logic.
type Session struct {
	scanner  *bufio.Scanner
	out      io.Writer
	search   queries.SearchMerchantsQueryHandler
	checkout commands.CheckoutCommandHandler
}

// NewSession creates a session reading prompts' answers from in and writing
// prompts, traces, and results to out.
func NewSession(
	in io.Reader,
	out io.Writer,
	search queries.SearchMerchantsQueryHandler,
	checkout commands.CheckoutCommandHandler,
) *Session {
	return &Session{
		scanner:  bufio.NewScanner(in),
		out:      out,
		search:   search,
		checkout: checkout,
	}
}

// Run prompts for the customer's name and runs one order flow.
// The name is taken as-is; an empty line is a valid (anonymous) customer.
func (s *Session) Run(ctx context.Context) error {
	name, err := s.readLine("Your name: ")
	if err != nil {
		return err
	}
	return s.RunOrderFlow(ctx, name)
}

// RunOrderFlow composes one complete flow: search, merchant selection, cart
// building, and checkout.
//
// An empty search result or an empty cart short-circuits the flow with a
// message before any Order is constructed; abandoned flows leave no order
// behind.
func (s *Session) RunOrderFlow(ctx context.Context, customerName string) error {
	keyword, err := s.readLine("Search merchants (e.g. Chicken): ")
	if err != nil {
		return err
	}

	query, err := queries.NewSearchMerchantsQuery(keyword)
	if err != nil {
		return err
	}
	matches, err := s.search.Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No merchants matched your search.")
		return nil
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Merchants:")
	chosen, err := s.SelectMerchant(matches)
	if err != nil {
		return err
	}

	cart, err := s.BuildCart(chosen)
	if err != nil {
		return err
	}

	if len(cart) == 0 {
		fmt.Fprintln(s.out, "Cart is empty, closing the order flow.")
		return nil
	}

	return s.Checkout(ctx, customerName, chosen, cart)
}

// SelectMerchant shows the candidates as a numbered list and prompts until a
// valid 1..N selection is entered. Out-of-range and non-numeric input
// re-prompt; the method returns only with a chosen merchant or an input
// stream error.
func (s *Session) SelectMerchant(candidates []*merchant.Merchant) (*merchant.Merchant, error) {
	for i, m := range candidates {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, m.Name())
	}

	for {
		input, err := s.readLine("Merchant number: ")
		if err != nil {
			return nil, err
		}

		position, err := ParseIndex(input, len(candidates))
		if err != nil {
			fmt.Fprintln(s.out, "Enter a valid number.")
			continue
		}

		return candidates[position-1], nil
	}
}

// BuildCart shows the merchant's menu and interactively collects line items.
//
// Each iteration either finishes the cart (sentinel "0") or appends one line
// item after validating the menu position and the quantity. Invalid input
// re-prompts without terminating the loop or touching the cart. The returned
// cart may be empty when the user finishes immediately.
func (s *Session) BuildCart(m *merchant.Merchant) (order.LineItems, error) {
	fmt.Fprintf(s.out, "\nMenu of %s:\n", m.Name())
	for i, item := range m.Menu().Items() {
		fmt.Fprintf(s.out, "%d. %s - %d\n", i+1, item.Name(), item.Price())
	}
	fmt.Fprintln(s.out, "0. Finish order")

	var cart order.LineItems
	for {
		choice, err := s.readLine("Menu number (0 to finish): ")
		if err != nil {
			return nil, err
		}
		if choice == cartDoneSentinel {
			break
		}

		position, err := ParseIndex(choice, m.Menu().Len())
		if err != nil {
			fmt.Fprintln(s.out, "Enter a valid number.")
			continue
		}

		qtyInput, err := s.readLine("Quantity: ")
		if err != nil {
			return nil, err
		}
		quantity, err := ParseQuantity(qtyInput)
		if err != nil {
			fmt.Fprintln(s.out, "Quantity must be a whole number of at least 1.")
			continue
		}

		item, err := m.Menu().ItemAt(position - 1)
		if err != nil {
			return nil, err
		}
		lineItem, err := order.NewLineItem(item.Name(), quantity, item.Price())
		if err != nil {
			return nil, err
		}

		cart = append(cart, lineItem)
	}

	return cart, nil
}

// Checkout shows the cart total, prompts for the payment method, and hands
// the finalized attempt to the checkout handler. The final line reports the
// short order id on success or a cancellation notice after a declined card.
func (s *Session) Checkout(
	ctx context.Context,
	customerName string,
	m *merchant.Merchant,
	cart order.LineItems,
) error {
	fmt.Fprintf(s.out, "\nOrder total: %d\n", cart.Total())

	methodInput, err := s.readLine("Payment method (card / cash): ")
	if err != nil {
		return err
	}
	method := commands.ParsePaymentMethod(methodInput)

	cardNumber := ""
	if method == commands.MethodCard {
		cardNumber, err = s.readLine("Card number (****-****-****-****): ")
		if err != nil {
			return err
		}
	} else {
		fmt.Fprintln(s.out, "[App] cash selected, payment due on delivery")
	}

	cmd, err := commands.NewCheckoutCommand(customerName, m, cart, method, cardNumber)
	if err != nil {
		return err
	}

	placed, err := s.checkout.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	switch placed.Status() {
	case order.Cancelled:
		fmt.Fprintln(s.out, "Payment failed, order cancelled.")
	case order.Delivered:
		fmt.Fprintf(s.out, "[App] order complete! id=%s\n", placed.ID().Short())
	}

	return nil
}

// readLine prints the prompt and returns the next input line, trimmed.
// Returns ErrInputClosed when the input stream ends.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}
