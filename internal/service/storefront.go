// Package service implements the storefront business logic on top of the
// session, catalog, address and checkout layers.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/23prakashjha/Grocery-App/internal/catalog"
	"github.com/23prakashjha/Grocery-App/internal/checkout"
	"github.com/23prakashjha/Grocery-App/internal/client"
	"github.com/23prakashjha/Grocery-App/internal/domain"
	"github.com/23prakashjha/Grocery-App/internal/event"
	"github.com/23prakashjha/Grocery-App/internal/session"
	apperrors "github.com/23prakashjha/Grocery-App/pkg/errors"
)

// MaxQuantityPerItem is the largest quantity accepted for a single cart line.
const MaxQuantityPerItem = 100

// CartLineView is one display row of the cart.
type CartLineView struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	OfferPrice float64 `json:"offer_price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

// CartView is the cart as shown to the shopper. Amounts are rendered to two
// decimals at this edge only.
type CartView struct {
	Lines         []CartLineView `json:"lines"`
	Count         int            `json:"count"`
	Amount        float64        `json:"amount"`
	AmountDisplay string         `json:"amount_display"`
}

// CheckoutView is the order summary panel.
type CheckoutView struct {
	Cart           CartView        `json:"cart"`
	Subtotal       string          `json:"subtotal"`
	Tax            string          `json:"tax"`
	Total          string          `json:"total"`
	Payment        string          `json:"payment"`
	Address        *domain.Address `json:"address,omitempty"`
	CheckoutState  string          `json:"checkout_state"`
	TaxRatePercent float64         `json:"tax_rate_percent"`
	Currency       string          `json:"currency"`
}

// AddressView is the address panel: the fetched list plus the selection.
type AddressView struct {
	Addresses []domain.Address `json:"addresses"`
	Selected  *domain.Address  `json:"selected,omitempty"`
}

// Storefront is the session-facing service.
type Storefront struct {
	sessions   *session.Manager
	catalog    *catalog.View
	catalogSrc *client.CatalogClient
	calculator *checkout.Calculator
	producer   *event.Producer
	logger     *slog.Logger
	currency   string
}

// NewStorefront creates the storefront service.
func NewStorefront(
	sessions *session.Manager,
	view *catalog.View,
	catalogSrc *client.CatalogClient,
	calculator *checkout.Calculator,
	producer *event.Producer,
	logger *slog.Logger,
	currency string,
) *Storefront {
	return &Storefront{
		sessions:   sessions,
		catalog:    view,
		catalogSrc: catalogSrc,
		calculator: calculator,
		producer:   producer,
		logger:     logger,
		currency:   currency,
	}
}

// GetCart returns the cart projection for the session.
func (s *Storefront) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.cartView(sess), nil
}

// AddItem increments the quantity of productID by one. The product does not
// have to exist in the current catalog snapshot; a line without a catalog
// match simply contributes nothing to the displayed cart.
func (s *Storefront) AddItem(ctx context.Context, sessionID, productID string) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	sess.AddItem(productID)
	s.publishCartUpdated(ctx, sess, productID, "add")
	return s.cartView(sess), nil
}

// RemoveItem decrements the quantity of productID by one, dropping the line
// at zero. Removing a product that is not in the cart changes nothing.
func (s *Storefront) RemoveItem(ctx context.Context, sessionID, productID string) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	sess.RemoveItem(productID)
	s.publishCartUpdated(ctx, sess, productID, "remove")
	return s.cartView(sess), nil
}

// UpdateItem sets the quantity of productID directly. Quantities below one
// are rejected here; dropping a line goes through RemoveItem.
func (s *Storefront) UpdateItem(ctx context.Context, sessionID, productID string, quantity int) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if quantity < 1 {
		return nil, apperrors.InvalidInput("quantity must be at least 1")
	}
	if quantity > MaxQuantityPerItem {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerItem))
	}

	sess.UpdateItem(productID, quantity)
	s.publishCartUpdated(ctx, sess, productID, "update")
	return s.cartView(sess), nil
}

// ClearCart drops every cart line.
func (s *Storefront) ClearCart(ctx context.Context, sessionID string) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.ClearCart()
	s.publishCartUpdated(ctx, sess, "", "clear")
	return s.cartView(sess), nil
}

// GetAddresses refreshes the session's addresses for the authenticated user
// and returns the snapshot. A failed refresh degrades to the previous
// snapshot; the address panel going stale must not break the page.
func (s *Storefront) GetAddresses(ctx context.Context, sessionID, userID string) (*AddressView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, apperrors.Unauthorized("sign in to manage addresses")
	}

	if err := sess.Addresses().Refresh(ctx, userID); err != nil {
		s.logger.Warn("serving stale address snapshot",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}
	return s.addressView(sess), nil
}

// SelectAddress picks one of the fetched addresses for delivery.
func (s *Storefront) SelectAddress(ctx context.Context, sessionID, addressID string) (*AddressView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if addressID == "" {
		return nil, apperrors.InvalidInput("address id is required")
	}

	if !sess.Addresses().SelectByID(addressID) {
		return nil, apperrors.NotFound("address", addressID)
	}
	return s.addressView(sess), nil
}

// GetCheckout returns the order summary for the session.
func (s *Storefront) GetCheckout(ctx context.Context, sessionID string) (*CheckoutView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.checkoutView(sess), nil
}

// SetPayment records the payment option for the session.
func (s *Storefront) SetPayment(ctx context.Context, sessionID, option string) (*CheckoutView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	payment, err := domain.ParsePaymentOption(option)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	sess.SetPayment(payment)
	return s.checkoutView(sess), nil
}

// SubmitOrder places the session's order. Checkout errors pass through
// untranslated; the transport layer maps each kind to its status code.
func (s *Storefront) SubmitOrder(ctx context.Context, sessionID string) (*checkout.SubmitResult, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	// Snapshot everything the event reports before the round trip; a
	// selection changed while the order is in flight must not leak into it.
	amount := sess.CartAmount(s.catalog)
	lines := sess.CartLines(s.catalog)
	payment := sess.Payment()
	var addressID string
	if a, ok := sess.Addresses().Selected(); ok {
		addressID = a.ID
	}

	res, err := sess.SubmitOrder(ctx, s.catalog)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	s.producer.PublishOrderPlaced(ctx, event.OrderPlacedPayload{
		SessionID: sessionID,
		Items:     items,
		AddressID: addressID,
		Payment:   string(payment),
		Amount:    amount,
	})

	return res, nil
}

// RefreshCatalog re-fetches the product list and swaps the snapshot. The
// number of products in the new snapshot is returned.
func (s *Storefront) RefreshCatalog(ctx context.Context) (int, error) {
	products, err := s.catalogSrc.FetchProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("refresh catalog: %w", err)
	}

	s.catalog.Replace(products)
	s.logger.Info("catalog refreshed", slog.Int("products", len(products)))
	return len(products), nil
}

// Products returns the current catalog snapshot.
func (s *Storefront) Products(ctx context.Context) []domain.Product {
	return s.catalog.Products()
}

func (s *Storefront) session(sessionID string) (*session.Session, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	return s.sessions.GetOrCreate(sessionID), nil
}

func (s *Storefront) cartView(sess *session.Session) *CartView {
	lines := sess.CartLines(s.catalog)

	view := &CartView{
		Lines: make([]CartLineView, 0, len(lines)),
		Count: sess.CartCount(),
	}
	for _, l := range lines {
		view.Lines = append(view.Lines, CartLineView{
			ProductID:  l.Product.ID,
			Name:       l.Product.Name,
			Category:   l.Product.Category,
			OfferPrice: l.Product.OfferPrice,
			Quantity:   l.Quantity,
			Subtotal:   l.Subtotal(),
		})
	}
	view.Amount = sess.CartAmount(s.catalog)
	view.AmountDisplay = s.money(view.Amount)
	return view
}

func (s *Storefront) checkoutView(sess *session.Session) *CheckoutView {
	cart := s.cartView(sess)
	totals := s.calculator.Totals(sess.CartLines(s.catalog))

	view := &CheckoutView{
		Cart:           *cart,
		Subtotal:       s.money(totals.Subtotal),
		Tax:            s.money(totals.Tax),
		Total:          s.money(totals.Total),
		Payment:        string(sess.Payment()),
		CheckoutState:  string(sess.CheckoutState()),
		TaxRatePercent: s.calculator.RatePercent,
		Currency:       s.currency,
	}
	if a, ok := sess.Addresses().Selected(); ok {
		addr := a
		view.Address = &addr
	}
	return view
}

func (s *Storefront) addressView(sess *session.Session) *AddressView {
	view := &AddressView{Addresses: sess.Addresses().Addresses()}
	if a, ok := sess.Addresses().Selected(); ok {
		addr := a
		view.Selected = &addr
	}
	return view
}

func (s *Storefront) money(v float64) string {
	return fmt.Sprintf("%s %.2f", s.currency, v)
}

func (s *Storefront) publishCartUpdated(ctx context.Context, sess *session.Session, productID, action string) {
	s.producer.PublishCartUpdated(ctx, event.CartUpdatedPayload{
		SessionID: sess.ID(),
		ProductID: productID,
		Action:    action,
		Quantity:  sess.Quantity(productID),
		CartCount: sess.CartCount(),
	})
}
