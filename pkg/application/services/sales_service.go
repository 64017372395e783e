package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bcollado0310/agora-erp/pkg/application/services/assist"
	"github.com/Bcollado0310/agora-erp/pkg/application/services/notify"
	domainservices "github.com/Bcollado0310/agora-erp/pkg/domain/services"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/domain/repositories"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/events"
)

// AssistMode selects which simulated capture flow produced a command
type AssistMode int

const (
	VoiceMode AssistMode = iota
	UploadMode
)

// SalesService manages the sales cart and commits it to the sale collection.
// The cart is the draft phase: items accumulate, can be removed, and are
// discarded if abandoned. CompleteSale is the single commit action.
type SalesService struct {
	sales    repositories.SaleRepository
	ids      IDGenerator
	notifier *notify.Notifier
	runner   *assist.Runner
	store    events.EventStore
	now      func() time.Time

	cart []entities.CartItem
}

// NewSalesService creates a sales service
func NewSalesService(
	sales repositories.SaleRepository,
	ids IDGenerator,
	notifier *notify.Notifier,
	runner *assist.Runner,
	store events.EventStore,
) *SalesService {
	return &SalesService{
		sales:    sales,
		ids:      ids,
		notifier: notifier,
		runner:   runner,
		store:    store,
		now:      time.Now,
	}
}

// DeriveCategory maps a product name to its category when the caller does not
// supply one
func DeriveCategory(productName string) string {
	switch {
	case strings.Contains(productName, "Women"):
		return "Women's Shoes"
	case strings.Contains(productName, "Kids"):
		return "Kids' Shoes"
	case strings.Contains(productName, "Dress"):
		return "Dresses"
	default:
		return "Men's Shoes"
	}
}

// AddItem appends a draft line to the cart. An empty category is derived from
// the product name.
func (s *SalesService) AddItem(product, category string, quantity int, amount decimal.Decimal, channel entities.SaleChannel) error {
	if product == "" {
		return fmt.Errorf("product cannot be empty")
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative, got %s", amount)
	}
	if category == "" {
		category = DeriveCategory(product)
	}

	s.cart = append(s.cart, entities.CartItem{
		Product:     product,
		Category:    category,
		Quantity:    quantity,
		TotalAmount: amount,
		Channel:     channel,
	})
	return nil
}

// RemoveItem drops the draft line at index
func (s *SalesService) RemoveItem(index int) error {
	if index < 0 || index >= len(s.cart) {
		return fmt.Errorf("cart index out of range: %d", index)
	}
	s.cart = append(s.cart[:index], s.cart[index+1:]...)
	return nil
}

// PendingItems returns a snapshot of the cart
func (s *SalesService) PendingItems() []entities.CartItem {
	return append([]entities.CartItem(nil), s.cart...)
}

// PendingTotal returns the sum of cart amounts
func (s *SalesService) PendingTotal() decimal.Decimal {
	return domainservices.PendingCartTotal(s.cart)
}

// CompleteSale commits the whole cart as one sale batch. Every line shares a
// timestamp and an order base, numbered ORD-<base>-1, ORD-<base>-2 and so on.
// An empty cart is a silent no-op.
func (s *SalesService) CompleteSale() ([]*entities.Sale, error) {
	if len(s.cart) == 0 {
		return nil, nil
	}

	timestamp := s.now().Truncate(time.Minute)
	base := s.ids.NextID("ORD")

	committed := make([]*entities.Sale, 0, len(s.cart))
	for i, item := range s.cart {
		sale, err := entities.NewSale(
			fmt.Sprintf("%s-%d", base, i+1),
			timestamp,
			item.Product,
			item.Category,
			item.Quantity,
			item.TotalAmount,
			item.Channel,
			entities.Completed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to build sale from cart line %d: %w", i, err)
		}
		committed = append(committed, sale)
	}

	if err := s.sales.AddSales(committed); err != nil {
		return nil, fmt.Errorf("failed to record sales: %w", err)
	}
	s.cart = nil

	for _, sale := range committed {
		_ = s.store.AppendEvent(events.SalesStream, events.NewEvent(events.SaleRecordedEvent, events.SalesStream, events.SaleRecorded{Sale: *sale}))
	}
	s.notifier.Show("Sale recorded successfully.")

	return committed, nil
}

// RecordAssisted schedules the simulated capture flow: after the processing
// delay a canned sale is recorded and a mode-specific notification shown. It
// returns false while a previous capture is still processing.
func (s *SalesService) RecordAssisted(mode AssistMode) bool {
	return s.runner.Start(func() {
		sale := &entities.Sale{
			ID:          s.ids.NextID("AI"),
			DateTime:    s.now().Truncate(time.Minute),
			Product:     "Men's Mesh Runner",
			Category:    "Men's Shoes",
			Quantity:    2,
			TotalAmount: decimal.NewFromInt(220),
			Channel:     entities.InStore,
			Status:      entities.Completed,
		}
		if err := s.sales.AddSale(sale); err != nil {
			return
		}
		_ = s.store.AppendEvent(events.SalesStream, events.NewEvent(events.SaleRecordedEvent, events.SalesStream, events.SaleRecorded{Sale: *sale}))

		if mode == VoiceMode {
			s.notifier.Show("Agora has captured a new sale using your description.")
		} else {
			s.notifier.Show("Invoice processed. A new sale has been added.")
		}
	})
}
