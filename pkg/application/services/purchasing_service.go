package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bcollado0310/agora-erp/pkg/application/services/assist"
	"github.com/Bcollado0310/agora-erp/pkg/application/services/notify"
	domainservices "github.com/Bcollado0310/agora-erp/pkg/domain/services"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/domain/repositories"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/events"
)

// fallbackDeliveryDays is used when the draft supplier has no directory entry
// to take a lead time from.
const fallbackDeliveryDays = 7

// PurchasingService manages purchase order drafts and commits them as
// immutable orders. Draft lines accumulate against a draft supplier; CreateOrder
// is the single commit action.
type PurchasingService struct {
	orders    repositories.PurchaseOrderRepository
	suppliers repositories.SupplierRepository
	ids       IDGenerator
	notifier  *notify.Notifier
	runner    *assist.Runner
	store     events.EventStore
	now       func() time.Time

	draftSupplier string
	draft         []entities.PurchaseOrderItem
}

// NewPurchasingService creates a purchasing service
func NewPurchasingService(
	orders repositories.PurchaseOrderRepository,
	suppliers repositories.SupplierRepository,
	ids IDGenerator,
	notifier *notify.Notifier,
	runner *assist.Runner,
	store events.EventStore,
) *PurchasingService {
	return &PurchasingService{
		orders:    orders,
		suppliers: suppliers,
		ids:       ids,
		notifier:  notifier,
		runner:    runner,
		store:     store,
		now:       time.Now,
	}
}

// SetDraftSupplier records which supplier the draft order is for
func (s *PurchasingService) SetDraftSupplier(name string) {
	s.draftSupplier = name
}

// DraftSupplier returns the draft order's supplier name
func (s *PurchasingService) DraftSupplier() string {
	return s.draftSupplier
}

// AddDraftItem appends a validated line to the draft. The line total is
// computed once here and never re-derived.
func (s *PurchasingService) AddDraftItem(productName string, quantity int, unitCost decimal.Decimal) error {
	item, err := entities.NewPurchaseOrderItem(productName, quantity, unitCost)
	if err != nil {
		return err
	}
	s.draft = append(s.draft, *item)
	return nil
}

// RemoveDraftItem drops the draft line at index
func (s *PurchasingService) RemoveDraftItem(index int) error {
	if index < 0 || index >= len(s.draft) {
		return fmt.Errorf("draft index out of range: %d", index)
	}
	s.draft = append(s.draft[:index], s.draft[index+1:]...)
	return nil
}

// DraftItems returns a snapshot of the draft lines
func (s *PurchasingService) DraftItems() []entities.PurchaseOrderItem {
	return append([]entities.PurchaseOrderItem(nil), s.draft...)
}

// DraftTotal returns the sum of draft line totals
func (s *PurchasingService) DraftTotal() decimal.Decimal {
	return domainservices.OrderTotal(s.draft)
}

// DiscardDraft abandons the draft without committing anything
func (s *PurchasingService) DiscardDraft() {
	s.draftSupplier = ""
	s.draft = nil
}

// CreateOrder commits the draft as a pending purchase order. ItemsCount and
// TotalAmount are recomputed from the lines; the expected delivery date is
// the order date plus the supplier's lead time, or a one-week fallback when
// the supplier is not in the directory. An empty draft is a silent no-op.
func (s *PurchasingService) CreateOrder() (*entities.PurchaseOrder, error) {
	if len(s.draft) == 0 {
		return nil, nil
	}

	orderDate := s.now().Truncate(24 * time.Hour)
	deliveryDays := fallbackDeliveryDays
	if supplier, ok := s.suppliers.FindSupplierByName(s.draftSupplier); ok {
		deliveryDays = supplier.LeadTimeDays
	}

	order, err := entities.NewPurchaseOrder(
		s.ids.NextID("PO"),
		s.draftSupplier,
		orderDate,
		entities.Pending,
		orderDate.AddDate(0, 0, deliveryDays),
		append([]entities.PurchaseOrderItem(nil), s.draft...),
	)
	if err != nil {
		return nil, err
	}

	if err := s.orders.AddOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create purchase order: %w", err)
	}
	s.draftSupplier = ""
	s.draft = nil

	_ = s.store.AppendEvent(events.PurchasingStream, events.NewEvent(events.PurchaseOrderCreatedEvent, events.PurchasingStream, events.PurchaseOrderCreated{Order: *order}))
	s.notifier.Show("Purchase Order created successfully.")

	return order, nil
}

// VoiceDraft schedules the simulated voice-order flow: after the processing
// delay the draft is replaced with the parsed result, ready for review.
// Returns false while a previous command is still processing.
func (s *PurchasingService) VoiceDraft() bool {
	return s.runner.Start(func() {
		item, err := entities.NewPurchaseOrderItem("Men's Mesh Runner", 50, decimal.NewFromInt(55))
		if err != nil {
			return
		}
		s.draftSupplier = "Atlas Footwear"
		s.draft = []entities.PurchaseOrderItem{*item}
		s.notifier.Show("AI parsed your order description.")
	})
}
