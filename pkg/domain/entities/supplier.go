package entities

import (
	"fmt"
)

// SupplierStatus represents the status of a supplier relationship
type SupplierStatus int

const (
	Active SupplierStatus = iota
	OnHold
)

// String method for SupplierStatus enum
func (s SupplierStatus) String() string {
	switch s {
	case Active:
		return "Active"
	case OnHold:
		return "On Hold"
	default:
		return "Unknown"
	}
}

// Supplier represents a product supplier. Products reference a supplier by
// name, so renaming a supplier orphans its products by design of the join.
type Supplier struct {
	ID           string
	Name         string
	ContactName  string
	Categories   []string
	LeadTimeDays int
	Email        string
	Status       SupplierStatus
}

// NewSupplier creates a validated Supplier
func NewSupplier(
	id, name, contactName string,
	categories []string,
	leadTimeDays int,
	email string,
	status SupplierStatus,
) (*Supplier, error) {
	if id == "" {
		return nil, fmt.Errorf("supplier id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("supplier name cannot be empty")
	}
	if leadTimeDays <= 0 {
		return nil, fmt.Errorf("lead time must be positive, got %d", leadTimeDays)
	}

	return &Supplier{
		ID:           id,
		Name:         name,
		ContactName:  contactName,
		Categories:   categories,
		LeadTimeDays: leadTimeDays,
		Email:        email,
		Status:       status,
	}, nil
}
