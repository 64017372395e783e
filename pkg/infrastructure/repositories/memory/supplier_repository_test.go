package memory

import (
	"testing"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
)

func TestSupplierRepository_FindSupplierByName(t *testing.T) {
	repo := NewSupplierRepository()

	if err := repo.AddSupplier(&entities.Supplier{ID: "SUP-001", Name: "Luna Footwear", LeadTimeDays: 10}); err != nil {
		t.Fatalf("Failed to add supplier: %v", err)
	}

	tests := []struct {
		name      string
		lookup    string
		expectHit bool
	}{
		{"exact_match", "Luna Footwear", true},
		{"case_sensitive_miss", "luna footwear", false},
		{"unmatched_name", "Ghost Co", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supplier, ok := repo.FindSupplierByName(tt.lookup)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if tt.expectHit && supplier.ID != "SUP-001" {
				t.Errorf("Expected SUP-001, got %s", supplier.ID)
			}
			if !tt.expectHit && supplier != nil {
				t.Errorf("Expected nil supplier on miss, got %v", supplier)
			}
		})
	}
}
