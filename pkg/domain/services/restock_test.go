package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
)

func TestRestockEmail(t *testing.T) {
	supplier := &entities.Supplier{
		ID:          "SUP-001",
		Name:        "Luna Footwear",
		ContactName: "Maria Silva",
	}
	items := []*entities.Product{
		{Name: "Women's Classic White Sneaker", Quantity: 12},
		{Name: "Canvas Slip-Ons", Quantity: 0},
	}

	body := RestockEmail(supplier, items, 50)

	assert.Contains(t, body, "Subject: Restock Request – Agora Shoes")
	assert.Contains(t, body, "Hi Maria Silva,")
	assert.Contains(t, body, "• Women's Classic White Sneaker (Current: 12 units) - Requesting: 50 units")
	assert.Contains(t, body, "• Canvas Slip-Ons (Current: 0 units) - Requesting: 50 units")
	assert.Contains(t, body, "Agora Purchasing Team")
}
