package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anderson-code22/lojavirtual/models"
)

func validInput() ProductInput {
	return ProductInput{
		Name:   "Cafeteira Elétrica",
		Slug:   "cafeteira-eletrica",
		SKU:    "CAF-001",
		Price:  199.9,
		Stock:  10,
		Status: string(models.ProductStatusActive),
	}
}

func TestProductInputValid(t *testing.T) {
	input := validInput()
	assert.Empty(t, input.validate())
}

func TestProductInputCollectsAllErrors(t *testing.T) {
	input := validInput()
	input.Name = "x"
	input.Price = 0
	input.SKU = "caf 001"
	input.Status = "published"

	errs := input.validate()
	require.NotEmpty(t, errs)

	byField := errs.ByField()
	assert.Contains(t, byField, "name")
	assert.Contains(t, byField, "price")
	assert.Contains(t, byField, "sku")
	assert.Contains(t, byField, "status")
}

func TestProductInputComparePriceMustBeatPrice(t *testing.T) {
	input := validInput()
	input.ComparePrice = 150 // below the 199.9 sale price

	byField := input.validate().ByField()
	assert.Contains(t, byField, "compare_price")
}

func TestProductInputToModelDefaultsMinStock(t *testing.T) {
	input := validInput()
	p := input.toModel()
	assert.Equal(t, 5, p.MinStockLevel)

	level := 2
	input.MinStockLevel = &level
	p = input.toModel()
	assert.Equal(t, 2, p.MinStockLevel)
}

func TestProductInputToModelUppercasesSKU(t *testing.T) {
	input := validInput()
	input.SKU = "caf-001"
	assert.Equal(t, "CAF-001", input.toModel().SKU)
}
