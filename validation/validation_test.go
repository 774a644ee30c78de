package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	assert.Nil(t, Name("Cafeteira Elétrica"))
	assert.NotNil(t, Name("a"))
	assert.NotNil(t, Name("  "))
	assert.NotNil(t, Name(strings.Repeat("x", 201)))
}

func TestSlug(t *testing.T) {
	assert.Nil(t, Slug("cafeteira-eletrica-110v"))
	assert.NotNil(t, Slug(""))
	assert.NotNil(t, Slug("Cafeteira"))
	assert.NotNil(t, Slug("cafeteira--eletrica"))
	assert.NotNil(t, Slug("-cafeteira"))
	assert.NotNil(t, Slug("cafeteira eletrica"))
}

func TestSKU(t *testing.T) {
	assert.Nil(t, SKU("PROD-001"))
	assert.NotNil(t, SKU(""))
	assert.NotNil(t, SKU("prod-001"))
	assert.NotNil(t, SKU("PROD 001"))
}

func TestPrice(t *testing.T) {
	assert.Nil(t, Price(0.01))
	assert.NotNil(t, Price(0))
	assert.NotNil(t, Price(-10))
}

func TestComparePrice(t *testing.T) {
	assert.Nil(t, ComparePrice(0, 100))   // unset is fine
	assert.Nil(t, ComparePrice(150, 100)) // a real discount
	assert.NotNil(t, ComparePrice(100, 100))
	assert.NotNil(t, ComparePrice(80, 100))
	assert.NotNil(t, ComparePrice(-1, 100))
}

func TestDimensions(t *testing.T) {
	assert.Nil(t, Dimensions(""))
	assert.Nil(t, Dimensions("10x20x30"))
	assert.Nil(t, Dimensions("10.5x20x30"))
	assert.NotNil(t, Dimensions("10x20"))
	assert.NotNil(t, Dimensions("grande"))
}

func TestTextLimits(t *testing.T) {
	assert.Nil(t, ShortDescription(strings.Repeat("x", 500)))
	assert.NotNil(t, ShortDescription(strings.Repeat("x", 501)))
	assert.Nil(t, Description(strings.Repeat("x", 5000)))
	assert.NotNil(t, Description(strings.Repeat("x", 5001)))
	assert.NotNil(t, MetaTitle(strings.Repeat("x", 71)))
	assert.NotNil(t, MetaDescription(strings.Repeat("x", 161)))
}

func TestLimitsCountCharactersNotBytes(t *testing.T) {
	// "é" is two bytes in UTF-8; 200 of them still fit the 200-character
	// name limit.
	assert.Nil(t, Name(strings.Repeat("é", 200)))
	assert.NotNil(t, Name(strings.Repeat("é", 201)))
	assert.Nil(t, ShortDescription(strings.Repeat("ç", 500)))
	assert.NotNil(t, ShortDescription(strings.Repeat("ç", 501)))
}

func TestEmail(t *testing.T) {
	assert.Nil(t, Email("cliente@example.com.br"))
	assert.NotNil(t, Email(""))
	assert.NotNil(t, Email("cliente"))
	assert.NotNil(t, Email("cliente@"))
	assert.NotNil(t, Email("cli ente@example.com"))
}

func TestRating(t *testing.T) {
	assert.Nil(t, Rating(1))
	assert.Nil(t, Rating(5))
	assert.NotNil(t, Rating(0))
	assert.NotNil(t, Rating(6))
}

func TestFieldErrorReporting(t *testing.T) {
	err := Price(0)
	require.NotNil(t, err)
	assert.Equal(t, "price", err.Field)
	assert.Contains(t, err.Error(), "price: ")

	errs := Errors{err, Stock(-1), Price(-5)}
	byField := errs.ByField()
	assert.Len(t, byField, 2) // the second price error does not overwrite the first
	assert.Contains(t, byField, "price")
	assert.Contains(t, byField, "stock")
}

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Cafeteira Elétrica 110V": "cafeteira-eletrica-110v",
		"  Fone de Ouvido Pro  ":  "fone-de-ouvido-pro",
		"Ação & Aventura":         "acao-aventura",
		"TV 55\" 4K":              "tv-55-4k",
		"---":                     "",
		"Camiseta    Básica":      "camiseta-basica",
	}
	for name, want := range cases {
		assert.Equal(t, want, GenerateSlug(name), name)
	}
}
