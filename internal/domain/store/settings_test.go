package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeadmin/backend/internal/domain/shipping"
)

func TestDefaultSettings(t *testing.T) {
	storeID := uuid.New()
	settings := DefaultSettings(storeID)

	assert.Equal(t, storeID, settings.StoreID)
	assert.Equal(t, "EGP", settings.Currency)
	assert.False(t, settings.ProductsSeeded)
	assert.NotNil(t, settings.Products)
	assert.Empty(t, settings.Products)
	assert.NotNil(t, settings.ShippingCompanies)
}

func TestStoreSettings_Companies(t *testing.T) {
	storeID := uuid.New()

	t.Run("add and find by name", func(t *testing.T) {
		settings := DefaultSettings(storeID)
		company, err := shipping.NewCompany(storeID, "Bosta")
		require.NoError(t, err)

		require.NoError(t, settings.AddCompany(company))
		found := settings.FindCompany("Bosta")
		require.NotNil(t, found)
		assert.Equal(t, "Bosta", found.Name)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		settings := DefaultSettings(storeID)
		first, err := shipping.NewCompany(storeID, "Bosta")
		require.NoError(t, err)
		require.NoError(t, settings.AddCompany(first))

		second, err := shipping.NewCompany(storeID, "Bosta")
		require.NoError(t, err)
		assert.Error(t, settings.AddCompany(second))
	})

	t.Run("remove cascades the whole record", func(t *testing.T) {
		settings := DefaultSettings(storeID)
		company, err := shipping.NewCompany(storeID, "Aramex")
		require.NoError(t, err)
		require.NoError(t, settings.AddCompany(company))

		assert.True(t, settings.RemoveCompany("Aramex"))
		assert.Nil(t, settings.FindCompany("Aramex"))
		assert.False(t, settings.RemoveCompany("Aramex"))
	})
}

func TestStoreSettings_AddDiscountCode(t *testing.T) {
	settings := DefaultSettings(uuid.New())

	dc, err := settings.AddDiscountCode("welcome", DiscountTypeFixed, decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.Equal(t, "WELCOME", dc.Code)
	assert.Len(t, settings.DiscountCodes, 1)

	// Duplicate code strings are accepted.
	_, err = settings.AddDiscountCode("welcome", DiscountTypeFixed, decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.Len(t, settings.DiscountCodes, 2)

	_, err = settings.AddDiscountCode("", DiscountTypeFixed, decimal.NewFromInt(25))
	assert.Error(t, err)
	assert.Len(t, settings.DiscountCodes, 2)
}

func TestStoreSettings_Clone(t *testing.T) {
	storeID := uuid.New()
	settings := DefaultSettings(storeID)

	company, err := shipping.NewCompany(storeID, "Bosta")
	require.NoError(t, err)
	company.GenerateZonesFromCatalog(nil)
	require.NoError(t, settings.AddCompany(company))

	settings.Products = append(settings.Products, Product{
		ID:      "p1",
		Name:    "Tee",
		Price:   decimal.NewFromInt(250),
		Details: Details{"color": "black"},
	})
	settings.Orders = append(settings.Orders, Order{
		ID:    "o1",
		Items: []OrderItem{{ProductID: "p1", Quantity: 2}},
	})
	settings.Collections = append(settings.Collections, Collection{
		ID:         "c1",
		ProductIDs: []string{"p1"},
	})

	clone := settings.Clone()

	// Mutating the clone must not leak back into the original.
	clone.Products[0].Details["color"] = "white"
	clone.Orders[0].Items[0].Quantity = 9
	clone.Collections[0].ProductIDs[0] = "other"
	clone.ShippingCompanies[0].Name = "renamed"

	assert.Equal(t, "black", settings.Products[0].Details["color"])
	assert.Equal(t, 2, settings.Orders[0].Items[0].Quantity)
	assert.Equal(t, "p1", settings.Collections[0].ProductIDs[0])
	assert.Equal(t, "Bosta", settings.ShippingCompanies[0].Name)
}

func TestScalarSettings_RoundTrip(t *testing.T) {
	settings := DefaultSettings(uuid.New())
	settings.StoreName = "Cairo Outfitters"
	settings.ProductsSeeded = true

	scalars := settings.Scalars()
	assert.Equal(t, "Cairo Outfitters", scalars.StoreName)
	assert.True(t, scalars.ProductsSeeded)

	other := DefaultSettings(uuid.New())
	other.ApplyScalars(scalars)
	assert.Equal(t, "Cairo Outfitters", other.StoreName)
	assert.True(t, other.ProductsSeeded)
	assert.True(t, other.GlobalFees.InsuranceFeePercent.Equal(settings.GlobalFees.InsuranceFeePercent))
}
