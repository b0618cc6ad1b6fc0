package shipping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	storeID := uuid.New()

	t.Run("creates an active company with default policy", func(t *testing.T) {
		company, err := NewCompany(storeID, "Aramex")
		require.NoError(t, err)

		assert.Equal(t, storeID, company.StoreID)
		assert.Equal(t, "Aramex", company.Name)
		assert.True(t, company.Active)
		assert.False(t, company.FeePolicy.UseCustomFees)
		assert.Empty(t, company.Zones)
	})

	t.Run("trims the name", func(t *testing.T) {
		company, err := NewCompany(storeID, "  Bosta ")
		require.NoError(t, err)
		assert.Equal(t, "Bosta", company.Name)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := NewCompany(storeID, "   ")
		require.Error(t, err)
	})

	t.Run("raises a created event", func(t *testing.T) {
		company, err := NewCompany(storeID, "Aramex")
		require.NoError(t, err)

		events := company.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeCompanyCreated, events[0].EventType())
	})
}

func TestResolveRate(t *testing.T) {
	storeID := uuid.New()

	build := func() *Company {
		company, err := NewCompany(storeID, "Aramex")
		require.NoError(t, err)

		zone := NewZone("Giza")
		zone.SetRates(rates(50, 10))
		zone.Cities = []City{
			NewLinkedCity("Haram", zone.Rates),
			NewLinkedCity("Dokki", zone.Rates),
		}
		zone.Cities[1].Unlink(zone.Rates)
		zone.Cities[1].Rates = rates(40, 8)
		require.NoError(t, company.AddZone(zone))
		return company
	}

	t.Run("linked city bills at the zone price", func(t *testing.T) {
		company := build()
		rate, err := company.ResolveRate(company.Zones[0].ID, "Haram")
		require.NoError(t, err)
		assert.True(t, rate.ShippingPrice.Equal(decimal.NewFromInt(50)))
	})

	t.Run("unlinked city bills at its own price", func(t *testing.T) {
		company := build()
		rate, err := company.ResolveRate(company.Zones[0].ID, "Dokki")
		require.NoError(t, err)
		assert.True(t, rate.ShippingPrice.Equal(decimal.NewFromInt(40)))
	})

	t.Run("no city resolves the zone default", func(t *testing.T) {
		company := build()
		rate, err := company.ResolveRate(company.Zones[0].ID, "")
		require.NoError(t, err)
		assert.True(t, rate.Equal(company.Zones[0].Rates))
	})

	t.Run("inactive company is not offered", func(t *testing.T) {
		company := build()
		company.SetActive(false)
		_, err := company.ResolveRate(company.Zones[0].ID, "Haram")
		require.Error(t, err)
	})

	t.Run("inactive zone is not offered even with active cities", func(t *testing.T) {
		company := build()
		company.Zones[0].Active = false
		_, err := company.ResolveRate(company.Zones[0].ID, "Haram")
		require.Error(t, err)
	})

	t.Run("inactive city is not offered even in an active zone", func(t *testing.T) {
		company := build()
		company.Zones[0].Cities[0].Active = false
		_, err := company.ResolveRate(company.Zones[0].ID, "Haram")
		require.Error(t, err)
	})

	t.Run("unknown zone or city is not found", func(t *testing.T) {
		company := build()
		_, err := company.ResolveRate(uuid.New(), "")
		require.Error(t, err)
		_, err = company.ResolveRate(company.Zones[0].ID, "Gotham")
		require.Error(t, err)
	})
}

func TestRemoveZone(t *testing.T) {
	company, err := NewCompany(uuid.New(), "Aramex")
	require.NoError(t, err)
	zone := NewZone("Giza")
	require.NoError(t, company.AddZone(zone))

	require.NoError(t, company.RemoveZone(zone.ID))
	assert.Empty(t, company.Zones)
	assert.Error(t, company.RemoveZone(zone.ID))
}

func TestFeePolicyEffective(t *testing.T) {
	global := DefaultFeePolicy()
	global.EnableReturnAfter = true
	global.InspectionFee = decimal.NewFromInt(15)

	t.Run("custom fees use the company policy as a whole", func(t *testing.T) {
		own := DefaultFeePolicy()
		own.UseCustomFees = true
		own.EnableExchange = true

		effective := own.Effective(global)
		assert.True(t, effective.EnableExchange)
		assert.False(t, effective.EnableReturnAfter)
		assert.True(t, effective.InspectionFee.IsZero())
	})

	t.Run("global fallback is wholesale, never merged", func(t *testing.T) {
		own := DefaultFeePolicy()
		own.EnableExchange = true // ignored while UseCustomFees is false

		effective := own.Effective(global)
		assert.True(t, effective.EnableReturnAfter)
		assert.False(t, effective.EnableExchange)
		assert.True(t, effective.InspectionFee.Equal(decimal.NewFromInt(15)))
	})
}
