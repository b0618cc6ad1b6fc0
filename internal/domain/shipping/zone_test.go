package shipping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rates(shipping, extraKg int64) RateSchedule {
	return RateSchedule{
		ShippingPrice:      decimal.NewFromInt(shipping),
		ExtraKgPrice:       decimal.NewFromInt(extraKg),
		ReturnAfterPrice:   decimal.NewFromInt(shipping / 2),
		ReturnWithoutPrice: decimal.NewFromInt(shipping / 2),
		ExchangePrice:      decimal.NewFromInt(shipping),
	}
}

func TestEffectiveRate(t *testing.T) {
	zone := NewZone("Giza")
	zone.SetRates(rates(50, 10))

	t.Run("linked city resolves to zone schedule regardless of stored fields", func(t *testing.T) {
		city := NewLinkedCity("Haram", zone.Rates)
		city.Rates = rates(999, 999) // stale, must be ignored
		city.UseParentFees = true

		effective := zone.EffectiveRate(&city)
		assert.True(t, effective.Equal(zone.Rates))
	})

	t.Run("unlinked city resolves to its own schedule", func(t *testing.T) {
		city := NewLinkedCity("Haram", zone.Rates)
		city.Unlink(zone.Rates)
		city.Rates = rates(40, 8)

		effective := zone.EffectiveRate(&city)
		assert.True(t, effective.ShippingPrice.Equal(decimal.NewFromInt(40)))
	})

	t.Run("inactive city falls through to zone schedule", func(t *testing.T) {
		city := NewLinkedCity("Haram", zone.Rates)
		city.Unlink(zone.Rates)
		city.Rates = rates(40, 8)
		city.Active = false

		effective := zone.EffectiveRate(&city)
		assert.True(t, effective.Equal(zone.Rates))
	})

	t.Run("nil city resolves to zone schedule", func(t *testing.T) {
		assert.True(t, zone.EffectiveRate(nil).Equal(zone.Rates))
	})
}

func TestCityUnlinkSnapshot(t *testing.T) {
	zone := NewZone("Giza")
	zone.SetRates(rates(50, 10))

	t.Run("unlinking snapshots the zone schedule", func(t *testing.T) {
		city := NewLinkedCity("Haram", ZeroRateSchedule())
		before := zone.EffectiveRate(&city)

		city.Unlink(zone.Rates)

		require.False(t, city.UseParentFees)
		assert.True(t, city.Rates.Equal(zone.Rates))
		// Effective price is unchanged at the instant of the toggle.
		assert.True(t, zone.EffectiveRate(&city).Equal(before))
	})

	t.Run("unlinking an already unlinked city keeps its overrides", func(t *testing.T) {
		city := NewLinkedCity("Haram", zone.Rates)
		city.Unlink(zone.Rates)
		city.Rates = rates(40, 8)

		city.Unlink(zone.Rates)

		assert.True(t, city.Rates.ShippingPrice.Equal(decimal.NewFromInt(40)))
	})

	t.Run("linking leaves stored fields untouched", func(t *testing.T) {
		city := NewLinkedCity("Haram", zone.Rates)
		city.Unlink(zone.Rates)
		city.Rates = rates(40, 8)

		city.Link()

		assert.True(t, city.UseParentFees)
		assert.True(t, city.Rates.ShippingPrice.Equal(decimal.NewFromInt(40)))
		assert.True(t, zone.EffectiveRate(&city).Equal(zone.Rates))
	})
}

func TestBulkLinkUnlink(t *testing.T) {
	newZone := func() Zone {
		zone := NewZone("Giza")
		zone.SetRates(rates(50, 10))
		zone.Cities = []City{
			NewLinkedCity("Haram", zone.Rates),
			NewLinkedCity("Dokki", zone.Rates),
			NewLinkedCity("Imbaba", zone.Rates),
		}
		zone.Cities[1].Unlink(zone.Rates)
		zone.Cities[1].Rates = rates(70, 12)
		return zone
	}

	t.Run("unlinkAll snapshots zone schedule into every city", func(t *testing.T) {
		zone := newZone()
		zone.UnlinkAllCities()

		for _, city := range zone.Cities {
			assert.False(t, city.UseParentFees)
			assert.True(t, city.Rates.Equal(zone.Rates), "city %s", city.Name)
		}
	})

	t.Run("linkAll leaves stored fields untouched", func(t *testing.T) {
		zone := newZone()
		zone.LinkAllCities()

		for i := range zone.Cities {
			assert.True(t, zone.Cities[i].UseParentFees)
		}
		// The customised city keeps its raw fields even though they are
		// no longer authoritative.
		assert.True(t, zone.Cities[1].Rates.ShippingPrice.Equal(decimal.NewFromInt(70)))
	})

	t.Run("unlinkAll then linkAll restores every effective price to the zone's", func(t *testing.T) {
		zone := newZone()
		zone.UnlinkAllCities()
		zone.LinkAllCities()

		for i := range zone.Cities {
			assert.True(t, zone.EffectiveRate(&zone.Cities[i]).Equal(zone.Rates))
		}
	})
}

func TestZoneValidate(t *testing.T) {
	zone := NewZone("")
	require.Error(t, zone.Validate())

	zone = NewZone("Giza")
	zone.Rates.ShippingPrice = decimal.NewFromInt(-1)
	require.Error(t, zone.Validate())

	zone = NewZone("Giza")
	assert.NoError(t, zone.Validate())
}
