package shipping

import (
	"testing"

	"github.com/google/uuid"
	"github.com/storeadmin/backend/internal/domain/geography"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateZonesFromCatalog(t *testing.T) {
	company, err := NewCompany(uuid.New(), "Aramex")
	require.NoError(t, err)
	company.ClearDomainEvents()

	catalog := geography.Catalog()
	company.GenerateZonesFromCatalog(catalog)

	t.Run("one zone per governorate, in catalog order", func(t *testing.T) {
		require.Len(t, company.Zones, len(catalog))
		for i, gov := range catalog {
			assert.Equal(t, gov.Name, company.Zones[i].Label)
		}
	})

	t.Run("one linked zeroed city per catalog city", func(t *testing.T) {
		for i, gov := range catalog {
			zone := company.Zones[i]
			require.Len(t, zone.Cities, len(gov.Cities))
			assert.True(t, zone.Rates.Equal(ZeroRateSchedule()))
			for j, name := range gov.Cities {
				city := zone.Cities[j]
				assert.Equal(t, name, city.Name)
				assert.True(t, city.UseParentFees)
				assert.True(t, city.Active)
				assert.True(t, city.Rates.Equal(ZeroRateSchedule()))
			}
		}
	})

	t.Run("replaces any existing zones", func(t *testing.T) {
		zone := NewZone("Custom Band")
		require.NoError(t, company.AddZone(zone))

		company.GenerateZonesFromCatalog(catalog)

		assert.Len(t, company.Zones, len(catalog))
		assert.Nil(t, company.FindZone(zone.ID))
	})

	t.Run("raises a regenerated event", func(t *testing.T) {
		events := company.GetDomainEvents()
		require.NotEmpty(t, events)
		last := events[len(events)-1]
		assert.Equal(t, EventTypeZonesRegenerated, last.EventType())
	})
}
