package shipping

import (
	"time"

	"github.com/storeadmin/backend/internal/domain/geography"
)

// GenerateZonesFromCatalog replaces the company's entire zone list with
// one zone per governorate and one linked, zero-priced city per catalog
// city. This is destructive: callers must confirm before running it
// against a company that already has zones configured.
func (c *Company) GenerateZonesFromCatalog(catalog []geography.Governorate) {
	zones := make([]Zone, 0, len(catalog))
	cityTotal := 0

	for _, gov := range catalog {
		zone := NewZone(gov.Name)
		zone.Cities = make([]City, 0, len(gov.Cities))
		for _, name := range gov.Cities {
			zone.Cities = append(zone.Cities, NewLinkedCity(name, zone.Rates))
		}
		cityTotal += len(zone.Cities)
		zones = append(zones, zone)
	}

	c.Zones = zones
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	c.AddDomainEvent(NewZonesRegeneratedEvent(c, len(zones), cityTotal))
}
