package shipping

import (
	"github.com/storeadmin/backend/internal/domain/geography"
)

// GovernorateForZone picks the catalog governorate whose city list the
// zone's selection dialog presents: matched by exact label first, then
// by reverse lookup from any city already attached to the zone, falling
// back to the first governorate in the catalog.
func GovernorateForZone(zone *Zone, catalog []geography.Governorate) geography.Governorate {
	for _, gov := range catalog {
		if gov.Name == zone.Label {
			return gov
		}
	}
	for _, city := range zone.Cities {
		for _, gov := range catalog {
			for _, name := range gov.Cities {
				if name == city.Name {
					return gov
				}
			}
		}
	}
	if len(catalog) > 0 {
		return catalog[0]
	}
	return geography.Governorate{}
}

// ApplyCitySelection reconciles the zone's city list against a selected
// set of city names. City identity is name equality: an existing record
// with a selected name is kept as-is, preserving any price overrides;
// names without a record get a fresh linked city carrying the zone's
// current prices. Cities whose names were not selected are dropped.
func (z *Zone) ApplyCitySelection(selected []string) {
	result := make([]City, 0, len(selected))
	for _, name := range selected {
		if existing := z.FindCityByName(name); existing != nil {
			result = append(result, *existing)
			continue
		}
		result = append(result, NewLinkedCity(name, z.Rates))
	}
	z.Cities = result
}
