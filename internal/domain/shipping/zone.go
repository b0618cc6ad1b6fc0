package shipping

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storeadmin/backend/internal/domain/shared"
)

// Zone is a shipping price band owned by one company, typically covering
// a governorate. Its rate schedule is the default for every city in it.
type Zone struct {
	ID         uuid.UUID       `json:"id"`
	Label      string          `json:"label"`
	Details    string          `json:"details"`
	Rates      RateSchedule    `json:"rates"`
	BaseWeight decimal.Decimal `json:"base_weight"`
	Active     bool            `json:"active"`
	Cities     []City          `json:"cities"`
}

// City is a sub-unit of a zone. While UseParentFees is true the city's
// stored rate fields are not authoritative for billing and may be stale;
// the zone's schedule applies instead.
type City struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	Rates         RateSchedule `json:"rates"`
	UseParentFees bool         `json:"use_parent_fees"`
	Active        bool         `json:"active"`
}

// NewZone creates an active zone with a zeroed schedule and no cities.
func NewZone(label string) Zone {
	return Zone{
		ID:         uuid.New(),
		Label:      label,
		Rates:      ZeroRateSchedule(),
		BaseWeight: decimal.Zero,
		Active:     true,
		Cities:     make([]City, 0),
	}
}

// NewLinkedCity creates an active city inheriting the given zone schedule.
// The zone's prices are copied in so the stored fields never read as zero
// if the city is later unlinked without a fresh snapshot.
func NewLinkedCity(name string, zoneRates RateSchedule) City {
	return City{
		ID:            uuid.New(),
		Name:          name,
		Rates:         zoneRates,
		UseParentFees: true,
		Active:        true,
	}
}

// EffectiveRate resolves the schedule that governs billing for a city in
// this zone. A nil city resolves to the zone's own schedule.
func (z *Zone) EffectiveRate(city *City) RateSchedule {
	if city != nil && city.Active && !city.UseParentFees {
		return city.Rates
	}
	return z.Rates
}

// FindCity returns the city with the given id, or nil.
func (z *Zone) FindCity(id uuid.UUID) *City {
	for i := range z.Cities {
		if z.Cities[i].ID == id {
			return &z.Cities[i]
		}
	}
	return nil
}

// FindCityByName returns the city with the given name, or nil.
// City identity within a zone follows name equality, not id equality.
func (z *Zone) FindCityByName(name string) *City {
	for i := range z.Cities {
		if z.Cities[i].Name == name {
			return &z.Cities[i]
		}
	}
	return nil
}

// Link marks the city as inheriting its zone's schedule. The city's own
// stored fields are left untouched.
func (c *City) Link() {
	c.UseParentFees = true
}

// Unlink makes the city's own schedule authoritative, snapshotting the
// zone's current prices first so the effective price is unchanged at the
// instant of the toggle.
func (c *City) Unlink(zoneRates RateSchedule) {
	if c.UseParentFees {
		c.Rates = zoneRates
	}
	c.UseParentFees = false
}

// LinkAllCities links every city in the zone back to the zone schedule.
func (z *Zone) LinkAllCities() {
	for i := range z.Cities {
		z.Cities[i].Link()
	}
}

// UnlinkAllCities unlinks every city, snapshotting the zone's current
// schedule into each so un-linking preserves the effective price.
func (z *Zone) UnlinkAllCities() {
	for i := range z.Cities {
		z.Cities[i].Rates = z.Rates
		z.Cities[i].UseParentFees = false
	}
}

// SetRates replaces the zone's default schedule.
func (z *Zone) SetRates(rates RateSchedule) {
	z.Rates = rates
}

// Validate checks zone invariants before persistence.
func (z *Zone) Validate() error {
	if z.Label == "" {
		return shared.NewDomainError("INVALID_LABEL", "Zone label cannot be empty")
	}
	if z.Rates.ShippingPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Zone price cannot be negative")
	}
	return nil
}
