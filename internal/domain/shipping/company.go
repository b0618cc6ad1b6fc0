package shipping

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storeadmin/backend/internal/domain/shared"
)

// Company is a shipping carrier configured for one store. It owns its
// zones and cities exclusively and carries its own fee policy; deleting
// a company cascades to all of them.
type Company struct {
	shared.StoreAggregateRoot
	Name              string           `json:"name"`
	Active            bool             `json:"active"`
	ExchangeSupported bool             `json:"exchange_supported"`
	FeePolicy         CompanyFeePolicy `json:"fee_policy" gorm:"embedded;embeddedPrefix:fee_"`
	Zones             []Zone           `json:"zones" gorm:"-"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "shipping_companies"
}

// NewCompany creates an active company with the default fee policy.
// Company names are unique per store; the caller enforces uniqueness
// against the store's current company list.
func NewCompany(storeID uuid.UUID, name string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}

	company := &Company{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Name:               name,
		Active:             true,
		FeePolicy:          DefaultFeePolicy(),
		Zones:              make([]Zone, 0),
	}
	company.AddDomainEvent(NewCompanyCreatedEvent(company))

	return company, nil
}

// SetActive toggles whether the company is offered at all.
func (c *Company) SetActive(active bool) {
	c.Active = active
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetExchangeSupported toggles exchange shipments for the company.
func (c *Company) SetExchangeSupported(supported bool) {
	c.ExchangeSupported = supported
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetFeePolicy replaces the company's fee policy.
func (c *Company) SetFeePolicy(policy CompanyFeePolicy) {
	c.FeePolicy = policy
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// FindZone returns the zone with the given id, or nil.
func (c *Company) FindZone(id uuid.UUID) *Zone {
	for i := range c.Zones {
		if c.Zones[i].ID == id {
			return &c.Zones[i]
		}
	}
	return nil
}

// AddZone appends a zone to the company's ordered zone list.
func (c *Company) AddZone(zone Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	c.Zones = append(c.Zones, zone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// RemoveZone deletes a zone and its cities.
func (c *Company) RemoveZone(id uuid.UUID) error {
	for i := range c.Zones {
		if c.Zones[i].ID == id {
			c.Zones = append(c.Zones[:i], c.Zones[i+1:]...)
			c.UpdatedAt = time.Now()
			c.IncrementVersion()
			return nil
		}
	}
	return shared.ErrNotFound
}

// ResolveRate resolves the effective schedule for a zone and optional
// city in this company. Inactive companies, zones, and cities are not
// offered as shipping options.
func (c *Company) ResolveRate(zoneID uuid.UUID, cityName string) (RateSchedule, error) {
	if !c.Active {
		return RateSchedule{}, shared.NewDomainError("COMPANY_INACTIVE", "Shipping company is not active")
	}
	zone := c.FindZone(zoneID)
	if zone == nil {
		return RateSchedule{}, shared.ErrNotFound
	}
	if !zone.Active {
		return RateSchedule{}, shared.NewDomainError("ZONE_INACTIVE", "Shipping zone is not active")
	}
	if cityName == "" {
		return zone.Rates, nil
	}
	city := zone.FindCityByName(cityName)
	if city == nil {
		return RateSchedule{}, shared.ErrNotFound
	}
	if !city.Active {
		return RateSchedule{}, shared.NewDomainError("CITY_INACTIVE", "City is not served")
	}
	return zone.EffectiveRate(city), nil
}
