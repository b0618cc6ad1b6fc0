package shipping

import (
	"github.com/storeadmin/backend/internal/domain/shared"
)

// Event types for the shipping company aggregate
const (
	EventTypeCompanyCreated   = "shipping.company.created"
	EventTypeZonesRegenerated = "shipping.company.zones_regenerated"
)

// CompanyCreatedEvent is raised when a new shipping company is created
type CompanyCreatedEvent struct {
	shared.BaseDomainEvent
	CompanyName string `json:"company_name"`
}

// NewCompanyCreatedEvent creates a new CompanyCreatedEvent
func NewCompanyCreatedEvent(company *Company) *CompanyCreatedEvent {
	return &CompanyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyCreated, "Company", company.ID, company.StoreID),
		CompanyName:     company.Name,
	}
}

// ZonesRegeneratedEvent is raised when the zone list is rebuilt from the
// geographic catalog, replacing whatever was configured before.
type ZonesRegeneratedEvent struct {
	shared.BaseDomainEvent
	ZoneCount int `json:"zone_count"`
	CityCount int `json:"city_count"`
}

// NewZonesRegeneratedEvent creates a new ZonesRegeneratedEvent
func NewZonesRegeneratedEvent(company *Company, zones, cities int) *ZonesRegeneratedEvent {
	return &ZonesRegeneratedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeZonesRegenerated, "Company", company.ID, company.StoreID),
		ZoneCount:       zones,
		CityCount:       cities,
	}
}
