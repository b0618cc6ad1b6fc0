package shipping

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storeadmin/backend/internal/domain/shipping"
)

// CreateCompanyRequest creates a shipping company within a store.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCompanyRequest patches company-level flags and the fee policy.
// Nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Active            *bool                      `json:"active"`
	ExchangeSupported *bool                      `json:"exchange_supported"`
	FeePolicy         *shipping.CompanyFeePolicy `json:"fee_policy"`
}

// GenerateZonesRequest regenerates a company's zones from the catalog.
// Force must be set when the company already has zones configured.
type GenerateZonesRequest struct {
	Force bool `json:"force"`
}

// UpdateZoneRequest patches one zone. Nil fields are left unchanged.
type UpdateZoneRequest struct {
	Label      *string                `json:"label"`
	Details    *string                `json:"details"`
	Rates      *shipping.RateSchedule `json:"rates"`
	BaseWeight *decimal.Decimal       `json:"base_weight"`
	Active     *bool                  `json:"active"`
}

// UpdateCityRequest patches one city within a zone.
type UpdateCityRequest struct {
	Rates         *shipping.RateSchedule `json:"rates"`
	UseParentFees *bool                  `json:"use_parent_fees"`
	Active        *bool                  `json:"active"`
}

// CitySelectionRequest replaces a zone's city list by name selection.
type CitySelectionRequest struct {
	Cities []string `json:"cities" binding:"required"`
}

// QuoteRequest asks for the effective fee schedule of a shipment.
type QuoteRequest struct {
	Company    string          `json:"company" binding:"required"`
	ZoneID     uuid.UUID       `json:"zone_id" binding:"required"`
	City       string          `json:"city"`
	OrderTotal decimal.Decimal `json:"order_total"`
}

// CityResponse mirrors one city row.
type CityResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Rates         shipping.RateSchedule `json:"rates"`
	UseParentFees bool                  `json:"use_parent_fees"`
	Active        bool                  `json:"active"`
}

// ZoneResponse mirrors one zone with its cities.
type ZoneResponse struct {
	ID         uuid.UUID             `json:"id"`
	Label      string                `json:"label"`
	Details    string                `json:"details"`
	Rates      shipping.RateSchedule `json:"rates"`
	BaseWeight decimal.Decimal       `json:"base_weight"`
	Active     bool                  `json:"active"`
	Cities     []CityResponse        `json:"cities"`
}

// CompanyResponse mirrors one company with its zone tree.
type CompanyResponse struct {
	ID                uuid.UUID                 `json:"id"`
	Name              string                    `json:"name"`
	Active            bool                      `json:"active"`
	ExchangeSupported bool                      `json:"exchange_supported"`
	FeePolicy         shipping.CompanyFeePolicy `json:"fee_policy"`
	Zones             []ZoneResponse            `json:"zones"`
}

// CityOptionsResponse backs the city selection dialog: the matched
// governorate's city list filtered by the query, plus the names
// currently attached to the zone.
type CityOptionsResponse struct {
	Governorate string   `json:"governorate"`
	Available   []string `json:"available"`
	Selected    []string `json:"selected"`
}

// QuoteResponse is the effective schedule for a shipment plus the
// optional charges the governing fee policy switches on.
type QuoteResponse struct {
	Company             string                `json:"company"`
	ZoneID              uuid.UUID             `json:"zone_id"`
	City                string                `json:"city,omitempty"`
	Rates               shipping.RateSchedule `json:"rates"`
	ReturnAfterActive   bool                  `json:"return_after_active"`
	ReturnWithoutActive bool                  `json:"return_without_active"`
	ExchangeActive      bool                  `json:"exchange_active"`
	InsuranceFee        decimal.Decimal       `json:"insurance_fee"`
	CodFee              decimal.Decimal       `json:"cod_fee"`
	CodTax              decimal.Decimal       `json:"cod_tax"`
}

func toCompanyResponse(c *shipping.Company) *CompanyResponse {
	resp := &CompanyResponse{
		ID:                c.ID,
		Name:              c.Name,
		Active:            c.Active,
		ExchangeSupported: c.ExchangeSupported,
		FeePolicy:         c.FeePolicy,
		Zones:             make([]ZoneResponse, 0, len(c.Zones)),
	}
	for _, zone := range c.Zones {
		zr := ZoneResponse{
			ID:         zone.ID,
			Label:      zone.Label,
			Details:    zone.Details,
			Rates:      zone.Rates,
			BaseWeight: zone.BaseWeight,
			Active:     zone.Active,
			Cities:     make([]CityResponse, 0, len(zone.Cities)),
		}
		for _, city := range zone.Cities {
			zr.Cities = append(zr.Cities, CityResponse{
				ID:            city.ID,
				Name:          city.Name,
				Rates:         city.Rates,
				UseParentFees: city.UseParentFees,
				Active:        city.Active,
			})
		}
		resp.Zones = append(resp.Zones, zr)
	}
	return resp
}
