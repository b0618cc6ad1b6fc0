// Package shipping exposes the admin operations on a store's shipping
// companies: company CRUD, zone generation and editing, city selection,
// and rate quoting.
package shipping

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storeadmin/backend/internal/domain/geography"
	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/domain/shipping"
	"github.com/storeadmin/backend/internal/domain/store"
)

// SettingsStore loads and persists the store aggregate the companies
// live in.
type SettingsStore interface {
	Load(ctx context.Context, storeID uuid.UUID) (*store.StoreSettings, error)
	Save(ctx context.Context, settings *store.StoreSettings) error
}

// Service handles shipping company administration for one store at a
// time. Every mutation loads the aggregate, applies the change, and
// saves it back through the reconciler.
type Service struct {
	data    SettingsStore
	catalog []geography.Governorate
}

// NewService creates a new shipping Service.
func NewService(data SettingsStore, catalog []geography.Governorate) *Service {
	return &Service{data: data, catalog: catalog}
}

// ListCompanies returns every shipping company configured for a store.
func (s *Service) ListCompanies(ctx context.Context, storeID uuid.UUID) ([]CompanyResponse, error) {
	settings, err := s.data.Load(ctx, storeID)
	if err != nil {
		return nil, err
	}
	responses := make([]CompanyResponse, 0, len(settings.ShippingCompanies))
	for i := range settings.ShippingCompanies {
		responses = append(responses, *toCompanyResponse(&settings.ShippingCompanies[i]))
	}
	return responses, nil
}

// GetCompany returns one company by name.
func (s *Service) GetCompany(ctx context.Context, storeID uuid.UUID, name string) (*CompanyResponse, error) {
	settings, err := s.data.Load(ctx, storeID)
	if err != nil {
		return nil, err
	}
	company := settings.FindCompany(name)
	if company == nil {
		return nil, shared.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// CreateCompany adds a new company to the store.
func (s *Service) CreateCompany(ctx context.Context, storeID uuid.UUID, req CreateCompanyRequest) (*CompanyResponse, error) {
	settings, err := s.data.Load(ctx, storeID)
	if err != nil {
		return nil, err
	}
	company, err := shipping.NewCompany(storeID, req.Name)
	if err != nil {
		return nil, err
	}
	if settings.FindCompany(company.Name) != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Shipping company with this name already exists")
	}
	if err := settings.AddCompany(company); err != nil {
		return nil, err
	}
	if err := s.data.Save(ctx, settings); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// UpdateCompany patches company flags and fee policy.
func (s *Service) UpdateCompany(ctx context.Context, storeID uuid.UUID, name string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	var resp *CompanyResponse
	err := s.withCompany(ctx, storeID, name, func(_ *store.StoreSettings, company *shipping.Company) error {
		if req.Active != nil {
			company.SetActive(*req.Active)
		}
		if req.ExchangeSupported != nil {
			company.SetExchangeSupported(*req.ExchangeSupported)
		}
		if req.FeePolicy != nil {
			company.SetFeePolicy(*req.FeePolicy)
		}
		resp = toCompanyResponse(company)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteCompany removes a company and everything it owns.
func (s *Service) DeleteCompany(ctx context.Context, storeID uuid.UUID, name string) error {
	settings, err := s.data.Load(ctx, storeID)
	if err != nil {
		return err
	}
	if !settings.RemoveCompany(name) {
		return shared.ErrNotFound
	}
	return s.data.Save(ctx, settings)
}

// GenerateZones rebuilds a company's zone list from the geographic
// catalog. The operation replaces all existing zones, so it refuses to
// run against a company that already has zones unless forced.
func (s *Service) GenerateZones(ctx context.Context, storeID uuid.UUID, name string, req GenerateZonesRequest) (*CompanyResponse, error) {
	var resp *CompanyResponse
	err := s.withCompany(ctx, storeID, name, func(_ *store.StoreSettings, company *shipping.Company) error {
		if len(company.Zones) > 0 && !req.Force {
			return shared.NewDomainError("ZONES_NOT_EMPTY", "Company already has zones configured, pass force to replace them")
		}
		company.GenerateZonesFromCatalog(s.catalog)
		resp = toCompanyResponse(company)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateZone patches one zone's label, schedule, or active flag.
func (s *Service) UpdateZone(ctx context.Context, storeID uuid.UUID, name string, zoneID uuid.UUID, req UpdateZoneRequest) error {
	return s.withZone(ctx, storeID, name, zoneID, func(zone *shipping.Zone) error {
		if req.Label != nil {
			zone.Label = *req.Label
		}
		if req.Details != nil {
			zone.Details = *req.Details
		}
		if req.Rates != nil {
			zone.SetRates(*req.Rates)
		}
		if req.BaseWeight != nil {
			zone.BaseWeight = *req.BaseWeight
		}
		if req.Active != nil {
			zone.Active = *req.Active
		}
		return zone.Validate()
	})
}

// UpdateCity patches one city. Clearing UseParentFees snapshots the
// zone's current schedule into the city first.
func (s *Service) UpdateCity(ctx context.Context, storeID uuid.UUID, name string, zoneID, cityID uuid.UUID, req UpdateCityRequest) error {
	return s.withZone(ctx, storeID, name, zoneID, func(zone *shipping.Zone) error {
		city := zone.FindCity(cityID)
		if city == nil {
			return shared.ErrNotFound
		}
		if req.UseParentFees != nil {
			if *req.UseParentFees {
				city.Link()
			} else {
				city.Unlink(zone.Rates)
			}
		}
		if req.Rates != nil {
			city.Rates = *req.Rates
		}
		if req.Active != nil {
			city.Active = *req.Active
		}
		return nil
	})
}

// LinkAllCities links every city in the zone back to the zone schedule.
func (s *Service) LinkAllCities(ctx context.Context, storeID uuid.UUID, name string, zoneID uuid.UUID) error {
	return s.withZone(ctx, storeID, name, zoneID, func(zone *shipping.Zone) error {
		zone.LinkAllCities()
		return nil
	})
}

// UnlinkAllCities unlinks every city, snapshotting the zone schedule.
func (s *Service) UnlinkAllCities(ctx context.Context, storeID uuid.UUID, name string, zoneID uuid.UUID) error {
	return s.withZone(ctx, storeID, name, zoneID, func(zone *shipping.Zone) error {
		zone.UnlinkAllCities()
		return nil
	})
}

// CityOptions backs the city selection dialog for a zone.
func (s *Service) CityOptions(ctx context.Context, storeID uuid.UUID, name string, zoneID uuid.UUID, query string) (*CityOptionsResponse, error) {
	settings, err := s.data.Load(ctx, storeID)
	if err != nil {
		return nil, err
	}
	company := settings.FindCompany(name)
	if company == nil {
		return nil, shared.ErrNotFound
	}
	zone := company.FindZone(zoneID)
	if zone == nil {
		return nil, shared.ErrNotFound
	}

	gov := shipping.GovernorateForZone(zone, s.catalog)
	selected := make([]string, 0, len(zone.Cities))
	for _, city := range zone.Cities {
		selected = append(selected, city.Name)
	}
	return &CityOptionsResponse{
		Governorate: gov.Name,
		Available:   geography.FilterCities(gov, query),
		Selected:    selected,
	}, nil
}

// SaveCitySelection reconciles a zone's city list against the selected
// names, keeping existing records and their overrides.
func (s *Service) SaveCitySelection(ctx context.Context, storeID uuid.UUID, name string, zoneID uuid.UUID, req CitySelectionRequest) error {
	return s.withZone(ctx, storeID, name, zoneID, func(zone *shipping.Zone) error {
		zone.ApplyCitySelection(req.Cities)
		return nil
	})
}

// Quote resolves the effective fee schedule for a shipment and applies
// the governing fee policy: the company's own when it uses custom fees,
// otherwise the store-wide global policy, never merged field by field.
func (s *Service) Quote(ctx context.Context, storeID uuid.UUID, req QuoteRequest) (*QuoteResponse, error) {
	settings, err := s.data.Load(ctx, storeID)
	if err != nil {
		return nil, err
	}
	company := settings.FindCompany(req.Company)
	if company == nil {
		return nil, shared.ErrNotFound
	}
	rates, err := company.ResolveRate(req.ZoneID, req.City)
	if err != nil {
		return nil, err
	}

	policy := company.FeePolicy.Effective(settings.GlobalFees)
	resp := &QuoteResponse{
		Company:             company.Name,
		ZoneID:              req.ZoneID,
		City:                req.City,
		Rates:               rates,
		ReturnAfterActive:   policy.EnableReturnAfter,
		ReturnWithoutActive: policy.EnableReturnWithout,
		ExchangeActive:      policy.EnableExchange && company.ExchangeSupported,
		InsuranceFee:        decimal.Zero,
		CodFee:              decimal.Zero,
		CodTax:              decimal.Zero,
	}
	if req.OrderTotal.IsPositive() {
		hundred := decimal.NewFromInt(100)
		resp.InsuranceFee = req.OrderTotal.Mul(policy.InsuranceFeePercent).Div(hundred)
		if policy.EnableCodFees && req.OrderTotal.GreaterThanOrEqual(policy.CodThreshold) {
			resp.CodFee = req.OrderTotal.Mul(policy.CodFeeRate).Div(hundred)
			resp.CodTax = resp.CodFee.Mul(policy.CodTaxRate).Div(hundred)
		}
	}
	return resp, nil
}

func (s *Service) withCompany(ctx context.Context, storeID uuid.UUID, name string, fn func(*store.StoreSettings, *shipping.Company) error) error {
	settings, err := s.data.Load(ctx, storeID)
	if err != nil {
		return err
	}
	company := settings.FindCompany(name)
	if company == nil {
		return shared.ErrNotFound
	}
	if err := fn(settings, company); err != nil {
		return err
	}
	return s.data.Save(ctx, settings)
}

func (s *Service) withZone(ctx context.Context, storeID uuid.UUID, name string, zoneID uuid.UUID, fn func(*shipping.Zone) error) error {
	return s.withCompany(ctx, storeID, name, func(_ *store.StoreSettings, company *shipping.Company) error {
		zone := company.FindZone(zoneID)
		if zone == nil {
			return shared.ErrNotFound
		}
		return fn(zone)
	})
}
