package store

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storeadmin/backend/internal/domain/shipping"
)

// StoreSettings is the full per-store aggregate: the scalar settings
// plus every collection that fans out to its own relational table on
// save. It is loaded once per session, mutated in a draft, and saved or
// discarded as a whole.
type StoreSettings struct {
	StoreID uuid.UUID `json:"store_id"`

	// Scalar settings, persisted as the store's settings column.
	StoreName       string                    `json:"store_name"`
	Currency        string                    `json:"currency"`
	SupportEmail    string                    `json:"support_email"`
	SupportPhone    string                    `json:"support_phone"`
	MaintenanceMode bool                      `json:"maintenance_mode"`
	ProductsSeeded  bool                      `json:"products_seeded"`
	GlobalFees      shipping.CompanyFeePolicy `json:"global_fees"`

	// Collections, each persisted as rows in its own table.
	ShippingCompanies  []shipping.Company  `json:"shipping_companies"`
	Products           []Product           `json:"products"`
	Orders             []Order             `json:"orders"`
	Customers          []Customer          `json:"customers"`
	WalletTransactions []WalletTransaction `json:"wallet_transactions"`
	DiscountCodes      []DiscountCode      `json:"discount_codes"`
	Reviews            []Review            `json:"reviews"`
	AbandonedCarts     []AbandonedCart     `json:"abandoned_carts"`
	GlobalOptions      []GlobalOption      `json:"global_options"`
	CustomPages        []CustomPage        `json:"custom_pages"`
	Collections        []Collection        `json:"collections"`
	ActivityLog        []ActivityEntry     `json:"activity_log"`
}

// ScalarSettings is the settings document minus the extracted
// collections: what remains in the store's settings column.
type ScalarSettings struct {
	StoreName       string                    `json:"store_name"`
	Currency        string                    `json:"currency"`
	SupportEmail    string                    `json:"support_email"`
	SupportPhone    string                    `json:"support_phone"`
	MaintenanceMode bool                      `json:"maintenance_mode"`
	ProductsSeeded  bool                      `json:"products_seeded"`
	GlobalFees      shipping.CompanyFeePolicy `json:"global_fees"`
}

// Scalars extracts the scalar settings from the aggregate.
func (s *StoreSettings) Scalars() ScalarSettings {
	return ScalarSettings{
		StoreName:       s.StoreName,
		Currency:        s.Currency,
		SupportEmail:    s.SupportEmail,
		SupportPhone:    s.SupportPhone,
		MaintenanceMode: s.MaintenanceMode,
		ProductsSeeded:  s.ProductsSeeded,
		GlobalFees:      s.GlobalFees,
	}
}

// ApplyScalars writes scalar settings back onto the aggregate.
func (s *StoreSettings) ApplyScalars(sc ScalarSettings) {
	s.StoreName = sc.StoreName
	s.Currency = sc.Currency
	s.SupportEmail = sc.SupportEmail
	s.SupportPhone = sc.SupportPhone
	s.MaintenanceMode = sc.MaintenanceMode
	s.ProductsSeeded = sc.ProductsSeeded
	s.GlobalFees = sc.GlobalFees
}

// FindCompany returns the shipping company with the given name, or nil.
// Company identity follows the unique name key.
func (s *StoreSettings) FindCompany(name string) *shipping.Company {
	for i := range s.ShippingCompanies {
		if s.ShippingCompanies[i].Name == name {
			return &s.ShippingCompanies[i]
		}
	}
	return nil
}

// AddCompany appends a shipping company, rejecting duplicate names.
func (s *StoreSettings) AddCompany(company *shipping.Company) error {
	if s.FindCompany(company.Name) != nil {
		return duplicateCompanyErr(company.Name)
	}
	s.ShippingCompanies = append(s.ShippingCompanies, *company)
	return nil
}

// RemoveCompany deletes a company by name, cascading to its zones,
// cities, and fee policy (all owned by the company record).
func (s *StoreSettings) RemoveCompany(name string) bool {
	for i := range s.ShippingCompanies {
		if s.ShippingCompanies[i].Name == name {
			s.ShippingCompanies = append(s.ShippingCompanies[:i], s.ShippingCompanies[i+1:]...)
			return true
		}
	}
	return false
}

// AddDiscountCode validates and appends a discount code. Duplicate code
// strings are allowed (see DiscountCode).
func (s *StoreSettings) AddDiscountCode(code string, discountType DiscountType, value decimal.Decimal) (*DiscountCode, error) {
	dc, err := NewDiscountCode(code, discountType, value)
	if err != nil {
		return nil, err
	}
	s.DiscountCodes = append(s.DiscountCodes, *dc)
	return dc, nil
}

// Clone returns a deep copy of the aggregate, used for draft snapshots.
func (s *StoreSettings) Clone() *StoreSettings {
	copied := *s

	copied.ShippingCompanies = make([]shipping.Company, len(s.ShippingCompanies))
	for i := range s.ShippingCompanies {
		copied.ShippingCompanies[i] = *s.ShippingCompanies[i].Clone()
	}

	copied.Products = make([]Product, len(s.Products))
	for i, p := range s.Products {
		p.Details = p.Details.Clone()
		copied.Products[i] = p
	}

	copied.Orders = make([]Order, len(s.Orders))
	for i, o := range s.Orders {
		o.Items = append([]OrderItem(nil), o.Items...)
		o.Details = o.Details.Clone()
		copied.Orders[i] = o
	}

	copied.Customers = make([]Customer, len(s.Customers))
	for i, c := range s.Customers {
		c.Details = c.Details.Clone()
		copied.Customers[i] = c
	}

	copied.WalletTransactions = append([]WalletTransaction(nil), s.WalletTransactions...)
	copied.DiscountCodes = append([]DiscountCode(nil), s.DiscountCodes...)
	copied.Reviews = append([]Review(nil), s.Reviews...)

	copied.AbandonedCarts = make([]AbandonedCart, len(s.AbandonedCarts))
	for i, c := range s.AbandonedCarts {
		c.Items = append([]OrderItem(nil), c.Items...)
		copied.AbandonedCarts[i] = c
	}

	copied.GlobalOptions = make([]GlobalOption, len(s.GlobalOptions))
	for i, o := range s.GlobalOptions {
		o.Values = append([]string(nil), o.Values...)
		copied.GlobalOptions[i] = o
	}

	copied.CustomPages = append([]CustomPage(nil), s.CustomPages...)

	copied.Collections = make([]Collection, len(s.Collections))
	for i, c := range s.Collections {
		c.ProductIDs = append([]string(nil), c.ProductIDs...)
		copied.Collections[i] = c
	}

	copied.ActivityLog = make([]ActivityEntry, len(s.ActivityLog))
	for i, e := range s.ActivityLog {
		e.Meta = e.Meta.Clone()
		copied.ActivityLog[i] = e
	}

	return &copied
}

func duplicateCompanyErr(name string) error {
	return &companyExistsError{name: name}
}

type companyExistsError struct {
	name string
}

func (e *companyExistsError) Error() string {
	return "shipping company already exists: " + e.name
}
