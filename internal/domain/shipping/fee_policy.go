package shipping

import "github.com/shopspring/decimal"

// CompanyFeePolicy holds a shipping company's financial policy: which
// optional charges apply and at what rates. When UseCustomFees is false
// the store-wide global policy applies wholesale; the company's own
// values are retained but ignored, never merged field by field.
type CompanyFeePolicy struct {
	InsuranceFeePercent decimal.Decimal `json:"insurance_fee_percent"`
	InspectionFee       decimal.Decimal `json:"inspection_fee"`
	ReturnShippingFee   decimal.Decimal `json:"return_shipping_fee"`
	UseCustomFees       bool            `json:"use_custom_fees"`

	EnableCodFees bool            `json:"enable_cod_fees"`
	CodThreshold  decimal.Decimal `json:"cod_threshold"`
	CodFeeRate    decimal.Decimal `json:"cod_fee_rate"`
	CodTaxRate    decimal.Decimal `json:"cod_tax_rate"`

	EnableReturnAfter   bool `json:"enable_return_after"`
	EnableReturnWithout bool `json:"enable_return_without"`
	EnableExchange      bool `json:"enable_exchange"`
	EnableFixedReturn   bool `json:"enable_fixed_return"`

	PostCollectionReturnRefundsProductPrice bool `json:"post_collection_return_refunds_product_price"`
	DefaultInspectionActive                 bool `json:"default_inspection_active"`
}

// DefaultFeePolicy returns the policy applied to newly created companies:
// all optional charges off, global fees in effect.
func DefaultFeePolicy() CompanyFeePolicy {
	return CompanyFeePolicy{
		InsuranceFeePercent: decimal.Zero,
		InspectionFee:       decimal.Zero,
		ReturnShippingFee:   decimal.Zero,
		CodThreshold:        decimal.Zero,
		CodFeeRate:          decimal.Zero,
		CodTaxRate:          decimal.Zero,
	}
}

// Effective returns the policy that governs billing for a company:
// the company's own policy when it opted into custom fees, otherwise
// the store-wide global policy.
func (p CompanyFeePolicy) Effective(global CompanyFeePolicy) CompanyFeePolicy {
	if p.UseCustomFees {
		return p
	}
	return global
}
