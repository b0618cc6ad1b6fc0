package shipping

import "github.com/shopspring/decimal"

// RateSchedule is the five-field fee schedule shared by zones and cities.
// A zone's schedule is the default for its cities; a city's own schedule
// is authoritative only while the city is unlinked from its parent.
type RateSchedule struct {
	ShippingPrice      decimal.Decimal `json:"shipping_price"`
	ExtraKgPrice       decimal.Decimal `json:"extra_kg_price"`
	ReturnAfterPrice   decimal.Decimal `json:"return_after_price"`
	ReturnWithoutPrice decimal.Decimal `json:"return_without_price"`
	ExchangePrice      decimal.Decimal `json:"exchange_price"`
}

// ZeroRateSchedule returns a schedule with every field at zero.
func ZeroRateSchedule() RateSchedule {
	return RateSchedule{
		ShippingPrice:      decimal.Zero,
		ExtraKgPrice:       decimal.Zero,
		ReturnAfterPrice:   decimal.Zero,
		ReturnWithoutPrice: decimal.Zero,
		ExchangePrice:      decimal.Zero,
	}
}

// Equal reports whether two schedules carry the same amounts.
func (r RateSchedule) Equal(other RateSchedule) bool {
	return r.ShippingPrice.Equal(other.ShippingPrice) &&
		r.ExtraKgPrice.Equal(other.ExtraKgPrice) &&
		r.ReturnAfterPrice.Equal(other.ReturnAfterPrice) &&
		r.ReturnWithoutPrice.Equal(other.ReturnWithoutPrice) &&
		r.ExchangePrice.Equal(other.ExchangePrice)
}
