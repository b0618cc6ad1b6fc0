package store

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storeadmin/backend/internal/domain/shipping"
)

// DefaultSettings returns the empty aggregate a brand new store starts
// from. Collections are non-nil so callers can append without checks.
func DefaultSettings(storeID uuid.UUID) *StoreSettings {
	return &StoreSettings{
		StoreID:            storeID,
		StoreName:          "My Store",
		Currency:           "EGP",
		GlobalFees:         shipping.DefaultFeePolicy(),
		ShippingCompanies:  []shipping.Company{},
		Products:           []Product{},
		Orders:             []Order{},
		Customers:          []Customer{},
		WalletTransactions: []WalletTransaction{},
		DiscountCodes:      []DiscountCode{},
		Reviews:            []Review{},
		AbandonedCarts:     []AbandonedCart{},
		GlobalOptions:      []GlobalOption{},
		CustomPages:        []CustomPage{},
		Collections:        []Collection{},
		ActivityLog:        []ActivityEntry{},
	}
}

// DefaultProducts is the starter catalog seeded exactly once into a
// store that has never held any products.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "seed-classic-tee",
			Name:        "Classic T-Shirt",
			Description: "Plain cotton tee, available in all sizes.",
			Price:       decimal.NewFromInt(250),
			Stock:       100,
			Active:      true,
		},
		{
			ID:          "seed-hoodie",
			Name:        "Fleece Hoodie",
			Description: "Heavyweight hoodie with front pocket.",
			Price:       decimal.NewFromInt(550),
			Stock:       50,
			Active:      true,
		},
		{
			ID:          "seed-cap",
			Name:        "Baseball Cap",
			Description: "Adjustable cap, one size fits all.",
			Price:       decimal.NewFromInt(150),
			Stock:       80,
			Active:      true,
		},
	}
}
