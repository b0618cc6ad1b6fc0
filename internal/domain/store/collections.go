package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Details is the declared catch-all payload for store-specific free-form
// columns. It is carried as a single column and spread back onto the
// record on load; it is never used for the named fields below.
type Details map[string]any

// Clone returns a copy of the payload.
func (d Details) Clone() Details {
	if d == nil {
		return nil
	}
	copied := make(Details, len(d))
	for k, v := range d {
		copied[k] = v
	}
	return copied
}

// Product is a catalog item. Records originate in the legacy document
// world and keep their string identifiers.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	Active      bool            `json:"active"`
	Details     Details         `json:"details,omitempty"`
}

// OrderItem is a line within an order or abandoned cart.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order is a customer purchase.
type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Items       []OrderItem     `json:"items"`
	Governorate string          `json:"governorate"`
	City        string          `json:"city"`
	CreatedAt   time.Time       `json:"created_at"`
	Details     Details         `json:"details,omitempty"`
}

// Customer is a store customer.
type Customer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Governorate string          `json:"governorate"`
	City        string          `json:"city"`
	OrdersCount int             `json:"orders_count"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	Details     Details         `json:"details,omitempty"`
}

// WalletTransaction is a credit or debit on the store wallet.
type WalletTransaction struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"` // credit | debit
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// Review is a product review awaiting or past moderation.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Approved  bool   `json:"approved"`
}

// AbandonedCart is a checkout that never completed.
type AbandonedCart struct {
	ID            string          `json:"id"`
	CustomerPhone string          `json:"customer_phone"`
	Items         []OrderItem     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GlobalOption is a reusable product option set (sizes, colors).
type GlobalOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// CustomPage is an admin-authored content page.
type CustomPage struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// Collection groups products for merchandising.
type Collection struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ProductIDs []string `json:"product_ids"`
	Active     bool     `json:"active"`
}

// ActivityEntry is a line in the store's admin activity log.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
	Meta      Details   `json:"meta,omitempty"`
}
