package persistence

import (
	"fmt"

	"gorm.io/gorm"
)

// schemaStatements creates the fixed relational schema. Entity rows keep
// the string identifiers they were born with in the legacy document
// world, so primary keys are text, not uuid.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		id uuid PRIMARY KEY,
		name text NOT NULL DEFAULT '',
		settings jsonb
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		name text NOT NULL DEFAULT '',
		description text NOT NULL DEFAULT '',
		price numeric NOT NULL DEFAULT 0,
		stock integer NOT NULL DEFAULT 0,
		image_url text NOT NULL DEFAULT '',
		active boolean NOT NULL DEFAULT false,
		details jsonb
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		customer_id text NOT NULL DEFAULT '',
		status text NOT NULL DEFAULT '',
		total numeric NOT NULL DEFAULT 0,
		items jsonb,
		governorate text NOT NULL DEFAULT '',
		city text NOT NULL DEFAULT '',
		created_at timestamptz,
		details jsonb
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		name text NOT NULL DEFAULT '',
		phone text NOT NULL DEFAULT '',
		email text NOT NULL DEFAULT '',
		governorate text NOT NULL DEFAULT '',
		city text NOT NULL DEFAULT '',
		orders_count integer NOT NULL DEFAULT 0,
		total_spent numeric NOT NULL DEFAULT 0,
		details jsonb
	)`,
	`CREATE TABLE IF NOT EXISTS wallet_transactions (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		type text NOT NULL DEFAULT '',
		amount numeric NOT NULL DEFAULT 0,
		note text NOT NULL DEFAULT '',
		created_at timestamptz
	)`,
	`CREATE TABLE IF NOT EXISTS shipping_companies (
		id uuid PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		name text NOT NULL DEFAULT '',
		active boolean NOT NULL DEFAULT true,
		exchange_supported boolean NOT NULL DEFAULT false,
		fee_policy jsonb
	)`,
	`CREATE TABLE IF NOT EXISTS shipping_zones (
		id uuid PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		company_id uuid NOT NULL,
		label text NOT NULL DEFAULT '',
		details text NOT NULL DEFAULT '',
		shipping_price numeric NOT NULL DEFAULT 0,
		extra_kg_price numeric NOT NULL DEFAULT 0,
		return_after_price numeric NOT NULL DEFAULT 0,
		return_without_price numeric NOT NULL DEFAULT 0,
		exchange_price numeric NOT NULL DEFAULT 0,
		base_weight numeric NOT NULL DEFAULT 0,
		active boolean NOT NULL DEFAULT true,
		position integer NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS shipping_cities (
		id uuid PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		zone_id uuid NOT NULL,
		name text NOT NULL DEFAULT '',
		shipping_price numeric NOT NULL DEFAULT 0,
		extra_kg_price numeric NOT NULL DEFAULT 0,
		return_after_price numeric NOT NULL DEFAULT 0,
		return_without_price numeric NOT NULL DEFAULT 0,
		exchange_price numeric NOT NULL DEFAULT 0,
		use_parent_fees boolean NOT NULL DEFAULT true,
		active boolean NOT NULL DEFAULT true,
		position integer NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS discount_codes (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		code text NOT NULL DEFAULT '',
		type text NOT NULL DEFAULT '',
		value numeric NOT NULL DEFAULT 0,
		active boolean NOT NULL DEFAULT true,
		usage_count integer NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		product_id text NOT NULL DEFAULT '',
		author text NOT NULL DEFAULT '',
		rating integer NOT NULL DEFAULT 0,
		comment text NOT NULL DEFAULT '',
		approved boolean NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS abandoned_carts (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		customer_phone text NOT NULL DEFAULT '',
		items jsonb,
		total numeric NOT NULL DEFAULT 0,
		created_at timestamptz
	)`,
	`CREATE TABLE IF NOT EXISTS global_options (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		name text NOT NULL DEFAULT '',
		option_values jsonb
	)`,
	`CREATE TABLE IF NOT EXISTS custom_pages (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		title text NOT NULL DEFAULT '',
		slug text NOT NULL DEFAULT '',
		content text NOT NULL DEFAULT '',
		published boolean NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS collections (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		name text NOT NULL DEFAULT '',
		product_ids jsonb,
		active boolean NOT NULL DEFAULT true
	)`,
	`CREATE TABLE IF NOT EXISTS activity_log (
		id text PRIMARY KEY,
		store_id uuid NOT NULL REFERENCES stores(id),
		action text NOT NULL DEFAULT '',
		actor text NOT NULL DEFAULT '',
		created_at timestamptz,
		meta jsonb
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shipping_zones_company ON shipping_zones(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shipping_cities_zone ON shipping_cities(zone_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_store ON orders(store_id)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_store ON customers(store_id)`,
}

// EnsureSchema creates every table and index the reconciler writes to.
// Statements are idempotent and safe to run on every startup.
func EnsureSchema(db *gorm.DB) error {
	for _, stmt := range schemaStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
