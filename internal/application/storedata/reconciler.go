package storedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/domain/store"
)

// Cache snapshot truncation limits. The local cache is an offline
// fallback, not a mirror; values are size-limited by the cache itself.
const (
	cacheMaxOrders             = 50
	cacheMaxWalletTransactions = 100
	cacheMaxCustomers          = 100
)

const cacheKeyPrefix = "storedata:"

var confirmationCodePattern = regexp.MustCompile(`^\d{4}$`)

// ClearTarget names a category of store data eligible for wiping.
type ClearTarget string

const (
	ClearOrders    ClearTarget = "orders"
	ClearProducts  ClearTarget = "products"
	ClearCustomers ClearTarget = "customers"
	ClearWallet    ClearTarget = "wallet"
	ClearActivity  ClearTarget = "activity"
	ClearSettings  ClearTarget = "settings"
)

// clearTargetTables maps each target to the tables it wipes. The
// settings target additionally resets the store's settings column.
var clearTargetTables = map[ClearTarget][]string{
	ClearOrders:    {TableOrders},
	ClearProducts:  {TableProducts},
	ClearCustomers: {TableCustomers},
	ClearWallet:    {TableWalletTransactions},
	ClearActivity:  {TableActivityLog},
	ClearSettings: {
		TableDiscountCodes,
		TableReviews,
		TableAbandonedCarts,
		TableGlobalOptions,
		TableCustomPages,
		TableCollections,
	},
}

// entityTables are the fan-out tables written on every save, in no
// particular order.
var entityTables = []string{
	TableProducts,
	TableOrders,
	TableCustomers,
	TableWalletTransactions,
	TableShippingCompanies,
	TableShippingZones,
	TableShippingCities,
	TableDiscountCodes,
	TableReviews,
	TableAbandonedCarts,
	TableGlobalOptions,
	TableCustomPages,
	TableCollections,
	TableActivityLog,
}

// Reconciler moves the store aggregate between its three backends: the
// relational tables (authoritative), the legacy document store
// (read-only fallback and migration source), and the local backup cache
// (best-effort offline snapshot).
type Reconciler struct {
	tables           TableStore
	cache            BackupCache
	legacy           LegacyStore
	confirmationCode string
	logger           *zap.Logger
}

// NewReconciler wires a reconciler. The confirmation code guards the
// destructive clear operation and must be exactly four digits.
func NewReconciler(tables TableStore, cache BackupCache, legacy LegacyStore, confirmationCode string, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		tables:           tables,
		cache:            cache,
		legacy:           legacy,
		confirmationCode: confirmationCode,
		logger:           logger,
	}
}

func cacheKey(storeID uuid.UUID) string {
	return cacheKeyPrefix + storeID.String()
}

// Load reassembles the aggregate for a store. The relational tables are
// tried first; a missing or unreadable store falls back to the legacy
// document, then to the local cache, then to built-in defaults. Load
// never fails outright: every fallback miss degrades to the next source.
func (r *Reconciler) Load(ctx context.Context, storeID uuid.UUID) (*store.StoreSettings, error) {
	settings, err := r.loadRelational(ctx, storeID)
	if err == nil {
		r.seedProducts(settings)
		return settings, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		r.logger.Warn("relational load failed, trying fallbacks",
			zap.String("store_id", storeID.String()), zap.Error(err))
	}

	if doc, lerr := r.legacy.FetchStoreDocument(ctx, storeID); lerr == nil && doc != nil {
		doc.StoreID = storeID
		r.seedProducts(doc)
		return doc, nil
	}

	if payload, cerr := r.cache.Load(ctx, cacheKey(storeID)); cerr == nil && len(payload) > 0 {
		var cached store.StoreSettings
		if jerr := json.Unmarshal(payload, &cached); jerr == nil {
			cached.StoreID = storeID
			r.seedProducts(&cached)
			return &cached, nil
		}
	}

	settings = store.DefaultSettings(storeID)
	r.seedProducts(settings)
	return settings, nil
}

// loadRelational fetches the parent store row and then all entity
// tables concurrently. shared.ErrNotFound signals a store that has
// never been saved relationally.
func (r *Reconciler) loadRelational(ctx context.Context, storeID uuid.UUID) (*store.StoreSettings, error) {
	storeRows, err := r.tables.Select(ctx, TableStores, storeID)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", TableStores, err)
	}
	if len(storeRows) == 0 {
		return nil, shared.ErrNotFound
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	results := make(map[string][]Row, len(entityTables))
	for _, table := range entityTables {
		wg.Add(1)
		go func(table string) {
			defer wg.Done()
			rows, serr := r.tables.Select(ctx, table, storeID)
			mu.Lock()
			defer mu.Unlock()
			if serr != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("table %s: %w", table, serr)
				}
				return
			}
			results[table] = rows
		}(table)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	settings := store.DefaultSettings(storeID)
	if scalars, serr := scalarsFromStoreRow(storeRows[0]); serr == nil {
		settings.ApplyScalars(scalars)
	}

	for _, row := range results[TableProducts] {
		settings.Products = append(settings.Products, productFromRow(row))
	}
	for _, row := range results[TableOrders] {
		settings.Orders = append(settings.Orders, orderFromRow(row))
	}
	for _, row := range results[TableCustomers] {
		settings.Customers = append(settings.Customers, customerFromRow(row))
	}
	for _, row := range results[TableWalletTransactions] {
		settings.WalletTransactions = append(settings.WalletTransactions, walletTransactionFromRow(row))
	}
	for _, row := range results[TableDiscountCodes] {
		settings.DiscountCodes = append(settings.DiscountCodes, discountCodeFromRow(row))
	}
	for _, row := range results[TableReviews] {
		settings.Reviews = append(settings.Reviews, reviewFromRow(row))
	}
	for _, row := range results[TableAbandonedCarts] {
		settings.AbandonedCarts = append(settings.AbandonedCarts, abandonedCartFromRow(row))
	}
	for _, row := range results[TableGlobalOptions] {
		settings.GlobalOptions = append(settings.GlobalOptions, globalOptionFromRow(row))
	}
	for _, row := range results[TableCustomPages] {
		settings.CustomPages = append(settings.CustomPages, customPageFromRow(row))
	}
	for _, row := range results[TableCollections] {
		settings.Collections = append(settings.Collections, collectionFromRow(row))
	}
	for _, row := range results[TableActivityLog] {
		settings.ActivityLog = append(settings.ActivityLog, activityEntryFromRow(row))
	}
	settings.ShippingCompanies = companiesFromRows(
		results[TableShippingCompanies],
		results[TableShippingZones],
		results[TableShippingCities],
	)

	return settings, nil
}

// seedProducts performs the one-time default catalog seed: only when
// the store has never been seeded and still has no products at all.
func (r *Reconciler) seedProducts(settings *store.StoreSettings) {
	if settings.ProductsSeeded || len(settings.Products) > 0 {
		return
	}
	settings.Products = store.DefaultProducts()
	settings.ProductsSeeded = true
	r.logger.Info("seeded default product catalog",
		zap.String("store_id", settings.StoreID.String()),
		zap.Int("products", len(settings.Products)))
}

// Save fans the aggregate out to the relational tables. A truncated
// cache snapshot is written first and never blocks the save; the parent
// store row is upserted before any entity table so foreign keys
// resolve; entity tables are written concurrently with the payload
// deduplicated by id; the scalar settings column is written last.
// Per-table failures are accumulated and returned together, without
// rolling back sibling writes.
func (r *Reconciler) Save(ctx context.Context, settings *store.StoreSettings) error {
	r.snapshotToCache(ctx, settings)

	storeID := settings.StoreID
	if err := r.tables.Upsert(ctx, TableStores, []string{"id"}, []Row{{
		"id":   storeID.String(),
		"name": settings.StoreName,
	}}); err != nil {
		return fmt.Errorf("table %s: %w", TableStores, err)
	}

	payload := buildTableRows(settings)
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs []error
	)
	for _, table := range entityTables {
		rows := dedupeByID(payload[table])
		if len(rows) == 0 {
			continue
		}
		wg.Add(1)
		go func(table string, rows []Row) {
			defer wg.Done()
			if uerr := r.tables.Upsert(ctx, table, []string{"id"}, rows); uerr != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("table %s: %w", table, uerr))
				mu.Unlock()
			}
		}(table, rows)
	}
	wg.Wait()

	if err := r.tables.Upsert(ctx, TableStores, []string{"id"},
		[]Row{storeRow(storeID, settings.Scalars())}); err != nil {
		errs = append(errs, fmt.Errorf("table %s: %w", TableStores, err))
	}

	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
	return errors.Join(errs...)
}

func buildTableRows(settings *store.StoreSettings) map[string][]Row {
	storeID := settings.StoreID
	payload := make(map[string][]Row, len(entityTables))

	for _, p := range settings.Products {
		payload[TableProducts] = append(payload[TableProducts], productToRow(storeID, p))
	}
	for _, o := range settings.Orders {
		payload[TableOrders] = append(payload[TableOrders], orderToRow(storeID, o))
	}
	for _, c := range settings.Customers {
		payload[TableCustomers] = append(payload[TableCustomers], customerToRow(storeID, c))
	}
	for _, tx := range settings.WalletTransactions {
		payload[TableWalletTransactions] = append(payload[TableWalletTransactions], walletTransactionToRow(storeID, tx))
	}
	for _, dc := range settings.DiscountCodes {
		payload[TableDiscountCodes] = append(payload[TableDiscountCodes], discountCodeToRow(storeID, dc))
	}
	for _, rv := range settings.Reviews {
		payload[TableReviews] = append(payload[TableReviews], reviewToRow(storeID, rv))
	}
	for _, c := range settings.AbandonedCarts {
		payload[TableAbandonedCarts] = append(payload[TableAbandonedCarts], abandonedCartToRow(storeID, c))
	}
	for _, o := range settings.GlobalOptions {
		payload[TableGlobalOptions] = append(payload[TableGlobalOptions], globalOptionToRow(storeID, o))
	}
	for _, p := range settings.CustomPages {
		payload[TableCustomPages] = append(payload[TableCustomPages], customPageToRow(storeID, p))
	}
	for _, c := range settings.Collections {
		payload[TableCollections] = append(payload[TableCollections], collectionToRow(storeID, c))
	}
	for _, e := range settings.ActivityLog {
		payload[TableActivityLog] = append(payload[TableActivityLog], activityEntryToRow(storeID, e))
	}
	for i := range settings.ShippingCompanies {
		companyRow, zoneRows, cityRows := companyToRows(settings.ShippingCompanies[i])
		payload[TableShippingCompanies] = append(payload[TableShippingCompanies], companyRow)
		payload[TableShippingZones] = append(payload[TableShippingZones], zoneRows...)
		payload[TableShippingCities] = append(payload[TableShippingCities], cityRows...)
	}
	return payload
}

// dedupeByID collapses rows sharing an id, last occurrence winning,
// while preserving first-seen order. Upserting duplicate ids in one
// batch is rejected by the backend, so the payload is cleaned here.
func dedupeByID(rows []Row) []Row {
	if len(rows) < 2 {
		return rows
	}
	index := make(map[string]int, len(rows))
	deduped := make([]Row, 0, len(rows))
	for _, row := range rows {
		id := rowString(row, "id")
		if pos, seen := index[id]; seen {
			deduped[pos] = row
			continue
		}
		index[id] = len(deduped)
		deduped = append(deduped, row)
	}
	return deduped
}

// snapshotToCache writes the truncated offline snapshot. Failures are
// logged at warn and swallowed.
func (r *Reconciler) snapshotToCache(ctx context.Context, settings *store.StoreSettings) {
	snapshot := settings.Clone()
	if len(snapshot.Orders) > cacheMaxOrders {
		snapshot.Orders = snapshot.Orders[:cacheMaxOrders]
	}
	if len(snapshot.WalletTransactions) > cacheMaxWalletTransactions {
		snapshot.WalletTransactions = snapshot.WalletTransactions[:cacheMaxWalletTransactions]
	}
	if len(snapshot.Customers) > cacheMaxCustomers {
		snapshot.Customers = snapshot.Customers[:cacheMaxCustomers]
	}
	snapshot.Reviews = nil
	snapshot.AbandonedCarts = nil
	snapshot.ActivityLog = nil

	payload, err := json.Marshal(snapshot)
	if err != nil {
		r.logger.Warn("cache snapshot marshal failed",
			zap.String("store_id", settings.StoreID.String()), zap.Error(err))
		return
	}
	if err := r.cache.Store(ctx, cacheKey(settings.StoreID), payload); err != nil {
		r.logger.Warn("cache snapshot write failed",
			zap.String("store_id", settings.StoreID.String()), zap.Error(err))
	}
}

// Clear wipes the selected data categories for a store. Validation
// happens before any row is touched: the target set must be non-empty
// and the confirmation code must match exactly. The first table failure
// aborts the remaining deletions and names the table.
func (r *Reconciler) Clear(ctx context.Context, storeID uuid.UUID, targets []ClearTarget, confirmation string) error {
	if len(targets) == 0 {
		return shared.ErrEmptySelection
	}
	if !confirmationCodePattern.MatchString(confirmation) || confirmation != r.confirmationCode {
		return shared.ErrConfirmationCode
	}

	seen := make(map[ClearTarget]bool, len(targets))
	resetSettings := false
	for _, target := range targets {
		tables, known := clearTargetTables[target]
		if !known {
			return shared.NewDomainError("UNKNOWN_TARGET", fmt.Sprintf("Unknown clear target %q", target))
		}
		if seen[target] {
			continue
		}
		seen[target] = true

		for _, table := range tables {
			if err := r.tables.DeleteByStore(ctx, table, storeID); err != nil {
				return fmt.Errorf("table %s: %w", table, err)
			}
		}
		if target == ClearSettings {
			resetSettings = true
		}
	}

	if resetSettings {
		defaults := store.DefaultSettings(storeID)
		if err := r.tables.Upsert(ctx, TableStores, []string{"id"},
			[]Row{storeRow(storeID, defaults.Scalars())}); err != nil {
			return fmt.Errorf("table %s: %w", TableStores, err)
		}
	}

	r.logger.Info("cleared store data",
		zap.String("store_id", storeID.String()),
		zap.Int("targets", len(seen)))
	return nil
}
