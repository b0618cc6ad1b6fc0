package storedata

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/domain/shipping"
	"github.com/storeadmin/backend/internal/domain/store"
)

// Table names of the relational schema.
const (
	TableStores             = "stores"
	TableProducts           = "products"
	TableOrders             = "orders"
	TableCustomers          = "customers"
	TableWalletTransactions = "wallet_transactions"
	TableShippingCompanies  = "shipping_companies"
	TableShippingZones      = "shipping_zones"
	TableShippingCities     = "shipping_cities"
	TableDiscountCodes      = "discount_codes"
	TableReviews            = "reviews"
	TableAbandonedCarts     = "abandoned_carts"
	TableGlobalOptions      = "global_options"
	TableCustomPages        = "custom_pages"
	TableCollections        = "collections"
	TableActivityLog        = "activity_log"
)

// Row value readers. Legacy records are dirty: values arrive as whatever
// type the driver or the old document produced, so reads are tolerant
// and fall back to the zero value rather than failing a whole load.

func rowString(r Row, key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func rowInt(r Row, key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func rowBool(r Row, key string) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return false
}

func rowDecimal(r Row, key string) decimal.Decimal {
	switch v := r[key].(type) {
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	case []byte:
		if d, err := decimal.NewFromString(string(v)); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

func rowTime(r Row, key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func rowUUID(r Row, key string) uuid.UUID {
	if id, err := uuid.Parse(rowString(r, key)); err == nil {
		return id
	}
	return uuid.Nil
}

// rowJSON decodes a JSON column into target. Absent or malformed
// payloads leave the target at its zero value.
func rowJSON(r Row, key string, target any) {
	raw := rowString(r, key)
	if raw == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), target)
}

func toJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func productToRow(storeID uuid.UUID, p store.Product) Row {
	return Row{
		"id":          p.ID,
		"store_id":    storeID.String(),
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"stock":       p.Stock,
		"image_url":   p.ImageURL,
		"active":      p.Active,
		"details":     toJSON(p.Details),
	}
}

func productFromRow(r Row) store.Product {
	p := store.Product{
		ID:          rowString(r, "id"),
		Name:        rowString(r, "name"),
		Description: rowString(r, "description"),
		Price:       rowDecimal(r, "price"),
		Stock:       rowInt(r, "stock"),
		ImageURL:    rowString(r, "image_url"),
		Active:      rowBool(r, "active"),
	}
	rowJSON(r, "details", &p.Details)
	return p
}

func orderToRow(storeID uuid.UUID, o store.Order) Row {
	return Row{
		"id":          o.ID,
		"store_id":    storeID.String(),
		"customer_id": o.CustomerID,
		"status":      o.Status,
		"total":       o.Total.String(),
		"items":       toJSON(o.Items),
		"governorate": o.Governorate,
		"city":        o.City,
		"created_at":  o.CreatedAt,
		"details":     toJSON(o.Details),
	}
}

func orderFromRow(r Row) store.Order {
	o := store.Order{
		ID:          rowString(r, "id"),
		CustomerID:  rowString(r, "customer_id"),
		Status:      rowString(r, "status"),
		Total:       rowDecimal(r, "total"),
		Governorate: rowString(r, "governorate"),
		City:        rowString(r, "city"),
		CreatedAt:   rowTime(r, "created_at"),
	}
	rowJSON(r, "items", &o.Items)
	rowJSON(r, "details", &o.Details)
	return o
}

func customerToRow(storeID uuid.UUID, c store.Customer) Row {
	return Row{
		"id":           c.ID,
		"store_id":     storeID.String(),
		"name":         c.Name,
		"phone":        c.Phone,
		"email":        c.Email,
		"governorate":  c.Governorate,
		"city":         c.City,
		"orders_count": c.OrdersCount,
		"total_spent":  c.TotalSpent.String(),
		"details":      toJSON(c.Details),
	}
}

func customerFromRow(r Row) store.Customer {
	c := store.Customer{
		ID:          rowString(r, "id"),
		Name:        rowString(r, "name"),
		Phone:       rowString(r, "phone"),
		Email:       rowString(r, "email"),
		Governorate: rowString(r, "governorate"),
		City:        rowString(r, "city"),
		OrdersCount: rowInt(r, "orders_count"),
		TotalSpent:  rowDecimal(r, "total_spent"),
	}
	rowJSON(r, "details", &c.Details)
	return c
}

func walletTransactionToRow(storeID uuid.UUID, tx store.WalletTransaction) Row {
	return Row{
		"id":         tx.ID,
		"store_id":   storeID.String(),
		"type":       tx.Type,
		"amount":     tx.Amount.String(),
		"note":       tx.Note,
		"created_at": tx.CreatedAt,
	}
}

func walletTransactionFromRow(r Row) store.WalletTransaction {
	return store.WalletTransaction{
		ID:        rowString(r, "id"),
		Type:      rowString(r, "type"),
		Amount:    rowDecimal(r, "amount"),
		Note:      rowString(r, "note"),
		CreatedAt: rowTime(r, "created_at"),
	}
}

func discountCodeToRow(storeID uuid.UUID, dc store.DiscountCode) Row {
	return Row{
		"id":          dc.ID,
		"store_id":    storeID.String(),
		"code":        dc.Code,
		"type":        string(dc.Type),
		"value":       dc.Value.String(),
		"active":      dc.Active,
		"usage_count": dc.UsageCount,
	}
}

func discountCodeFromRow(r Row) store.DiscountCode {
	return store.DiscountCode{
		ID:         rowString(r, "id"),
		Code:       rowString(r, "code"),
		Type:       store.DiscountType(rowString(r, "type")),
		Value:      rowDecimal(r, "value"),
		Active:     rowBool(r, "active"),
		UsageCount: rowInt(r, "usage_count"),
	}
}

func reviewToRow(storeID uuid.UUID, rv store.Review) Row {
	return Row{
		"id":         rv.ID,
		"store_id":   storeID.String(),
		"product_id": rv.ProductID,
		"author":     rv.Author,
		"rating":     rv.Rating,
		"comment":    rv.Comment,
		"approved":   rv.Approved,
	}
}

func reviewFromRow(r Row) store.Review {
	return store.Review{
		ID:        rowString(r, "id"),
		ProductID: rowString(r, "product_id"),
		Author:    rowString(r, "author"),
		Rating:    rowInt(r, "rating"),
		Comment:   rowString(r, "comment"),
		Approved:  rowBool(r, "approved"),
	}
}

func abandonedCartToRow(storeID uuid.UUID, c store.AbandonedCart) Row {
	return Row{
		"id":             c.ID,
		"store_id":       storeID.String(),
		"customer_phone": c.CustomerPhone,
		"items":          toJSON(c.Items),
		"total":          c.Total.String(),
		"created_at":     c.CreatedAt,
	}
}

func abandonedCartFromRow(r Row) store.AbandonedCart {
	c := store.AbandonedCart{
		ID:            rowString(r, "id"),
		CustomerPhone: rowString(r, "customer_phone"),
		Total:         rowDecimal(r, "total"),
		CreatedAt:     rowTime(r, "created_at"),
	}
	rowJSON(r, "items", &c.Items)
	return c
}

func globalOptionToRow(storeID uuid.UUID, o store.GlobalOption) Row {
	return Row{
		"id":            o.ID,
		"store_id":      storeID.String(),
		"name":          o.Name,
		"option_values": toJSON(o.Values),
	}
}

func globalOptionFromRow(r Row) store.GlobalOption {
	o := store.GlobalOption{
		ID:   rowString(r, "id"),
		Name: rowString(r, "name"),
	}
	rowJSON(r, "option_values", &o.Values)
	return o
}

func customPageToRow(storeID uuid.UUID, p store.CustomPage) Row {
	return Row{
		"id":        p.ID,
		"store_id":  storeID.String(),
		"title":     p.Title,
		"slug":      p.Slug,
		"content":   p.Content,
		"published": p.Published,
	}
}

func customPageFromRow(r Row) store.CustomPage {
	return store.CustomPage{
		ID:        rowString(r, "id"),
		Title:     rowString(r, "title"),
		Slug:      rowString(r, "slug"),
		Content:   rowString(r, "content"),
		Published: rowBool(r, "published"),
	}
}

func collectionToRow(storeID uuid.UUID, c store.Collection) Row {
	return Row{
		"id":          c.ID,
		"store_id":    storeID.String(),
		"name":        c.Name,
		"product_ids": toJSON(c.ProductIDs),
		"active":      c.Active,
	}
}

func collectionFromRow(r Row) store.Collection {
	c := store.Collection{
		ID:     rowString(r, "id"),
		Name:   rowString(r, "name"),
		Active: rowBool(r, "active"),
	}
	rowJSON(r, "product_ids", &c.ProductIDs)
	return c
}

func activityEntryToRow(storeID uuid.UUID, e store.ActivityEntry) Row {
	return Row{
		"id":         e.ID,
		"store_id":   storeID.String(),
		"action":     e.Action,
		"actor":      e.Actor,
		"created_at": e.CreatedAt,
		"meta":       toJSON(e.Meta),
	}
}

func activityEntryFromRow(r Row) store.ActivityEntry {
	e := store.ActivityEntry{
		ID:        rowString(r, "id"),
		Action:    rowString(r, "action"),
		Actor:     rowString(r, "actor"),
		CreatedAt: rowTime(r, "created_at"),
	}
	rowJSON(r, "meta", &e.Meta)
	return e
}

// companyToRows flattens one company into its three tables. Zone and
// city ordering is preserved through the position column.
func companyToRows(c shipping.Company) (Row, []Row, []Row) {
	companyRow := Row{
		"id":                 c.ID.String(),
		"store_id":           c.StoreID.String(),
		"name":               c.Name,
		"active":             c.Active,
		"exchange_supported": c.ExchangeSupported,
		"fee_policy":         toJSON(c.FeePolicy),
	}

	var zoneRows, cityRows []Row
	for zi, zone := range c.Zones {
		zoneRows = append(zoneRows, Row{
			"id":                   zone.ID.String(),
			"store_id":             c.StoreID.String(),
			"company_id":           c.ID.String(),
			"label":                zone.Label,
			"details":              zone.Details,
			"shipping_price":       zone.Rates.ShippingPrice.String(),
			"extra_kg_price":       zone.Rates.ExtraKgPrice.String(),
			"return_after_price":   zone.Rates.ReturnAfterPrice.String(),
			"return_without_price": zone.Rates.ReturnWithoutPrice.String(),
			"exchange_price":       zone.Rates.ExchangePrice.String(),
			"base_weight":          zone.BaseWeight.String(),
			"active":               zone.Active,
			"position":             zi,
		})
		for ci, city := range zone.Cities {
			cityRows = append(cityRows, Row{
				"id":                   city.ID.String(),
				"store_id":             c.StoreID.String(),
				"zone_id":              zone.ID.String(),
				"name":                 city.Name,
				"shipping_price":       city.Rates.ShippingPrice.String(),
				"extra_kg_price":       city.Rates.ExtraKgPrice.String(),
				"return_after_price":   city.Rates.ReturnAfterPrice.String(),
				"return_without_price": city.Rates.ReturnWithoutPrice.String(),
				"exchange_price":       city.Rates.ExchangePrice.String(),
				"use_parent_fees":      city.UseParentFees,
				"active":               city.Active,
				"position":             ci,
			})
		}
	}
	return companyRow, zoneRows, cityRows
}

func rateScheduleFromRow(r Row) shipping.RateSchedule {
	return shipping.RateSchedule{
		ShippingPrice:      rowDecimal(r, "shipping_price"),
		ExtraKgPrice:       rowDecimal(r, "extra_kg_price"),
		ReturnAfterPrice:   rowDecimal(r, "return_after_price"),
		ReturnWithoutPrice: rowDecimal(r, "return_without_price"),
		ExchangePrice:      rowDecimal(r, "exchange_price"),
	}
}

// companiesFromRows rebuilds the company list from the three flattened
// tables, restoring zone and city order from the position column.
func companiesFromRows(companyRows, zoneRows, cityRows []Row) []shipping.Company {
	type positionedCity struct {
		pos  int
		city shipping.City
	}
	type positionedZone struct {
		pos  int
		zone shipping.Zone
	}

	citiesByZone := make(map[uuid.UUID][]positionedCity)
	for _, r := range cityRows {
		zoneID := rowUUID(r, "zone_id")
		citiesByZone[zoneID] = append(citiesByZone[zoneID], positionedCity{
			pos: rowInt(r, "position"),
			city: shipping.City{
				ID:            rowUUID(r, "id"),
				Name:          rowString(r, "name"),
				Rates:         rateScheduleFromRow(r),
				UseParentFees: rowBool(r, "use_parent_fees"),
				Active:        rowBool(r, "active"),
			},
		})
	}

	zonesByCompany := make(map[uuid.UUID][]positionedZone)
	for _, r := range zoneRows {
		companyID := rowUUID(r, "company_id")
		zone := shipping.Zone{
			ID:         rowUUID(r, "id"),
			Label:      rowString(r, "label"),
			Details:    rowString(r, "details"),
			Rates:      rateScheduleFromRow(r),
			BaseWeight: rowDecimal(r, "base_weight"),
			Active:     rowBool(r, "active"),
		}
		placed := citiesByZone[zone.ID]
		sort.Slice(placed, func(i, j int) bool { return placed[i].pos < placed[j].pos })
		zone.Cities = make([]shipping.City, 0, len(placed))
		for _, p := range placed {
			zone.Cities = append(zone.Cities, p.city)
		}
		zonesByCompany[companyID] = append(zonesByCompany[companyID], positionedZone{
			pos:  rowInt(r, "position"),
			zone: zone,
		})
	}

	companies := make([]shipping.Company, 0, len(companyRows))
	for _, r := range companyRows {
		company := shipping.Company{
			Name:              rowString(r, "name"),
			Active:            rowBool(r, "active"),
			ExchangeSupported: rowBool(r, "exchange_supported"),
		}
		company.ID = rowUUID(r, "id")
		company.StoreID = rowUUID(r, "store_id")
		rowJSON(r, "fee_policy", &company.FeePolicy)

		placed := zonesByCompany[company.ID]
		sort.Slice(placed, func(i, j int) bool { return placed[i].pos < placed[j].pos })
		company.Zones = make([]shipping.Zone, 0, len(placed))
		for _, p := range placed {
			company.Zones = append(company.Zones, p.zone)
		}
		companies = append(companies, company)
	}
	return companies
}

func storeRow(storeID uuid.UUID, scalars store.ScalarSettings) Row {
	return Row{
		"id":       storeID.String(),
		"name":     scalars.StoreName,
		"settings": toJSON(scalars),
	}
}

func scalarsFromStoreRow(r Row) (store.ScalarSettings, error) {
	raw := rowString(r, "settings")
	if raw == "" {
		return store.ScalarSettings{}, shared.ErrNotFound
	}
	var scalars store.ScalarSettings
	if err := json.Unmarshal([]byte(raw), &scalars); err != nil {
		return store.ScalarSettings{}, err
	}
	return scalars, nil
}
