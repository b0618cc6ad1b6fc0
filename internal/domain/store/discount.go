package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storeadmin/backend/internal/domain/shared"
)

// DiscountType is the kind of discount a code applies.
type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

// DiscountCode is a checkout discount. Code uniqueness is deliberately
// not enforced: the legacy data contains duplicate codes and rejecting
// them on load would drop live records. Known gap, kept permissive.
type DiscountCode struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Type       DiscountType    `json:"type"`
	Value      decimal.Decimal `json:"value"`
	Active     bool            `json:"active"`
	UsageCount int             `json:"usage_count"`
}

// NewDiscountCode creates an active discount code. The code string is
// trimmed and uppercased; the value must be strictly positive. The id is
// derived from the creation timestamp, matching the legacy scheme.
func NewDiscountCode(code string, discountType DiscountType, value decimal.Decimal) (*DiscountCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Discount code cannot be empty")
	}
	if discountType != DiscountTypeFixed && discountType != DiscountTypePercentage {
		return nil, shared.NewDomainError("INVALID_TYPE", "Discount type must be fixed or percentage")
	}
	if !value.IsPositive() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Discount value must be greater than zero")
	}

	return &DiscountCode{
		ID:     strconv.FormatInt(time.Now().UnixMilli(), 10),
		Code:   code,
		Type:   discountType,
		Value:  value,
		Active: true,
	}, nil
}
