package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/storeadmin/backend/internal/application/storedata"
	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/domain/store"
)

// CreateDiscountRequest carries a new discount code. Field validation
// lives in the domain constructor so its error codes surface.
type CreateDiscountRequest struct {
	Code  string             `json:"code"`
	Type  store.DiscountType `json:"type"`
	Value decimal.Decimal    `json:"value"`
}

// UpdateDiscountRequest toggles a discount code
type UpdateDiscountRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// DiscountHandler manages checkout discount codes
type DiscountHandler struct {
	BaseHandler
	reconciler *storedata.Reconciler
}

// NewDiscountHandler creates a new DiscountHandler
func NewDiscountHandler(reconciler *storedata.Reconciler) *DiscountHandler {
	return &DiscountHandler{reconciler: reconciler}
}

// RegisterRoutes registers discount routes on the given group
func (h *DiscountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	discounts := rg.Group("/discounts")
	{
		discounts.GET("", h.List)
		discounts.POST("", h.Create)
		discounts.PATCH("/:id", h.Update)
		discounts.DELETE("/:id", h.Delete)
	}
}

// List returns every discount code for the store
func (h *DiscountHandler) List(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	settings, err := h.reconciler.Load(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings.DiscountCodes)
}

// Create adds a discount code
func (h *DiscountHandler) Create(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	settings, err := h.reconciler.Load(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	code, err := settings.AddDiscountCode(req.Code, req.Type, req.Value)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if err := h.reconciler.Save(c.Request.Context(), settings); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, code)
}

// Update toggles a discount code's active flag
func (h *DiscountHandler) Update(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	settings, err := h.reconciler.Load(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	code := findDiscount(settings, c.Param("id"))
	if code == nil {
		h.HandleError(c, shared.ErrNotFound)
		return
	}
	code.Active = *req.Active
	if err := h.reconciler.Save(c.Request.Context(), settings); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, code)
}

// Delete removes a discount code
func (h *DiscountHandler) Delete(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	settings, err := h.reconciler.Load(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	id := c.Param("id")
	kept := settings.DiscountCodes[:0]
	found := false
	for _, code := range settings.DiscountCodes {
		if code.ID == id {
			found = true
			continue
		}
		kept = append(kept, code)
	}
	if !found {
		h.HandleError(c, shared.ErrNotFound)
		return
	}
	settings.DiscountCodes = kept
	if err := h.reconciler.Save(c.Request.Context(), settings); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func findDiscount(settings *store.StoreSettings, id string) *store.DiscountCode {
	for i := range settings.DiscountCodes {
		if settings.DiscountCodes[i].ID == id {
			return &settings.DiscountCodes[i]
		}
	}
	return nil
}
