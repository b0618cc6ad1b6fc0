package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	shippingapp "github.com/storeadmin/backend/internal/application/shipping"
)

// ShippingHandler exposes shipping company administration
type ShippingHandler struct {
	BaseHandler
	service *shippingapp.Service
}

// NewShippingHandler creates a new ShippingHandler
func NewShippingHandler(service *shippingapp.Service) *ShippingHandler {
	return &ShippingHandler{service: service}
}

// RegisterRoutes registers shipping routes on the given group
func (h *ShippingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/shipping/companies")
	{
		companies.GET("", h.List)
		companies.POST("", h.Create)
		companies.GET("/:name", h.Get)
		companies.PATCH("/:name", h.Update)
		companies.DELETE("/:name", h.Delete)
		companies.POST("/:name/generate-zones", h.GenerateZones)

		zones := companies.Group("/:name/zones/:zoneID")
		{
			zones.PATCH("", h.UpdateZone)
			zones.POST("/link-all", h.LinkAllCities)
			zones.POST("/unlink-all", h.UnlinkAllCities)
			zones.GET("/cities", h.CityOptions)
			zones.PUT("/cities", h.SaveCitySelection)
			zones.PATCH("/cities/:cityID", h.UpdateCity)
		}
	}
	rg.POST("/shipping/quote", h.Quote)
}

// List returns every shipping company for the store
func (h *ShippingHandler) List(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	companies, err := h.service.ListCompanies(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, companies)
}

// Get returns one company by name
func (h *ShippingHandler) Get(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	company, err := h.service.GetCompany(c.Request.Context(), storeID, c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Create adds a new shipping company
func (h *ShippingHandler) Create(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req shippingapp.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	company, err := h.service.CreateCompany(c.Request.Context(), storeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, company)
}

// Update patches company flags and fee policy
func (h *ShippingHandler) Update(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req shippingapp.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	company, err := h.service.UpdateCompany(c.Request.Context(), storeID, c.Param("name"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Delete removes a company and everything it owns
func (h *ShippingHandler) Delete(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.service.DeleteCompany(c.Request.Context(), storeID, c.Param("name")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GenerateZones rebuilds the company's zones from the catalog
func (h *ShippingHandler) GenerateZones(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req shippingapp.GenerateZonesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	company, err := h.service.GenerateZones(c.Request.Context(), storeID, c.Param("name"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// UpdateZone patches one zone
func (h *ShippingHandler) UpdateZone(c *gin.Context) {
	storeID, zoneID, ok := h.storeAndZone(c)
	if !ok {
		return
	}
	var req shippingapp.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.service.UpdateZone(c.Request.Context(), storeID, c.Param("name"), zoneID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UpdateCity patches one city within a zone
func (h *ShippingHandler) UpdateCity(c *gin.Context) {
	storeID, zoneID, ok := h.storeAndZone(c)
	if !ok {
		return
	}
	cityID, err := uuid.Parse(c.Param("cityID"))
	if err != nil {
		h.BadRequest(c, "invalid city id")
		return
	}
	var req shippingapp.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.service.UpdateCity(c.Request.Context(), storeID, c.Param("name"), zoneID, cityID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// LinkAllCities links every city in the zone to the zone schedule
func (h *ShippingHandler) LinkAllCities(c *gin.Context) {
	storeID, zoneID, ok := h.storeAndZone(c)
	if !ok {
		return
	}
	if err := h.service.LinkAllCities(c.Request.Context(), storeID, c.Param("name"), zoneID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UnlinkAllCities unlinks every city, snapshotting the zone schedule
func (h *ShippingHandler) UnlinkAllCities(c *gin.Context) {
	storeID, zoneID, ok := h.storeAndZone(c)
	if !ok {
		return
	}
	if err := h.service.UnlinkAllCities(c.Request.Context(), storeID, c.Param("name"), zoneID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CityOptions backs the city selection dialog
func (h *ShippingHandler) CityOptions(c *gin.Context) {
	storeID, zoneID, ok := h.storeAndZone(c)
	if !ok {
		return
	}
	options, err := h.service.CityOptions(c.Request.Context(), storeID, c.Param("name"), zoneID, c.Query("query"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, options)
}

// SaveCitySelection replaces the zone's city list by name selection
func (h *ShippingHandler) SaveCitySelection(c *gin.Context) {
	storeID, zoneID, ok := h.storeAndZone(c)
	if !ok {
		return
	}
	var req shippingapp.CitySelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.service.SaveCitySelection(c.Request.Context(), storeID, c.Param("name"), zoneID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Quote resolves the effective fee schedule for a shipment
func (h *ShippingHandler) Quote(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req shippingapp.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	quote, err := h.service.Quote(c.Request.Context(), storeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, quote)
}

func (h *ShippingHandler) storeAndZone(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	zoneID, err := uuid.Parse(c.Param("zoneID"))
	if err != nil {
		h.BadRequest(c, "invalid zone id")
		return uuid.Nil, uuid.Nil, false
	}
	return storeID, zoneID, true
}
