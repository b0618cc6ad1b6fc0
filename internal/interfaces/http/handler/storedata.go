package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storeadmin/backend/internal/application/storedata"
	"github.com/storeadmin/backend/internal/domain/store"
	"github.com/storeadmin/backend/internal/interfaces/http/dto"
)

// ClearDataRequest names the data groups to wipe and carries the
// operator's confirmation code.
type ClearDataRequest struct {
	// Targets stays unvalidated here so an empty selection surfaces
	// as the reconciler's EMPTY_SELECTION error.
	Targets          []storedata.ClearTarget `json:"targets"`
	ConfirmationCode string                  `json:"confirmation_code"`
}

// MigrationResponse reports per-store migration outcomes.
type MigrationResponse struct {
	Log []string `json:"log"`
}

// StoreDataHandler exposes the store data admin surface: full
// settings read and write, destructive clears, and the legacy
// migration trigger.
type StoreDataHandler struct {
	BaseHandler
	reconciler       *storedata.Reconciler
	migrationEnabled bool
}

// NewStoreDataHandler creates a new StoreDataHandler
func NewStoreDataHandler(reconciler *storedata.Reconciler, migrationEnabled bool) *StoreDataHandler {
	return &StoreDataHandler{reconciler: reconciler, migrationEnabled: migrationEnabled}
}

// RegisterRoutes registers store data routes on the given group
func (h *StoreDataHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/store-data", h.Get)
	rg.PUT("/store-data", h.Put)
	rg.POST("/store-data/clear", h.Clear)
	rg.POST("/admin/migrate-legacy", h.MigrateLegacy)
}

// Get returns the full settings aggregate for the store. Missing
// stores come back as defaults rather than 404: the console treats
// every store id as creatable.
func (h *StoreDataHandler) Get(c *gin.Context) {
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
	h.Success(c, settings)
}

// Put replaces the store's settings with the submitted aggregate. The
// store id always comes from the header, never from the body.
func (h *StoreDataHandler) Put(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var settings store.StoreSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	settings.StoreID = storeID
	if err := h.reconciler.Save(c.Request.Context(), &settings); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Clear wipes the selected data groups after confirmation
func (h *StoreDataHandler) Clear(c *gin.Context) {
	storeID, err := getStoreID(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	var req ClearDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.reconciler.Clear(c.Request.Context(), storeID, req.Targets, req.ConfirmationCode); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// MigrateLegacy copies every legacy store document into the relational
// tables and returns the per-store log. Disabled unless the deployment
// opts in.
func (h *StoreDataHandler) MigrateLegacy(c *gin.Context) {
	if !h.migrationEnabled {
		h.Error(c, http.StatusForbidden, dtoErrCodeMigrationDisabled, "legacy migration is disabled")
		return
	}
	log, err := h.reconciler.MigrateAllLegacyDataToRelational(c.Request.Context())
	if err != nil {
		// Partial runs still return their log alongside the fault.
		c.JSON(http.StatusInternalServerError, dto.Response{
			Data: MigrationResponse{Log: log},
			Error: &dto.ErrorInfo{
				Code:      dtoErrCodeMigrationFailed,
				Message:   err.Error(),
				RequestID: getRequestID(c),
			},
		})
		return
	}
	h.Success(c, MigrationResponse{Log: log})
}

const (
	dtoErrCodeMigrationDisabled = "MIGRATION_DISABLED"
	dtoErrCodeMigrationFailed   = "MIGRATION_FAILED"
)
