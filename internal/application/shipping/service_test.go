package shipping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storeadmin/backend/internal/domain/geography"
	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/domain/shipping"
	"github.com/storeadmin/backend/internal/domain/store"
)

type mockSettingsStore struct {
	mock.Mock
}

func (m *mockSettingsStore) Load(ctx context.Context, storeID uuid.UUID) (*store.StoreSettings, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.StoreSettings), args.Error(1)
}

func (m *mockSettingsStore) Save(ctx context.Context, settings *store.StoreSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

var testCatalog = []geography.Governorate{
	{Name: "Giza", Cities: []string{"Haram", "Dokki", "Mohandessin"}},
	{Name: "Cairo", Cities: []string{"Nasr City", "Maadi"}},
}

func settingsWithCompany(t *testing.T, storeID uuid.UUID) (*store.StoreSettings, *shipping.Company) {
	t.Helper()
	settings := store.DefaultSettings(storeID)
	company, err := shipping.NewCompany(storeID, "Bosta")
	require.NoError(t, err)
	require.NoError(t, settings.AddCompany(company))
	return settings, settings.FindCompany("Bosta")
}

func TestService_CreateCompany(t *testing.T) {
	storeID := uuid.New()
	ctx := context.Background()

	t.Run("creates and saves", func(t *testing.T) {
		data := new(mockSettingsStore)
		data.On("Load", ctx, storeID).Return(store.DefaultSettings(storeID), nil)
		data.On("Save", ctx, mock.Anything).Return(nil)

		svc := NewService(data, testCatalog)
		resp, err := svc.CreateCompany(ctx, storeID, CreateCompanyRequest{Name: "  Bosta "})
		require.NoError(t, err)
		assert.Equal(t, "Bosta", resp.Name)
		assert.True(t, resp.Active)
		data.AssertExpectations(t)
	})

	t.Run("rejects duplicate name without saving", func(t *testing.T) {
		storeID := uuid.New()
		settings, _ := settingsWithCompany(t, storeID)
		data := new(mockSettingsStore)
		data.On("Load", ctx, storeID).Return(settings, nil)

		svc := NewService(data, testCatalog)
		_, err := svc.CreateCompany(ctx, storeID, CreateCompanyRequest{Name: "Bosta"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		data.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestService_GenerateZones(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	t.Run("generates one zone per governorate", func(t *testing.T) {
		settings, _ := settingsWithCompany(t, storeID)
		data := new(mockSettingsStore)
		data.On("Load", ctx, storeID).Return(settings, nil)
		data.On("Save", ctx, settings).Return(nil)

		svc := NewService(data, testCatalog)
		resp, err := svc.GenerateZones(ctx, storeID, "Bosta", GenerateZonesRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Zones, 2)
		assert.Equal(t, "Giza", resp.Zones[0].Label)
		assert.Len(t, resp.Zones[0].Cities, 3)
		data.AssertExpectations(t)
	})

	t.Run("refuses to replace existing zones without force", func(t *testing.T) {
		settings, company := settingsWithCompany(t, storeID)
		company.GenerateZonesFromCatalog(testCatalog)
		data := new(mockSettingsStore)
		data.On("Load", ctx, storeID).Return(settings, nil)

		svc := NewService(data, testCatalog)
		_, err := svc.GenerateZones(ctx, storeID, "Bosta", GenerateZonesRequest{})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ZONES_NOT_EMPTY", domainErr.Code)
		data.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("force replaces", func(t *testing.T) {
		settings, company := settingsWithCompany(t, storeID)
		company.GenerateZonesFromCatalog(testCatalog)
		data := new(mockSettingsStore)
		data.On("Load", ctx, storeID).Return(settings, nil)
		data.On("Save", ctx, settings).Return(nil)

		svc := NewService(data, testCatalog)
		resp, err := svc.GenerateZones(ctx, storeID, "Bosta", GenerateZonesRequest{Force: true})
		require.NoError(t, err)
		assert.Len(t, resp.Zones, 2)
	})
}

func TestService_SaveCitySelection(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	settings, company := settingsWithCompany(t, storeID)
	company.GenerateZonesFromCatalog(testCatalog)
	zone := &company.Zones[0]
	zone.SetRates(shipping.RateSchedule{ShippingPrice: decimal.NewFromInt(55)})

	// Haram carries a custom override that must survive re-selection.
	haram := zone.FindCityByName("Haram")
	require.NotNil(t, haram)
	haram.Unlink(zone.Rates)
	haram.Rates.ShippingPrice = decimal.NewFromInt(40)

	data := new(mockSettingsStore)
	data.On("Load", ctx, storeID).Return(settings, nil)
	data.On("Save", ctx, settings).Return(nil)

	svc := NewService(data, testCatalog)
	err := svc.SaveCitySelection(ctx, storeID, "Bosta", zone.ID, CitySelectionRequest{
		Cities: []string{"Haram", "Mohandessin"},
	})
	require.NoError(t, err)

	require.Len(t, zone.Cities, 2)
	kept := zone.FindCityByName("Haram")
	require.NotNil(t, kept)
	assert.False(t, kept.UseParentFees)
	assert.True(t, kept.Rates.ShippingPrice.Equal(decimal.NewFromInt(40)))
	assert.Nil(t, zone.FindCityByName("Dokki"))
}

func TestService_Quote(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	buildSettings := func(t *testing.T) (*store.StoreSettings, *shipping.Company, *shipping.Zone) {
		settings, company := settingsWithCompany(t, storeID)
		company.GenerateZonesFromCatalog(testCatalog)
		zone := &company.Zones[0]
		zone.SetRates(shipping.RateSchedule{
			ShippingPrice: decimal.NewFromInt(55),
			ExtraKgPrice:  decimal.NewFromInt(10),
		})
		return settings, company, zone
	}

	t.Run("linked city quotes the zone schedule", func(t *testing.T) {
		settings, _, zone := buildSettings(t)
		data := new(mockSettingsStore)
		data.On("Load", ctx, storeID).Return(settings, nil)

		svc := NewService(data, testCatalog)
		resp, err := svc.Quote(ctx, storeID, QuoteRequest{Company: "Bosta", ZoneID: zone.ID, City: "Dokki"})
		require.NoError(t, err)
		assert.True(t, resp.Rates.ShippingPrice.Equal(decimal.NewFromInt(55)))
	})

	t.Run("global policy governs when custom fees are off", func(t *testing.T) {
		settings, company, zone := buildSettings(t)
		settings.GlobalFees.EnableReturnAfter = true
		company.FeePolicy.EnableReturnAfter = false
		company.FeePolicy.UseCustomFees = false

		data := new(mockSettingsStore)
		data.On("Load", ctx, storeID).Return(settings, nil)

		svc := NewService(data, testCatalog)
		resp, err := svc.Quote(ctx, storeID, QuoteRequest{Company: "Bosta", ZoneID: zone.ID})
		require.NoError(t, err)
		assert.True(t, resp.ReturnAfterActive)
	})

	t.Run("exchange needs both policy and company support", func(t *testing.T) {
		settings, company, zone := buildSettings(t)
		company.FeePolicy.UseCustomFees = true
		company.FeePolicy.EnableExchange = true
		company.SetExchangeSupported(false)

		data := new(mockSettingsStore)
		data.On("Load", ctx, storeID).Return(settings, nil)

		svc := NewService(data, testCatalog)
		resp, err := svc.Quote(ctx, storeID, QuoteRequest{Company: "Bosta", ZoneID: zone.ID})
		require.NoError(t, err)
		assert.False(t, resp.ExchangeActive)
	})

	t.Run("cod fees apply above the threshold", func(t *testing.T) {
		settings, company, zone := buildSettings(t)
		company.FeePolicy.UseCustomFees = true
		company.FeePolicy.EnableCodFees = true
		company.FeePolicy.CodThreshold = decimal.NewFromInt(500)
		company.FeePolicy.CodFeeRate = decimal.NewFromInt(2)
		company.FeePolicy.CodTaxRate = decimal.NewFromInt(14)

		data := new(mockSettingsStore)
		data.On("Load", ctx, storeID).Return(settings, nil)

		svc := NewService(data, testCatalog)
		resp, err := svc.Quote(ctx, storeID, QuoteRequest{
			Company:    "Bosta",
			ZoneID:     zone.ID,
			OrderTotal: decimal.NewFromInt(1000),
		})
		require.NoError(t, err)
		assert.True(t, resp.CodFee.Equal(decimal.NewFromInt(20)))
		assert.True(t, resp.CodTax.Equal(decimal.NewFromFloat(2.8)))
	})

	t.Run("inactive company is not quoted", func(t *testing.T) {
		settings, company, zone := buildSettings(t)
		company.SetActive(false)

		data := new(mockSettingsStore)
		data.On("Load", ctx, storeID).Return(settings, nil)

		svc := NewService(data, testCatalog)
		_, err := svc.Quote(ctx, storeID, QuoteRequest{Company: "Bosta", ZoneID: zone.ID})
		require.Error(t, err)
	})
}

func TestService_CityOptions(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	settings, company := settingsWithCompany(t, storeID)
	company.GenerateZonesFromCatalog(testCatalog)
	zone := &company.Zones[0]

	data := new(mockSettingsStore)
	data.On("Load", ctx, storeID).Return(settings, nil)

	svc := NewService(data, testCatalog)
	resp, err := svc.CityOptions(ctx, storeID, "Bosta", zone.ID, "do")
	require.NoError(t, err)
	assert.Equal(t, "Giza", resp.Governorate)
	assert.Equal(t, []string{"Dokki"}, resp.Available)
	assert.Len(t, resp.Selected, 3)
}
