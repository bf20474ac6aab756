package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-ops-api/internal/config"
	"github.com/vfg2006/agency-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockHouseholdRepository,
	*mocks.MockQuoteRepository,
	*mocks.MockSaleRepository,
	*mocks.MockLeadSourceRepository,
	*mocks.MockLeadSourceSpendRepository,
	*mocks.MockAgencySettingsRepository,
	*mocks.MockAnalyticsSnapshotRepository,
) {
	householdRepo := mocks.NewMockHouseholdRepository(ctrl)
	quoteRepo := mocks.NewMockQuoteRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	leadSourceRepo := mocks.NewMockLeadSourceRepository(ctrl)
	spendRepo := mocks.NewMockLeadSourceSpendRepository(ctrl)
	settingsRepo := mocks.NewMockAgencySettingsRepository(ctrl)
	snapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)

	service := &Service{
		cfg: &config.Config{
			Analytics: config.Analytics{DefaultCommissionRate: 12.0},
		},
		householdRepo:  householdRepo,
		quoteRepo:      quoteRepo,
		saleRepo:       saleRepo,
		leadSourceRepo: leadSourceRepo,
		spendRepo:      spendRepo,
		settingsRepo:   settingsRepo,
		snapshotRepo:   snapshotRepo,
	}

	return service, householdRepo, quoteRepo, saleRepo, leadSourceRepo, spendRepo, settingsRepo, snapshotRepo
}

func TestGetRoiAnalytics(t *testing.T) {
	const agencyID = "AGY001"

	googleID := stringPtr("SRC001")

	window := domain.DateRange{
		Start: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	leadSources := []*domain.LeadSource{
		{ID: "SRC001", AgencyID: agencyID, Name: "Google Ads", Active: true},
	}

	tests := []struct {
		name      string
		dateRange *domain.DateRange
		setup     func(
			householdRepo *mocks.MockHouseholdRepository,
			quoteRepo *mocks.MockQuoteRepository,
			saleRepo *mocks.MockSaleRepository,
			leadSourceRepo *mocks.MockLeadSourceRepository,
			spendRepo *mocks.MockLeadSourceSpendRepository,
			settingsRepo *mocks.MockAgencySettingsRepository,
		)
		validate func(t *testing.T, result *domain.RoiAnalytics, err error)
	}{
		{
			name:      "Range nulo - executa Pipeline Mode sobre o funil inteiro",
			dateRange: nil,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
				spendRepo *mocks.MockLeadSourceSpendRepository,
				settingsRepo *mocks.MockAgencySettingsRepository,
			) {
				settingsRepo.EXPECT().GetByAgencyID(agencyID).Return(&domain.AgencySettings{
					AgencyID:       agencyID,
					CommissionRate: 10.0,
				}, nil)
				leadSourceRepo.EXPECT().ListByAgency(agencyID).Return(leadSources, nil)
				householdRepo.EXPECT().ListByAgency(agencyID).Return([]*domain.Household{
					{ID: "HH001", Status: domain.HouseholdStatusLead, LeadSourceID: googleID},
					{
						ID:           "HH002",
						Status:       domain.HouseholdStatusSold,
						LeadSourceID: googleID,
						Sales:        []*domain.Sale{{ID: "SAL001", PremiumCents: 100000}},
					},
				}, nil)
				spendRepo.EXPECT().ListByAgency(agencyID, nil).Return([]*domain.LeadSourceSpend{
					{LeadSourceID: "SRC001", SpendCents: 12500},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.RoiAnalytics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ModePipeline, result.Summary.Mode)
				assert.NotNil(t, result.Summary.Pipeline)
				assert.Nil(t, result.Summary.Activity)
				assert.Nil(t, result.DateRange)

				assert.Equal(t, 2, result.Summary.Pipeline.TotalLeads)
				assert.Equal(t, 1, result.Summary.Pipeline.SoldHouseholds)
				assert.Equal(t, int64(100000), result.Summary.PremiumSoldCents)
				assert.Equal(t, int64(10000), result.Summary.CommissionEarnedCents)
				assert.Equal(t, float64Ptr(0.8), result.Summary.OverallRoi)

				assert.Len(t, result.ByLeadSource, 1)
				assert.Equal(t, "Google Ads", result.ByLeadSource[0].LeadSourceName)
			},
		},
		{
			name:      "Range concreto - executa Activity Mode com dedup por household",
			dateRange: &window,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
				spendRepo *mocks.MockLeadSourceSpendRepository,
				settingsRepo *mocks.MockAgencySettingsRepository,
			) {
				settingsRepo.EXPECT().GetByAgencyID(agencyID).Return(&domain.AgencySettings{
					AgencyID:       agencyID,
					CommissionRate: 10.0,
				}, nil)
				leadSourceRepo.EXPECT().ListByAgency(agencyID).Return(leadSources, nil)
				householdRepo.EXPECT().ListReceivedInRange(agencyID, window).Return([]*domain.Household{
					{ID: "HH001", LeadReceivedDate: timePtr(window.Start.AddDate(0, 0, 5)), LeadSourceID: googleID},
				}, nil)
				quoteRepo.EXPECT().ListActivityInRange(agencyID, window).Return([]*domain.QuoteActivity{
					{Quote: domain.Quote{ID: "QT001", HouseholdID: "HH001"}, LeadSourceID: googleID},
					{Quote: domain.Quote{ID: "QT002", HouseholdID: "HH001"}, LeadSourceID: googleID},
				}, nil)
				saleRepo.EXPECT().ListActivityInRange(agencyID, window).Return([]*domain.SaleActivity{
					{Sale: domain.Sale{ID: "SAL001", HouseholdID: "HH001", PremiumCents: 60000}, LeadSourceID: googleID},
				}, nil)
				spendRepo.EXPECT().ListByAgency(agencyID, &window).Return([]*domain.LeadSourceSpend{}, nil)
			},
			validate: func(t *testing.T, result *domain.RoiAnalytics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ModeActivity, result.Summary.Mode)
				assert.NotNil(t, result.Summary.Activity)
				assert.Nil(t, result.Summary.Pipeline)
				assert.Equal(t, &window, result.DateRange)

				assert.Equal(t, 1, result.Summary.Activity.LeadsReceived)
				assert.Equal(t, 1, result.Summary.Activity.QuotesCreated)
				assert.Equal(t, 1, result.Summary.Activity.SalesClosed)
				assert.Equal(t, int64(60000), result.Summary.PremiumSoldCents)

				// Sem spend na janela, roi geral fica nil
				assert.Nil(t, result.Summary.OverallRoi)
			},
		},
		{
			name:      "Agência sem settings - usa o percentual de comissão padrão",
			dateRange: nil,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
				spendRepo *mocks.MockLeadSourceSpendRepository,
				settingsRepo *mocks.MockAgencySettingsRepository,
			) {
				settingsRepo.EXPECT().GetByAgencyID(agencyID).Return(nil, nil)
				leadSourceRepo.EXPECT().ListByAgency(agencyID).Return(leadSources, nil)
				householdRepo.EXPECT().ListByAgency(agencyID).Return([]*domain.Household{}, nil)
				spendRepo.EXPECT().ListByAgency(agencyID, nil).Return([]*domain.LeadSourceSpend{}, nil)
			},
			validate: func(t *testing.T, result *domain.RoiAnalytics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 12.0, result.Summary.CommissionRate)
			},
		},
		{
			name:      "Erro ao buscar settings - propaga sem chamar os demais repositórios",
			dateRange: nil,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
				spendRepo *mocks.MockLeadSourceSpendRepository,
				settingsRepo *mocks.MockAgencySettingsRepository,
			) {
				settingsRepo.EXPECT().GetByAgencyID(agencyID).Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, result *domain.RoiAnalytics, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:      "Erro ao buscar households - propaga do caminho paralelo",
			dateRange: nil,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
				spendRepo *mocks.MockLeadSourceSpendRepository,
				settingsRepo *mocks.MockAgencySettingsRepository,
			) {
				settingsRepo.EXPECT().GetByAgencyID(agencyID).Return(&domain.AgencySettings{
					AgencyID:       agencyID,
					CommissionRate: 10.0,
				}, nil)
				leadSourceRepo.EXPECT().ListByAgency(agencyID).Return(leadSources, nil)
				householdRepo.EXPECT().ListByAgency(agencyID).Return(nil, errors.New("query timeout"))
				spendRepo.EXPECT().ListByAgency(agencyID, nil).Return([]*domain.LeadSourceSpend{}, nil)
			},
			validate: func(t *testing.T, result *domain.RoiAnalytics, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, householdRepo, quoteRepo, saleRepo, leadSourceRepo, spendRepo, settingsRepo, _ := newTestService(ctrl)
			tt.setup(householdRepo, quoteRepo, saleRepo, leadSourceRepo, spendRepo, settingsRepo)

			result, err := service.GetRoiAnalytics(agencyID, tt.dateRange)
			tt.validate(t, result, err)
		})
	}
}

func TestGetLatestSnapshot(t *testing.T) {
	const agencyID = "AGY001"

	t.Run("Snapshot existente - retorna o pré-calculado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, _, _, _, snapshotRepo := newTestService(ctrl)

		expected := &domain.AnalyticsSnapshot{
			AgencyID:   agencyID,
			ComputedAt: time.Date(2026, 6, 15, 3, 0, 0, 0, time.UTC),
			Analytics: &domain.RoiAnalytics{
				Summary: &domain.RoiSummary{Mode: domain.ModePipeline},
			},
		}
		snapshotRepo.EXPECT().GetLatestByAgency(agencyID).Return(expected, nil)

		snapshot, err := service.GetLatestSnapshot(agencyID)

		assert.NoError(t, err)
		assert.Equal(t, expected, snapshot)
	})

	t.Run("Agência sem snapshot - retorna nil sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, _, _, _, snapshotRepo := newTestService(ctrl)

		snapshotRepo.EXPECT().GetLatestByAgency(agencyID).Return(nil, nil)

		snapshot, err := service.GetLatestSnapshot(agencyID)

		assert.NoError(t, err)
		assert.Nil(t, snapshot)
	})
}
