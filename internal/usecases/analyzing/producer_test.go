package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestTrendGranularityFor(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		dateRange *domain.DateRange
		expected  domain.TrendGranularity
	}{
		{
			name:      "Sem janela - buckets mensais",
			dateRange: nil,
			expected:  domain.TrendMonthly,
		},
		{
			name:      "Janela de 90 dias - buckets semanais",
			dateRange: &domain.DateRange{Start: start, End: start.AddDate(0, 0, 90)},
			expected:  domain.TrendWeekly,
		},
		{
			name:      "Janela de 91 dias - buckets mensais",
			dateRange: &domain.DateRange{Start: start, End: start.AddDate(0, 0, 91)},
			expected:  domain.TrendMonthly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, trendGranularityFor(tt.dateRange))
		})
	}
}

func TestGetProducerDetail(t *testing.T) {
	const agencyID = "AGY001"

	producerID := stringPtr("USR001")
	googleID := stringPtr("SRC001")

	leadSources := []*domain.LeadSource{
		{ID: "SRC001", AgencyID: agencyID, Name: "Google Ads", Active: true},
	}

	// Janela de junho: curta o bastante para granularidade semanal
	window := domain.DateRange{
		Start: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		producerID *string
		viewMode   domain.ProducerViewMode
		dateRange  *domain.DateRange
		setup      func(
			householdRepo *mocks.MockHouseholdRepository,
			quoteRepo *mocks.MockQuoteRepository,
			saleRepo *mocks.MockSaleRepository,
			leadSourceRepo *mocks.MockLeadSourceRepository,
		)
		validate func(t *testing.T, result *domain.ProducerDetailData, err error)
	}{
		{
			name:       "Visão quotedBy - agrega os households inteiros do produtor",
			producerID: producerID,
			viewMode:   domain.ViewQuotedBy,
			dateRange:  nil,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
			) {
				quoteRepo.EXPECT().ListHouseholdIDsByProducer(agencyID, producerID, nil).Return([]string{"HH001", "HH002"}, nil)
				householdRepo.EXPECT().GetByIDs([]string{"HH001", "HH002"}).Return([]*domain.Household{
					{
						ID:           "HH001",
						Name:         "Silva",
						LeadSourceID: googleID,
						Quotes: []*domain.Quote{
							{ID: "QT001", HouseholdID: "HH001", ProductType: "auto", ItemsQuoted: 2, PremiumCents: 50000, QuoteDate: window.Start.AddDate(0, 0, 2)},
						},
						Sales: []*domain.Sale{
							{ID: "SAL001", HouseholdID: "HH001", ProductType: "auto", PoliciesSold: 1, ItemsSold: 2, PremiumCents: 48000, SaleDate: window.Start.AddDate(0, 0, 10)},
						},
					},
					{
						ID:           "HH002",
						Name:         "Souza",
						LeadSourceID: googleID,
						Quotes: []*domain.Quote{
							{ID: "QT002", HouseholdID: "HH002", ProductType: "home", ItemsQuoted: 1, PremiumCents: 30000, QuoteDate: window.Start.AddDate(0, 0, 3)},
						},
					},
				}, nil)
				leadSourceRepo.EXPECT().ListByAgency(agencyID).Return(leadSources, nil)
			},
			validate: func(t *testing.T, result *domain.ProducerDetailData, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ViewQuotedBy, result.ViewMode)
				assert.Len(t, result.Households, 2)

				assert.Equal(t, 2, result.Summary.QuotedHouseholds)
				assert.Equal(t, 1, result.Summary.SoldHouseholds)
				assert.Equal(t, 2, result.Summary.QuotedPolicies)
				assert.Equal(t, 1, result.Summary.SoldPolicies)
				assert.Equal(t, int64(80000), result.Summary.QuotedPremiumCents)
				assert.Equal(t, int64(48000), result.Summary.SoldPremiumCents)

				// 1 vendido de 2 cotados
				assert.Equal(t, float64Ptr(50.0), result.Summary.CloseRatio)

				// Breakdown por tipo de produto: auto vendeu, home só cotou
				assert.Len(t, result.ByProductType, 2)
				assert.Equal(t, "auto", result.ByProductType[0].Key)
				assert.Equal(t, int64(48000), result.ByProductType[0].SoldPremiumCents)
				assert.Equal(t, "home", result.ByProductType[1].Key)
				assert.Equal(t, float64Ptr(0.0), result.ByProductType[1].CloseRatio)

				// Breakdown por origem agrupa os dois households
				assert.Len(t, result.ByLeadSource, 1)
				assert.Equal(t, "Google Ads", result.ByLeadSource[0].Key)
				assert.Equal(t, 2, result.ByLeadSource[0].QuotedHouseholds)
			},
		},
		{
			name:       "Visão soldBy - resolve os households pelas vendas",
			producerID: producerID,
			viewMode:   domain.ViewSoldBy,
			dateRange:  nil,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
			) {
				saleRepo.EXPECT().ListHouseholdIDsByProducer(agencyID, producerID, nil).Return([]string{}, nil)
				householdRepo.EXPECT().GetByIDs([]string{}).Return([]*domain.Household{}, nil)
				leadSourceRepo.EXPECT().ListByAgency(agencyID).Return(leadSources, nil)
			},
			validate: func(t *testing.T, result *domain.ProducerDetailData, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ViewSoldBy, result.ViewMode)
				assert.Empty(t, result.Households)

				// Sem households cotados, close ratio indefinido
				assert.Nil(t, result.Summary.CloseRatio)
			},
		},
		{
			name:       "Produção não atribuída - producer nil vai direto para a query",
			producerID: nil,
			viewMode:   domain.ViewQuotedBy,
			dateRange:  nil,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
			) {
				quoteRepo.EXPECT().ListHouseholdIDsByProducer(agencyID, nil, nil).Return([]string{}, nil)
				householdRepo.EXPECT().GetByIDs([]string{}).Return([]*domain.Household{}, nil)
				leadSourceRepo.EXPECT().ListByAgency(agencyID).Return(leadSources, nil)
			},
			validate: func(t *testing.T, result *domain.ProducerDetailData, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result.ProducerID)
			},
		},
		{
			name:       "Modo de visão inválido - erro sem consultar repositórios",
			producerID: producerID,
			viewMode:   domain.ProducerViewMode("createdBy"),
			dateRange:  nil,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
			) {
			},
			validate: func(t *testing.T, result *domain.ProducerDetailData, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:       "Erro ao resolver households - propaga",
			producerID: producerID,
			viewMode:   domain.ViewQuotedBy,
			dateRange:  nil,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
			) {
				quoteRepo.EXPECT().ListHouseholdIDsByProducer(agencyID, producerID, nil).Return(nil, errors.New("query timeout"))
			},
			validate: func(t *testing.T, result *domain.ProducerDetailData, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:       "Janela curta - tendência semanal limitada à janela",
			producerID: producerID,
			viewMode:   domain.ViewQuotedBy,
			dateRange:  &window,
			setup: func(
				householdRepo *mocks.MockHouseholdRepository,
				quoteRepo *mocks.MockQuoteRepository,
				saleRepo *mocks.MockSaleRepository,
				leadSourceRepo *mocks.MockLeadSourceRepository,
			) {
				quoteRepo.EXPECT().ListHouseholdIDsByProducer(agencyID, producerID, &window).Return([]string{"HH001"}, nil)
				householdRepo.EXPECT().GetByIDs([]string{"HH001"}).Return([]*domain.Household{
					{
						ID:           "HH001",
						Name:         "Silva",
						LeadSourceID: googleID,
						Quotes: []*domain.Quote{
							// 2026-06-03 é quarta-feira, semana da segunda 2026-06-01
							{ID: "QT001", HouseholdID: "HH001", ProductType: "auto", PremiumCents: 50000, QuoteDate: time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)},
							// Cotação antiga fora da janela: soma no household, fica fora da tendência
							{ID: "QT002", HouseholdID: "HH001", ProductType: "auto", PremiumCents: 20000, QuoteDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
						},
						Sales: []*domain.Sale{
							// 2026-06-10 é quarta-feira, semana da segunda 2026-06-08
							{ID: "SAL001", HouseholdID: "HH001", ProductType: "auto", PoliciesSold: 1, PremiumCents: 45000, SaleDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)},
						},
					},
				}, nil)
				leadSourceRepo.EXPECT().ListByAgency(agencyID).Return(leadSources, nil)
			},
			validate: func(t *testing.T, result *domain.ProducerDetailData, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.TrendWeekly, result.Granularity)

				// O sumário cobre o histórico inteiro do household
				assert.Equal(t, int64(70000), result.Summary.QuotedPremiumCents)

				// A tendência só mostra os eventos da janela
				assert.Len(t, result.TrendData, 2)
				assert.Equal(t, "2026-06-01", result.TrendData[0].Period)
				assert.Equal(t, 1, result.TrendData[0].QuotedHouseholds)
				assert.Equal(t, 0, result.TrendData[0].SoldHouseholds)
				assert.Equal(t, "2026-06-08", result.TrendData[1].Period)
				assert.Equal(t, 1, result.TrendData[1].SoldHouseholds)
				assert.Equal(t, int64(45000), result.TrendData[1].SoldPremiumCents)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, householdRepo, quoteRepo, saleRepo, leadSourceRepo, _, _, _ := newTestService(ctrl)
			tt.setup(householdRepo, quoteRepo, saleRepo, leadSourceRepo)

			result, err := service.GetProducerDetail(agencyID, tt.producerID, tt.viewMode, tt.dateRange)
			tt.validate(t, result, err)
		})
	}
}
