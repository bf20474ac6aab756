package marketing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestCreateLeadSource(t *testing.T) {
	const agencyID = "AGY001"

	tests := []struct {
		name     string
		request  *domain.CreateLeadSourceRequest
		setup    func(sourceRepo *mocks.MockLeadSourceRepository)
		validate func(t *testing.T, source *domain.LeadSource, err error)
	}{
		{
			name:    "Criação com sucesso - ativo por padrão e nome aparado",
			request: &domain.CreateLeadSourceRequest{AgencyID: agencyID, Name: "  Google Ads  "},
			setup: func(sourceRepo *mocks.MockLeadSourceRepository) {
				sourceRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(source *domain.LeadSource) error {
					assert.NotEmpty(t, source.ID)
					assert.Equal(t, agencyID, source.AgencyID)
					assert.Equal(t, "Google Ads", source.Name)
					assert.True(t, source.Active)
					return nil
				})
			},
			validate: func(t *testing.T, source *domain.LeadSource, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Google Ads", source.Name)
			},
		},
		{
			name:    "Nome vazio após trim - erro de validação",
			request: &domain.CreateLeadSourceRequest{AgencyID: agencyID, Name: "   "},
			setup:   func(sourceRepo *mocks.MockLeadSourceRepository) {},
			validate: func(t *testing.T, source *domain.LeadSource, err error) {
				assert.Nil(t, source)
				assert.ErrorIs(t, err, ErrNameRequired)
			},
		},
		{
			name:    "Falha do banco - erro de operação",
			request: &domain.CreateLeadSourceRequest{AgencyID: agencyID, Name: "Referral"},
			setup: func(sourceRepo *mocks.MockLeadSourceRepository) {
				sourceRepo.EXPECT().Create(gomock.Any()).Return(errors.New("connection reset"))
			},
			validate: func(t *testing.T, source *domain.LeadSource, err error) {
				assert.Nil(t, source)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sourceRepo := mocks.NewMockLeadSourceRepository(ctrl)
			spendRepo := mocks.NewMockLeadSourceSpendRepository(ctrl)
			tt.setup(sourceRepo)

			service := NewService(sourceRepo, spendRepo)
			source, err := service.CreateLeadSource(tt.request)
			tt.validate(t, source, err)
		})
	}
}

func TestUpdateLeadSource(t *testing.T) {
	const agencyID = "AGY001"

	existing := func() []*domain.LeadSource {
		return []*domain.LeadSource{
			{ID: "SRC001", AgencyID: agencyID, Name: "Google Ads", Active: true},
			{ID: "SRC002", AgencyID: agencyID, Name: "Referral", Active: true},
		}
	}

	tests := []struct {
		name     string
		request  *domain.UpdateLeadSourceRequest
		setup    func(sourceRepo *mocks.MockLeadSourceRepository)
		validate func(t *testing.T, source *domain.LeadSource, err error)
	}{
		{
			name:    "Desativa a origem sem alterar o nome",
			request: &domain.UpdateLeadSourceRequest{ID: "SRC001", AgencyID: agencyID, Active: boolPtr(false)},
			setup: func(sourceRepo *mocks.MockLeadSourceRepository) {
				sourceRepo.EXPECT().ListByAgency(agencyID).Return(existing(), nil)
				sourceRepo.EXPECT().Update(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, source *domain.LeadSource, err error) {
				assert.NoError(t, err)
				assert.False(t, source.Active)
				assert.Equal(t, "Google Ads", source.Name)
			},
		},
		{
			name:    "Renomeia a origem",
			request: &domain.UpdateLeadSourceRequest{ID: "SRC002", AgencyID: agencyID, Name: stringPtr("Indicações")},
			setup: func(sourceRepo *mocks.MockLeadSourceRepository) {
				sourceRepo.EXPECT().ListByAgency(agencyID).Return(existing(), nil)
				sourceRepo.EXPECT().Update(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, source *domain.LeadSource, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Indicações", source.Name)
				assert.True(t, source.Active)
			},
		},
		{
			name:    "Origem de outra agência não é encontrada",
			request: &domain.UpdateLeadSourceRequest{ID: "SRC999", AgencyID: agencyID, Active: boolPtr(false)},
			setup: func(sourceRepo *mocks.MockLeadSourceRepository) {
				sourceRepo.EXPECT().ListByAgency(agencyID).Return(existing(), nil)
			},
			validate: func(t *testing.T, source *domain.LeadSource, err error) {
				assert.Nil(t, source)
				assert.ErrorIs(t, err, ErrLeadSourceNotFound)
			},
		},
		{
			name:    "ID ausente - erro de validação",
			request: &domain.UpdateLeadSourceRequest{AgencyID: agencyID},
			setup:   func(sourceRepo *mocks.MockLeadSourceRepository) {},
			validate: func(t *testing.T, source *domain.LeadSource, err error) {
				assert.Nil(t, source)
				assert.ErrorIs(t, err, ErrSourceIDRequired)
			},
		},
		{
			name:    "Nome novo vazio após trim - erro de validação",
			request: &domain.UpdateLeadSourceRequest{ID: "SRC001", AgencyID: agencyID, Name: stringPtr("  ")},
			setup: func(sourceRepo *mocks.MockLeadSourceRepository) {
				sourceRepo.EXPECT().ListByAgency(agencyID).Return(existing(), nil)
			},
			validate: func(t *testing.T, source *domain.LeadSource, err error) {
				assert.Nil(t, source)
				assert.ErrorIs(t, err, ErrNameRequired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sourceRepo := mocks.NewMockLeadSourceRepository(ctrl)
			spendRepo := mocks.NewMockLeadSourceSpendRepository(ctrl)
			tt.setup(sourceRepo)

			service := NewService(sourceRepo, spendRepo)
			source, err := service.UpdateLeadSource(tt.request)
			tt.validate(t, source, err)
		})
	}
}

func TestSaveSpend(t *testing.T) {
	const agencyID = "AGY001"

	tests := []struct {
		name     string
		request  *domain.SaveSpendRequest
		setup    func(spendRepo *mocks.MockLeadSourceSpendRepository)
		validate func(t *testing.T, spend *domain.LeadSourceSpend, err error)
	}{
		{
			name: "Upsert com mês normalizado para o primeiro dia",
			request: &domain.SaveSpendRequest{
				AgencyID:     agencyID,
				LeadSourceID: "SRC001",
				Month:        time.Date(2026, 6, 17, 14, 30, 0, 0, time.UTC),
				SpendCents:   250000,
			},
			setup: func(spendRepo *mocks.MockLeadSourceSpendRepository) {
				spendRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(spend *domain.LeadSourceSpend) error {
					assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), spend.Month)
					assert.Equal(t, int64(250000), spend.SpendCents)
					return nil
				})
			},
			validate: func(t *testing.T, spend *domain.LeadSourceSpend, err error) {
				assert.NoError(t, err)
				assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), spend.Month)
			},
		},
		{
			name: "Spend zero é válido",
			request: &domain.SaveSpendRequest{
				AgencyID:     agencyID,
				LeadSourceID: "SRC001",
				Month:        time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				SpendCents:   0,
			},
			setup: func(spendRepo *mocks.MockLeadSourceSpendRepository) {
				spendRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, spend *domain.LeadSourceSpend, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(0), spend.SpendCents)
			},
		},
		{
			name: "Spend negativo - erro de validação",
			request: &domain.SaveSpendRequest{
				AgencyID:     agencyID,
				LeadSourceID: "SRC001",
				Month:        time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				SpendCents:   -100,
			},
			setup: func(spendRepo *mocks.MockLeadSourceSpendRepository) {},
			validate: func(t *testing.T, spend *domain.LeadSourceSpend, err error) {
				assert.Nil(t, spend)
				assert.ErrorIs(t, err, ErrNegativeSpend)
			},
		},
		{
			name: "Mês ausente - erro de validação",
			request: &domain.SaveSpendRequest{
				AgencyID:     agencyID,
				LeadSourceID: "SRC001",
				SpendCents:   100,
			},
			setup: func(spendRepo *mocks.MockLeadSourceSpendRepository) {},
			validate: func(t *testing.T, spend *domain.LeadSourceSpend, err error) {
				assert.Nil(t, spend)
				assert.ErrorIs(t, err, ErrMonthRequired)
			},
		},
		{
			name: "Lead source ausente - erro de validação",
			request: &domain.SaveSpendRequest{
				AgencyID:   agencyID,
				Month:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				SpendCents: 100,
			},
			setup: func(spendRepo *mocks.MockLeadSourceSpendRepository) {},
			validate: func(t *testing.T, spend *domain.LeadSourceSpend, err error) {
				assert.Nil(t, spend)
				assert.ErrorIs(t, err, ErrSourceIDRequired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sourceRepo := mocks.NewMockLeadSourceRepository(ctrl)
			spendRepo := mocks.NewMockLeadSourceSpendRepository(ctrl)
			tt.setup(spendRepo)

			service := NewService(sourceRepo, spendRepo)
			spend, err := service.SaveSpend(tt.request)
			tt.validate(t, spend, err)
		})
	}
}

func TestListSpend(t *testing.T) {
	const agencyID = "AGY001"

	t.Run("Repassa a janela para o repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sourceRepo := mocks.NewMockLeadSourceRepository(ctrl)
		spendRepo := mocks.NewMockLeadSourceSpendRepository(ctrl)

		window := &domain.DateRange{
			Start: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		}
		expected := []*domain.LeadSourceSpend{
			{ID: "SPD001", AgencyID: agencyID, LeadSourceID: "SRC001", SpendCents: 100000},
		}
		spendRepo.EXPECT().ListByAgency(agencyID, window).Return(expected, nil)

		service := NewService(sourceRepo, spendRepo)
		spends, err := service.ListSpend(agencyID, window)

		assert.NoError(t, err)
		assert.Equal(t, expected, spends)
	})

	t.Run("Falha do banco - erro de operação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sourceRepo := mocks.NewMockLeadSourceRepository(ctrl)
		spendRepo := mocks.NewMockLeadSourceSpendRepository(ctrl)

		spendRepo.EXPECT().ListByAgency(agencyID, nil).Return(nil, errors.New("connection refused"))

		service := NewService(sourceRepo, spendRepo)
		spends, err := service.ListSpend(agencyID, nil)

		assert.Nil(t, spends)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
