package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-ops-api/internal/domain"
)

func float64Ptr(f float64) *float64 {
	return &f
}

func int64Ptr(i int64) *int64 {
	return &i
}

func TestJoinSpend(t *testing.T) {
	googleID := stringPtr("SRC001")
	referralID := stringPtr("SRC002")

	sourceNames := map[string]string{
		"SRC001": "Google Ads",
		"SRC002": "Referral",
	}

	month := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		bySource       map[string]*sourceStats
		spends         []*domain.LeadSourceSpend
		commissionRate float64
		validate       func(t *testing.T, rows []*domain.LeadSourceRoiRow, totalSpendCents int64)
	}{
		{
			name: "ROI por origem - comissão sobre o prêmio dividida pelo spend",
			bySource: map[string]*sourceStats{
				"SRC001": {leadSourceID: googleID, leads: 10, quotes: 4, sales: 2, premiumCents: 100000},
			},
			spends: []*domain.LeadSourceSpend{
				{LeadSourceID: "SRC001", Month: month, SpendCents: 12500},
			},
			commissionRate: 10.0,
			validate: func(t *testing.T, rows []*domain.LeadSourceRoiRow, totalSpendCents int64) {
				assert.Len(t, rows, 1)
				row := rows[0]
				assert.Equal(t, "Google Ads", row.LeadSourceName)
				assert.Equal(t, int64(12500), row.SpendCents)
				assert.Equal(t, int64(10000), row.CommissionEarnedCents)
				assert.Equal(t, float64Ptr(0.8), row.Roi)
				assert.Equal(t, int64Ptr(6250), row.CostPerSaleCents)
				assert.Equal(t, int64(12500), totalSpendCents)
			},
		},
		{
			name: "Spend zero deixa roi nil, vendas zero deixam costPerSale nil",
			bySource: map[string]*sourceStats{
				"SRC001": {leadSourceID: googleID, leads: 5, quotes: 1, sales: 0, premiumCents: 0},
			},
			commissionRate: 12.0,
			validate: func(t *testing.T, rows []*domain.LeadSourceRoiRow, totalSpendCents int64) {
				assert.Len(t, rows, 1)
				assert.Nil(t, rows[0].Roi)
				assert.Nil(t, rows[0].CostPerSaleCents)
				assert.Equal(t, int64(0), totalSpendCents)
			},
		},
		{
			name:     "Origem com spend mas sem atividade também ganha linha",
			bySource: map[string]*sourceStats{},
			spends: []*domain.LeadSourceSpend{
				{LeadSourceID: "SRC002", Month: month, SpendCents: 30000},
				{LeadSourceID: "SRC002", Month: month.AddDate(0, 1, 0), SpendCents: 20000},
			},
			commissionRate: 12.0,
			validate: func(t *testing.T, rows []*domain.LeadSourceRoiRow, totalSpendCents int64) {
				assert.Len(t, rows, 1)
				row := rows[0]
				assert.Equal(t, "Referral", row.LeadSourceName)

				// Meses da mesma origem somam numa linha só
				assert.Equal(t, int64(50000), row.SpendCents)
				assert.Equal(t, 0, row.TotalLeads)
				assert.Equal(t, float64Ptr(0.0), row.Roi)
				assert.Nil(t, row.CostPerSaleCents)
				assert.Equal(t, int64(50000), totalSpendCents)
			},
		},
		{
			name: "Ordenação por prêmio decrescente com desempate por nome",
			bySource: map[string]*sourceStats{
				"SRC001": {leadSourceID: googleID, premiumCents: 50000},
				"SRC002": {leadSourceID: referralID, premiumCents: 90000},
				"":       {leadSourceID: nil, premiumCents: 50000},
			},
			commissionRate: 12.0,
			validate: func(t *testing.T, rows []*domain.LeadSourceRoiRow, totalSpendCents int64) {
				assert.Len(t, rows, 3)
				assert.Equal(t, "Referral", rows[0].LeadSourceName)
				assert.Equal(t, "Google Ads", rows[1].LeadSourceName)
				assert.Equal(t, "Unattributed", rows[2].LeadSourceName)
			},
		},
		{
			name: "Origem sem registro no mapa de nomes vira Unknown",
			bySource: map[string]*sourceStats{
				"SRC999": {leadSourceID: stringPtr("SRC999"), leads: 1},
			},
			commissionRate: 12.0,
			validate: func(t *testing.T, rows []*domain.LeadSourceRoiRow, totalSpendCents int64) {
				assert.Len(t, rows, 1)
				assert.Equal(t, domain.LeadSourceUnknown, rows[0].LeadSourceName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, totalSpendCents := joinSpend(tt.bySource, tt.spends, sourceNames, tt.commissionRate)
			tt.validate(t, rows, totalSpendCents)
		})
	}
}

func TestFillSpendSummary(t *testing.T) {
	t.Run("Cenário completo - roi geral de 0.8", func(t *testing.T) {
		summary := &domain.RoiSummary{
			PremiumSoldCents: 100000,
			CommissionRate:   10.0,
		}

		fillSpendSummary(summary, 12500)

		assert.Equal(t, int64(12500), summary.TotalSpendCents)
		assert.Equal(t, int64(10000), summary.CommissionEarnedCents)
		assert.Equal(t, float64Ptr(0.8), summary.OverallRoi)
	})

	t.Run("Sem spend - roi geral nil", func(t *testing.T) {
		summary := &domain.RoiSummary{
			PremiumSoldCents: 100000,
			CommissionRate:   12.0,
		}

		fillSpendSummary(summary, 0)

		assert.Equal(t, int64(0), summary.TotalSpendCents)
		assert.Equal(t, int64(12000), summary.CommissionEarnedCents)
		assert.Nil(t, summary.OverallRoi)
	})
}
