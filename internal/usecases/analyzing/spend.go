package analyzing

import (
	"sort"

	"github.com/vfg2006/agency-ops-api/internal/domain"
	"github.com/vfg2006/agency-ops-api/pkg/utils"
)

// joinSpend agrupa as linhas mensais de spend por origem e as junta com as
// contagens do funil/atividade, produzindo as linhas de ROI por lead source
// ordenadas por prêmio decrescente. Origens com spend mas sem atividade
// também ganham linha, para que investimento sem retorno fique visível.
//
// Convenções de aritmética degenerada: roi e costPerSale viram nil quando o
// denominador é zero, nunca 0, NaN ou Inf. As taxas do funil (calculadas nos
// agregadores) usam a convenção oposta, de zero: os chamadores formatam os
// dois casos de forma diferente.
func joinSpend(
	bySource map[string]*sourceStats,
	spends []*domain.LeadSourceSpend,
	sourceNames map[string]string,
	commissionRate float64,
) ([]*domain.LeadSourceRoiRow, int64) {
	spendBySource := make(map[string]int64)
	var totalSpendCents int64

	for _, spend := range spends {
		spendBySource[spend.LeadSourceID] += spend.SpendCents
		totalSpendCents += spend.SpendCents
	}

	// União das chaves: atividade sem spend e spend sem atividade
	keys := make(map[string]*string, len(bySource))
	for key, stats := range bySource {
		keys[key] = stats.leadSourceID
	}
	for key := range spendBySource {
		if _, ok := keys[key]; !ok {
			sourceID := key
			keys[sourceID] = &sourceID
		}
	}

	rows := make([]*domain.LeadSourceRoiRow, 0, len(keys))

	for key, sourceID := range keys {
		stats, ok := bySource[key]
		if !ok {
			stats = &sourceStats{leadSourceID: sourceID}
		}

		spendCents := spendBySource[key]
		commissionEarnedCents := utils.ApplyRate(stats.premiumCents, commissionRate)

		rows = append(rows, &domain.LeadSourceRoiRow{
			LeadSourceID:          stats.leadSourceID,
			LeadSourceName:        domain.SourceName(stats.leadSourceID, sourceNames),
			SpendCents:            spendCents,
			TotalLeads:            stats.leads,
			TotalQuotes:           stats.quotes,
			TotalSales:            stats.sales,
			PremiumCents:          stats.premiumCents,
			CommissionEarnedCents: commissionEarnedCents,
			Roi:                   utils.SafeRatio(float64(commissionEarnedCents), float64(spendCents)),
			CostPerSaleCents:      utils.SafeRatioCents(spendCents, stats.sales),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PremiumCents != rows[j].PremiumCents {
			return rows[i].PremiumCents > rows[j].PremiumCents
		}
		return rows[i].LeadSourceName < rows[j].LeadSourceName
	})

	return rows, totalSpendCents
}

// fillSpendSummary completa o sumário com os campos derivados do spend
func fillSpendSummary(summary *domain.RoiSummary, totalSpendCents int64) {
	summary.TotalSpendCents = totalSpendCents
	summary.CommissionEarnedCents = utils.ApplyRate(summary.PremiumSoldCents, summary.CommissionRate)
	summary.OverallRoi = utils.SafeRatio(float64(summary.CommissionEarnedCents), float64(totalSpendCents))
}
