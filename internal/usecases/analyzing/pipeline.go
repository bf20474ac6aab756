package analyzing

import (
	"github.com/vfg2006/agency-ops-api/internal/domain"
	"github.com/vfg2006/agency-ops-api/pkg/utils"
)

// sourceStats acumula as contagens do funil de uma origem de leads
type sourceStats struct {
	leadSourceID *string
	leads        int
	quotes       int
	sales        int
	premiumCents int64
}

// pipelineResult é a saída do agregador de funil do Pipeline Mode
type pipelineResult struct {
	summary          *domain.PipelineSummary
	premiumSoldCents int64
	bySource         map[string]*sourceStats
}

// sourceKey converte um lead_source_id opcional na chave de agrupamento.
// A chave vazia preserva o grupo "Unattributed".
func sourceKey(leadSourceID *string) string {
	if leadSourceID == nil {
		return ""
	}
	return *leadSourceID
}

// aggregatePipeline percorre todos os households uma única vez e classifica
// cada um em exatamente um bucket {open, quoted, sold} pelo status atual.
// Os buckets são mutuamente exclusivos e exaustivos: um household que não
// está cotado nem vendido conta como open, então open+quoted+sold sempre
// fecha com o total de leads.
func aggregatePipeline(households []*domain.Household) *pipelineResult {
	result := &pipelineResult{
		summary:  &domain.PipelineSummary{},
		bySource: make(map[string]*sourceStats),
	}

	for _, household := range households {
		result.summary.TotalLeads++

		stats := result.sourceStatsFor(household.LeadSourceID)
		stats.leads++

		switch household.Status {
		case domain.HouseholdStatusSold:
			result.summary.SoldHouseholds++

			// Totais cumulativos do funil: um household vendido também já foi cotado
			stats.quotes++
			stats.sales++

			premium := soldPremiumCents(household)
			result.premiumSoldCents += premium
			stats.premiumCents += premium

		case domain.HouseholdStatusQuoted:
			result.summary.QuotedHouseholds++
			stats.quotes++

		default:
			result.summary.OpenLeads++
		}
	}

	totalQuoted := result.summary.QuotedHouseholds + result.summary.SoldHouseholds
	result.summary.QuoteRate = utils.Percentage(totalQuoted, result.summary.TotalLeads)
	result.summary.CloseRate = utils.Percentage(result.summary.SoldHouseholds, totalQuoted)

	return result
}

func (r *pipelineResult) sourceStatsFor(leadSourceID *string) *sourceStats {
	key := sourceKey(leadSourceID)

	stats, ok := r.bySource[key]
	if !ok {
		stats = &sourceStats{leadSourceID: leadSourceID}
		r.bySource[key] = stats
	}

	return stats
}

// soldPremiumCents soma o prêmio de todas as vendas de um household vendido
func soldPremiumCents(household *domain.Household) int64 {
	var premium int64
	for _, sale := range household.Sales {
		premium += sale.PremiumCents
	}
	return premium
}
