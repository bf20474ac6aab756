package analyzing

import (
	"github.com/vfg2006/agency-ops-api/internal/domain"
)

// activityResult é a saída do agregador do Activity Mode
type activityResult struct {
	summary          *domain.ActivitySummary
	premiumSoldCents int64
	bySource         map[string]*sourceStats
}

// aggregateActivity conta os três estágios de atividade dentro da janela.
// Leads contam por linha; cotações e vendas deduplicam por household: um
// household cotado duas vezes na janela conta uma vez em quotesCreated, e o
// mesmo vale para salesClosed, tanto no sumário quanto por origem. O prêmio
// vendido NÃO é deduplicado: cada linha de venda na janela contribui.
//
// quoteRate e closeRate não existem neste modo: as três contagens são
// atividades independentes filtradas por data, não um funil de coorte.
func aggregateActivity(
	leads []*domain.Household,
	quotes []*domain.QuoteActivity,
	sales []*domain.SaleActivity,
	dateRange domain.DateRange,
) *activityResult {
	result := &activityResult{
		summary:  &domain.ActivitySummary{},
		bySource: make(map[string]*sourceStats),
	}

	// A query de leads combina lead_received_date e created_at num OR amplo;
	// o refinamento do fallback é refeito aqui em memória, com limites
	// inclusivos nas duas pontas da janela
	for _, lead := range leads {
		if !dateRange.Contains(lead.ReceivedDate()) {
			continue
		}

		result.summary.LeadsReceived++
		result.sourceStatsFor(lead.LeadSourceID).leads++
	}

	quotedHouseholds := make(map[string]struct{})
	quotedBySource := make(map[string]map[string]struct{})

	for _, quote := range quotes {
		if _, seen := quotedHouseholds[quote.HouseholdID]; !seen {
			quotedHouseholds[quote.HouseholdID] = struct{}{}
			result.summary.QuotesCreated++
		}

		key := sourceKey(quote.LeadSourceID)
		if _, ok := quotedBySource[key]; !ok {
			quotedBySource[key] = make(map[string]struct{})
		}

		if _, seen := quotedBySource[key][quote.HouseholdID]; !seen {
			quotedBySource[key][quote.HouseholdID] = struct{}{}
			result.sourceStatsFor(quote.LeadSourceID).quotes++
		}
	}

	soldHouseholds := make(map[string]struct{})
	soldBySource := make(map[string]map[string]struct{})

	for _, sale := range sales {
		result.premiumSoldCents += sale.PremiumCents
		result.sourceStatsFor(sale.LeadSourceID).premiumCents += sale.PremiumCents

		if _, seen := soldHouseholds[sale.HouseholdID]; !seen {
			soldHouseholds[sale.HouseholdID] = struct{}{}
			result.summary.SalesClosed++
		}

		key := sourceKey(sale.LeadSourceID)
		if _, ok := soldBySource[key]; !ok {
			soldBySource[key] = make(map[string]struct{})
		}

		if _, seen := soldBySource[key][sale.HouseholdID]; !seen {
			soldBySource[key][sale.HouseholdID] = struct{}{}
			result.sourceStatsFor(sale.LeadSourceID).sales++
		}
	}

	return result
}

func (r *activityResult) sourceStatsFor(leadSourceID *string) *sourceStats {
	key := sourceKey(leadSourceID)

	stats, ok := r.bySource[key]
	if !ok {
		stats = &sourceStats{leadSourceID: leadSourceID}
		r.bySource[key] = stats
	}

	return stats
}
