package analyzing

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-ops-api/internal/domain"
	"github.com/vfg2006/agency-ops-api/pkg/utils"
)

// trendWeeklyMaxDays é o limite da janela, em dias, até o qual a série de
// tendência usa buckets semanais; acima disso os buckets são mensais
const trendWeeklyMaxDays = 90

// GetProducerDetail calcula a visão detalhada de produção de um membro do time.
// O conjunto de households é resolvido pelas cotações (quotedBy) ou vendas
// (soldBy) do produtor; os agregados por household cobrem TODAS as cotações e
// vendas de cada um, independente de quem as criou — o que se mede é a
// atividade completa de pipeline nos households que o produtor tocou.
func (s *Service) GetProducerDetail(
	agencyID string,
	producerID *string,
	viewMode domain.ProducerViewMode,
	dateRange *domain.DateRange,
) (*domain.ProducerDetailData, error) {
	var (
		householdIDs []string
		err          error
	)

	switch viewMode {
	case domain.ViewQuotedBy:
		householdIDs, err = s.quoteRepo.ListHouseholdIDsByProducer(agencyID, producerID, dateRange)
	case domain.ViewSoldBy:
		householdIDs, err = s.saleRepo.ListHouseholdIDsByProducer(agencyID, producerID, dateRange)
	default:
		return nil, fmt.Errorf("modo de visão inválido: %s", viewMode)
	}
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"agency_id": agencyID,
			"view_mode": viewMode,
		}).Error("Erro ao resolver households do produtor")
		return nil, err
	}

	households, err := s.householdRepo.GetByIDs(householdIDs)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", agencyID).Error("Erro ao buscar households do produtor")
		return nil, err
	}

	sourceNames, err := s.sourceNames(agencyID)
	if err != nil {
		return nil, err
	}

	granularity := trendGranularityFor(dateRange)

	data := &domain.ProducerDetailData{
		ProducerID:    producerID,
		ViewMode:      viewMode,
		Granularity:   granularity,
		Summary:       &domain.ProducerSummary{},
		ByLeadSource:  make([]*domain.ProducerBreakdownRow, 0),
		ByProductType: make([]*domain.ProducerBreakdownRow, 0),
		TrendData:     make([]*domain.ProducerTrendRow, 0),
		Households:    make([]*domain.ProducerHouseholdStats, 0, len(households)),
		DateRange:     dateRange,
	}

	sourceRows := newBreakdownAccumulator()
	productRows := newBreakdownAccumulator()
	trend := newTrendAccumulator(granularity, dateRange)

	for _, household := range households {
		stats := householdStats(household, sourceNames)
		data.Households = append(data.Households, stats)

		data.Summary.QuotedPolicies += stats.QuotedPolicies
		data.Summary.SoldPolicies += stats.SoldPolicies
		data.Summary.QuotedPremiumCents += stats.QuotedPremiumCents
		data.Summary.SoldPremiumCents += stats.SoldPremiumCents

		if stats.QuotedPolicies > 0 {
			data.Summary.QuotedHouseholds++
		}
		if stats.SoldPolicies > 0 {
			data.Summary.SoldHouseholds++
		}

		sourceRows.addHousehold(stats.LeadSourceName, stats)

		for _, quote := range household.Quotes {
			productRows.addQuote(quote.ProductType, household.ID, quote.PremiumCents)
			trend.addQuote(quote.QuoteDate, household.ID)
		}

		for _, sale := range household.Sales {
			productRows.addSale(sale.ProductType, household.ID, sale.PremiumCents)
			trend.addSale(sale.SaleDate, household.ID, sale.PremiumCents)
		}
	}

	data.Summary.CloseRatio = utils.SafeRatio(
		float64(data.Summary.SoldHouseholds)*100,
		float64(data.Summary.QuotedHouseholds),
	)

	data.ByLeadSource = sourceRows.rows()
	data.ByProductType = productRows.rows()
	data.TrendData = trend.rows()

	return data, nil
}

// trendGranularityFor escolhe buckets semanais para janelas de até 90 dias e
// mensais para janelas maiores ou ausentes
func trendGranularityFor(dateRange *domain.DateRange) domain.TrendGranularity {
	if dateRange != nil && dateRange.Days() <= trendWeeklyMaxDays {
		return domain.TrendWeekly
	}
	return domain.TrendMonthly
}

// householdStats calcula os agregados de cotação e venda de um household
func householdStats(household *domain.Household, sourceNames map[string]string) *domain.ProducerHouseholdStats {
	stats := &domain.ProducerHouseholdStats{
		HouseholdID:    household.ID,
		HouseholdName:  household.Name,
		LeadSourceID:   household.LeadSourceID,
		LeadSourceName: domain.SourceName(household.LeadSourceID, sourceNames),
	}

	for _, quote := range household.Quotes {
		stats.QuotedPolicies++
		stats.QuotedItems += quote.ItemsQuoted
		stats.QuotedPremiumCents += quote.PremiumCents
	}

	for _, sale := range household.Sales {
		stats.SoldPolicies += sale.PoliciesSold
		stats.SoldItems += sale.ItemsSold
		stats.SoldPremiumCents += sale.PremiumCents
	}

	return stats
}

// breakdownAccumulator agrupa households por uma chave (lead source ou tipo de
// produto) deduplicando os households cotados/vendidos de cada grupo
type breakdownAccumulator struct {
	byKey  map[string]*domain.ProducerBreakdownRow
	quoted map[string]map[string]struct{}
	sold   map[string]map[string]struct{}
}

func newBreakdownAccumulator() *breakdownAccumulator {
	return &breakdownAccumulator{
		byKey:  make(map[string]*domain.ProducerBreakdownRow),
		quoted: make(map[string]map[string]struct{}),
		sold:   make(map[string]map[string]struct{}),
	}
}

func (b *breakdownAccumulator) rowFor(key string) *domain.ProducerBreakdownRow {
	row, ok := b.byKey[key]
	if !ok {
		row = &domain.ProducerBreakdownRow{Key: key}
		b.byKey[key] = row
		b.quoted[key] = make(map[string]struct{})
		b.sold[key] = make(map[string]struct{})
	}
	return row
}

// addHousehold adiciona os agregados inteiros de um household ao grupo da chave
// (usado no breakdown por lead source, onde o household pertence a um único grupo)
func (b *breakdownAccumulator) addHousehold(key string, stats *domain.ProducerHouseholdStats) {
	row := b.rowFor(key)

	row.QuotedPremiumCents += stats.QuotedPremiumCents
	row.SoldPremiumCents += stats.SoldPremiumCents

	if stats.QuotedPolicies > 0 {
		row.QuotedHouseholds++
	}
	if stats.SoldPolicies > 0 {
		row.SoldHouseholds++
	}
}

// addQuote adiciona uma cotação ao grupo da chave, contando o household uma
// única vez (usado no breakdown por tipo de produto, onde um household pode
// aparecer em vários grupos)
func (b *breakdownAccumulator) addQuote(key, householdID string, premiumCents int64) {
	row := b.rowFor(key)
	row.QuotedPremiumCents += premiumCents

	if _, seen := b.quoted[key][householdID]; !seen {
		b.quoted[key][householdID] = struct{}{}
		row.QuotedHouseholds++
	}
}

func (b *breakdownAccumulator) addSale(key, householdID string, premiumCents int64) {
	row := b.rowFor(key)
	row.SoldPremiumCents += premiumCents

	if _, seen := b.sold[key][householdID]; !seen {
		b.sold[key][householdID] = struct{}{}
		row.SoldHouseholds++
	}
}

// rows fecha os close ratios e retorna as linhas ordenadas por prêmio vendido
// decrescente, com desempate pela chave
func (b *breakdownAccumulator) rows() []*domain.ProducerBreakdownRow {
	rows := make([]*domain.ProducerBreakdownRow, 0, len(b.byKey))

	for _, row := range b.byKey {
		row.CloseRatio = utils.SafeRatio(
			float64(row.SoldHouseholds)*100,
			float64(row.QuotedHouseholds),
		)
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SoldPremiumCents != rows[j].SoldPremiumCents {
			return rows[i].SoldPremiumCents > rows[j].SoldPremiumCents
		}
		return rows[i].Key < rows[j].Key
	})

	return rows
}

// trendAccumulator agrupa cotações e vendas em buckets de período (semana ISO
// começando na segunda-feira, ou primeiro dia do mês), deduplicando os
// households de cada bucket. Só períodos efetivamente observados geram linha.
type trendAccumulator struct {
	granularity domain.TrendGranularity
	dateRange   *domain.DateRange
	byPeriod    map[string]*domain.ProducerTrendRow
	quoted      map[string]map[string]struct{}
	sold        map[string]map[string]struct{}
}

func newTrendAccumulator(granularity domain.TrendGranularity, dateRange *domain.DateRange) *trendAccumulator {
	return &trendAccumulator{
		granularity: granularity,
		dateRange:   dateRange,
		byPeriod:    make(map[string]*domain.ProducerTrendRow),
		quoted:      make(map[string]map[string]struct{}),
		sold:        make(map[string]map[string]struct{}),
	}
}

func (t *trendAccumulator) periodKey(date time.Time) string {
	if t.granularity == domain.TrendWeekly {
		return utils.StartOfISOWeek(date).Format(time.DateOnly)
	}
	return utils.StartOfMonth(date).Format(time.DateOnly)
}

// inWindow limita a série à janela do relatório quando ela existe: os
// agregados por household cobrem o histórico inteiro, mas a tendência só
// mostra os eventos do período consultado
func (t *trendAccumulator) inWindow(date time.Time) bool {
	return t.dateRange == nil || t.dateRange.Contains(date)
}

func (t *trendAccumulator) rowFor(period string) *domain.ProducerTrendRow {
	row, ok := t.byPeriod[period]
	if !ok {
		row = &domain.ProducerTrendRow{Period: period}
		t.byPeriod[period] = row
		t.quoted[period] = make(map[string]struct{})
		t.sold[period] = make(map[string]struct{})
	}
	return row
}

func (t *trendAccumulator) addQuote(quoteDate time.Time, householdID string) {
	if !t.inWindow(quoteDate) {
		return
	}

	period := t.periodKey(quoteDate)
	row := t.rowFor(period)

	if _, seen := t.quoted[period][householdID]; !seen {
		t.quoted[period][householdID] = struct{}{}
		row.QuotedHouseholds++
	}
}

func (t *trendAccumulator) addSale(saleDate time.Time, householdID string, premiumCents int64) {
	if !t.inWindow(saleDate) {
		return
	}

	period := t.periodKey(saleDate)
	row := t.rowFor(period)
	row.SoldPremiumCents += premiumCents

	if _, seen := t.sold[period][householdID]; !seen {
		t.sold[period][householdID] = struct{}{}
		row.SoldHouseholds++
	}
}

func (t *trendAccumulator) rows() []*domain.ProducerTrendRow {
	rows := make([]*domain.ProducerTrendRow, 0, len(t.byPeriod))
	for _, row := range t.byPeriod {
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Period < rows[j].Period
	})

	return rows
}
