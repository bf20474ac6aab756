package domain

// ProducerViewMode seleciona como o conjunto de households de um produtor é resolvido
type ProducerViewMode string

const (
	// ViewQuotedBy resolve os households pelas cotações criadas pelo produtor
	ViewQuotedBy ProducerViewMode = "quotedBy"
	// ViewSoldBy resolve os households pelas vendas fechadas pelo produtor
	ViewSoldBy ProducerViewMode = "soldBy"
)

// TrendGranularity indica o tamanho do bucket da série temporal
type TrendGranularity string

const (
	TrendWeekly  TrendGranularity = "weekly"
	TrendMonthly TrendGranularity = "monthly"
)

// ProducerHouseholdStats são os agregados de um household atribuído a um produtor.
// As cotações e vendas são totais do household, independente de quem as criou:
// o que se mede é a atividade completa de pipeline nos households que o
// produtor tocou.
type ProducerHouseholdStats struct {
	HouseholdID        string  `json:"household_id"`
	HouseholdName      string  `json:"household_name"`
	LeadSourceID       *string `json:"lead_source_id"`
	LeadSourceName     string  `json:"lead_source_name"`
	QuotedPolicies     int     `json:"quoted_policies"`
	QuotedItems        int     `json:"quoted_items"`
	QuotedPremiumCents int64   `json:"quoted_premium_cents"`
	SoldPolicies       int     `json:"sold_policies"`
	SoldItems          int     `json:"sold_items"`
	SoldPremiumCents   int64   `json:"sold_premium_cents"`
}

// ProducerSummary é o sumário da visão detalhada de um produtor
type ProducerSummary struct {
	QuotedHouseholds   int      `json:"quoted_households"`
	SoldHouseholds     int      `json:"sold_households"`
	QuotedPolicies     int      `json:"quoted_policies"`
	SoldPolicies       int      `json:"sold_policies"`
	QuotedPremiumCents int64    `json:"quoted_premium_cents"`
	SoldPremiumCents   int64    `json:"sold_premium_cents"`
	CloseRatio         *float64 `json:"close_ratio"` // nil quando não há households cotados
}

// ProducerBreakdownRow é uma linha de breakdown por lead source ou por tipo de produto
type ProducerBreakdownRow struct {
	Key                string   `json:"key"`
	QuotedHouseholds   int      `json:"quoted_households"`
	SoldHouseholds     int      `json:"sold_households"`
	QuotedPremiumCents int64    `json:"quoted_premium_cents"`
	SoldPremiumCents   int64    `json:"sold_premium_cents"`
	CloseRatio         *float64 `json:"close_ratio"`
}

// ProducerTrendRow é um bucket (semanal ou mensal) da série de tendência.
// Só existem linhas para períodos efetivamente observados.
type ProducerTrendRow struct {
	Period           string `json:"period"` // chave do período no formato 2006-01-02
	QuotedHouseholds int    `json:"quoted_households"`
	SoldHouseholds   int    `json:"sold_households"`
	SoldPremiumCents int64  `json:"sold_premium_cents"`
}

// ProducerDetailData é a resposta completa da visão detalhada de um produtor
type ProducerDetailData struct {
	ProducerID    *string                   `json:"producer_id"` // nil = produção não atribuída
	ViewMode      ProducerViewMode          `json:"view_mode"`
	Granularity   TrendGranularity          `json:"granularity"`
	Summary       *ProducerSummary          `json:"summary"`
	ByLeadSource  []*ProducerBreakdownRow   `json:"by_lead_source"`
	ByProductType []*ProducerBreakdownRow   `json:"by_product_type"`
	TrendData     []*ProducerTrendRow       `json:"trend_data"`
	Households    []*ProducerHouseholdStats `json:"households"`
	DateRange     *DateRange                `json:"date_range,omitempty"`
}
