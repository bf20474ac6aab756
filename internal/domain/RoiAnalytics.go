package domain

import "time"

// AnalyticsMode indica qual variante de cálculo foi executada
type AnalyticsMode string

const (
	// ModePipeline é o snapshot do funil por status atual, sem filtro de data
	ModePipeline AnalyticsMode = "pipeline"
	// ModeActivity é o relatório de eventos ocorridos dentro de uma janela de datas
	ModeActivity AnalyticsMode = "activity"
)

// DateRange é a janela de datas opcional de um relatório.
// Um range nulo seleciona o Pipeline Mode; um range concreto, o Activity Mode.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days retorna a duração da janela em dias inteiros
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Contains verifica se uma data está dentro da janela (limites inclusivos)
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ModeFor classifica a janela de datas: nula => Pipeline, concreta => Activity
func ModeFor(dateRange *DateRange) AnalyticsMode {
	if dateRange == nil {
		return ModePipeline
	}
	return ModeActivity
}

// PipelineSummary carrega os campos exclusivos do Pipeline Mode.
// Os três buckets do funil (open/quoted/sold) são mutuamente exclusivos e
// exaustivos sobre o status atual: nenhum household é contado duas vezes.
type PipelineSummary struct {
	TotalLeads       int     `json:"total_leads"`
	OpenLeads        int     `json:"open_leads"`
	QuotedHouseholds int     `json:"quoted_households"`
	SoldHouseholds   int     `json:"sold_households"`
	QuoteRate        float64 `json:"quote_rate"` // 0 quando total_leads == 0
	CloseRate        float64 `json:"close_rate"` // 0 quando o total de cotados == 0
}

// ActivitySummary carrega os campos exclusivos do Activity Mode.
// Não há quote_rate/close_rate aqui: as três contagens são atividades
// independentes filtradas por data, não um funil de coorte.
type ActivitySummary struct {
	LeadsReceived int `json:"leads_received"`
	QuotesCreated int `json:"quotes_created"` // households distintos com cotação na janela
	SalesClosed   int `json:"sales_closed"`   // households distintos com venda na janela
}

// RoiSummary é o sumário do relatório de ROI. Exatamente um dos campos
// Pipeline/Activity é preenchido, conforme o modo selecionado na entrada.
type RoiSummary struct {
	Mode                  AnalyticsMode    `json:"mode"`
	Pipeline              *PipelineSummary `json:"pipeline,omitempty"`
	Activity              *ActivitySummary `json:"activity,omitempty"`
	PremiumSoldCents      int64            `json:"premium_sold_cents"`
	CommissionRate        float64          `json:"commission_rate"`
	CommissionEarnedCents int64            `json:"commission_earned_cents"`
	TotalSpendCents       int64            `json:"total_spend_cents"`
	OverallRoi            *float64         `json:"overall_roi"` // nil quando o spend total é zero
}

// LeadSourceRoiRow é a linha de ROI de uma origem de leads
type LeadSourceRoiRow struct {
	LeadSourceID          *string  `json:"lead_source_id"`
	LeadSourceName        string   `json:"lead_source_name"`
	SpendCents            int64    `json:"spend_cents"`
	TotalLeads            int      `json:"total_leads"`
	TotalQuotes           int      `json:"total_quotes"`
	TotalSales            int      `json:"total_sales"`
	PremiumCents          int64    `json:"premium_cents"`
	CommissionEarnedCents int64    `json:"commission_earned_cents"`
	Roi                   *float64 `json:"roi"`                 // nil quando spend_cents == 0
	CostPerSaleCents      *int64   `json:"cost_per_sale_cents"` // nil quando total_sales == 0
}

// RoiAnalytics é a resposta completa do relatório de ROI
type RoiAnalytics struct {
	Summary      *RoiSummary         `json:"summary"`
	ByLeadSource []*LeadSourceRoiRow `json:"by_lead_source"`
	DateRange    *DateRange          `json:"date_range,omitempty"`
}
