package domain

import "time"

// Quote representa uma cotação feita para um household
type Quote struct {
	ID           string    `json:"id"`
	HouseholdID  string    `json:"household_id"`
	QuoteDate    time.Time `json:"quote_date"`
	PremiumCents int64     `json:"premium_cents"`
	ItemsQuoted  int       `json:"items_quoted"`
	ProductType  string    `json:"product_type"`
	QuotedBy     *string   `json:"quoted_by"` // nil = não atribuída a um produtor
	CreatedAt    time.Time `json:"created_at"`
}

// QuoteActivity é uma linha de cotação enriquecida com a origem do household,
// usada pelo agregador de atividade para agrupar por lead source
type QuoteActivity struct {
	Quote
	LeadSourceID *string `json:"lead_source_id"`
}
