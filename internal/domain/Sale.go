package domain

import "time"

// Sale representa uma venda fechada para um household
type Sale struct {
	ID           string    `json:"id"`
	HouseholdID  string    `json:"household_id"`
	SaleDate     time.Time `json:"sale_date"`
	PremiumCents int64     `json:"premium_cents"`
	ItemsSold    int       `json:"items_sold"`
	PoliciesSold int       `json:"policies_sold"`
	ProductType  string    `json:"product_type"`
	SoldBy       *string   `json:"sold_by"` // nil = não atribuída a um produtor
	CreatedAt    time.Time `json:"created_at"`
}

// SaleActivity é uma linha de venda enriquecida com a origem do household,
// usada pelo agregador de atividade para agrupar por lead source
type SaleActivity struct {
	Sale
	LeadSourceID *string `json:"lead_source_id"`
}
