// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// HouseholdStatus representa o status atual de um household no funil
type HouseholdStatus string

const (
	HouseholdStatusLead   HouseholdStatus = "lead"
	HouseholdStatusQuoted HouseholdStatus = "quoted"
	HouseholdStatusSold   HouseholdStatus = "sold"
	HouseholdStatusLost   HouseholdStatus = "lost"
)

// Household representa um lead/cliente acompanhado pelo funil lead -> quote -> sale.
// Um household tem no máximo um status atual, mas pode acumular histórico de
// quotes e sales de qualquer status anterior.
type Household struct {
	ID               string          `json:"id"`
	AgencyID         string          `json:"agency_id"`
	Name             string          `json:"name"`
	Status           HouseholdStatus `json:"status"`
	LeadSourceID     *string         `json:"lead_source_id"` // nil = "Unattributed"
	LeadReceivedDate *time.Time      `json:"lead_received_date"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	Quotes           []*Quote        `json:"quotes"`
	Sales            []*Sale         `json:"sales"`
}

// ReceivedDate retorna a data em que o lead foi recebido, com fallback
// para a data de criação quando lead_received_date é nulo
func (h *Household) ReceivedDate() time.Time {
	if h.LeadReceivedDate != nil {
		return *h.LeadReceivedDate
	}
	return h.CreatedAt
}
