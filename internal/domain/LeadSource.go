package domain

import "time"

// Rótulos sentinela para origens sem referência resolvida
const (
	LeadSourceUnattributed = "Unattributed" // household sem lead_source_id
	LeadSourceUnknown      = "Unknown"      // lead_source_id sem registro correspondente
)

// LeadSource representa um canal/fornecedor de marketing de onde um household se originou
type LeadSource struct {
	ID        string    `json:"id"`
	AgencyID  string    `json:"agency_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeadSourceSpend é um agregado mensal de investimento de marketing em centavos,
// chaveado por lead source e mês calendário
type LeadSourceSpend struct {
	ID           string    `json:"id"`
	AgencyID     string    `json:"agency_id"`
	LeadSourceID string    `json:"lead_source_id"`
	Month        time.Time `json:"month"` // sempre o primeiro dia do mês
	SpendCents   int64     `json:"spend_cents"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateLeadSourceRequest é o payload de criação de um lead source
type CreateLeadSourceRequest struct {
	AgencyID string `json:"agency_id"`
	Name     string `json:"name"`
}

// UpdateLeadSourceRequest é o payload de atualização de um lead source
type UpdateLeadSourceRequest struct {
	ID       string  `json:"id"`
	AgencyID string  `json:"agency_id"`
	Name     *string `json:"name,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// SaveSpendRequest é o payload de upsert do spend mensal de um lead source
type SaveSpendRequest struct {
	AgencyID     string    `json:"agency_id"`
	LeadSourceID string    `json:"lead_source_id"`
	Month        time.Time `json:"month"`
	SpendCents   int64     `json:"spend_cents"`
}

// SourceName resolve o nome de exibição de uma origem a partir do mapa id -> nome.
// Origens nulas viram "Unattributed" e ids sem registro viram "Unknown",
// nunca falhando o cálculo inteiro por dado de referência ausente.
func SourceName(leadSourceID *string, namesByID map[string]string) string {
	if leadSourceID == nil {
		return LeadSourceUnattributed
	}

	if name, ok := namesByID[*leadSourceID]; ok {
		return name
	}

	return LeadSourceUnknown
}
