package domain

import "time"

// AgencySettings guarda as configurações por agência.
// CommissionRate é um percentual único configurado por agência: multiplica o
// prêmio somado para estimar a comissão ganha, não é um fato persistido por venda.
type AgencySettings struct {
	AgencyID       string    `json:"agency_id"`
	CommissionRate float64   `json:"commission_rate"` // percentual, ex: 12.5
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
