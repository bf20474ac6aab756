package domain

import "time"

// AnalyticsSnapshot é o resultado do Pipeline Mode pré-calculado pelo cron
// noturno, para que a home do dashboard carregue sem recomputar o relatório
type AnalyticsSnapshot struct {
	ID         int64         `json:"id"`
	AgencyID   string        `json:"agency_id"`
	Analytics  *RoiAnalytics `json:"analytics"`
	ComputedAt time.Time     `json:"computed_at"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
