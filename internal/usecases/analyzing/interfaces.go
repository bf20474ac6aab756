package analyzing

import (
	"github.com/vfg2006/agency-ops-api/internal/domain"
)

// Analyzer define a interface do engine de analytics de lead quality/ROI
type Analyzer interface {
	// GetRoiAnalytics calcula o relatório de ROI de uma agência. Um dateRange
	// nulo seleciona o Pipeline Mode (snapshot do funil por status atual);
	// um range concreto seleciona o Activity Mode (eventos dentro da janela).
	GetRoiAnalytics(agencyID string, dateRange *domain.DateRange) (*domain.RoiAnalytics, error)

	// GetProducerDetail calcula a visão detalhada de produção de um membro do
	// time (producerID nulo = produção não atribuída), resolvendo o conjunto
	// de households pelo modo de visão (quotedBy ou soldBy)
	GetProducerDetail(agencyID string, producerID *string, viewMode domain.ProducerViewMode, dateRange *domain.DateRange) (*domain.ProducerDetailData, error)

	// GetLatestSnapshot retorna o snapshot noturno mais recente do Pipeline
	// Mode da agência; nil quando o cron ainda não calculou nenhum
	GetLatestSnapshot(agencyID string) (*domain.AnalyticsSnapshot, error)
}
