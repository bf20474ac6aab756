package analyzing

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-ops-api/infrastructure/repository"
	"github.com/vfg2006/agency-ops-api/internal/config"
	"github.com/vfg2006/agency-ops-api/internal/domain"
)

// Service implementa o Analyzer sobre os repositórios da fonte de dados.
// Cada chamada monta seus próprios mapas e sets locais: não há estado mutável
// compartilhado entre invocações concorrentes.
type Service struct {
	cfg            *config.Config
	householdRepo  repository.HouseholdRepository
	quoteRepo      repository.QuoteRepository
	saleRepo       repository.SaleRepository
	leadSourceRepo repository.LeadSourceRepository
	spendRepo      repository.LeadSourceSpendRepository
	settingsRepo   repository.AgencySettingsRepository
	snapshotRepo   repository.AnalyticsSnapshotRepository
}

// NewService cria uma nova instância do engine de analytics
func NewService(
	cfg *config.Config,
	householdRepo repository.HouseholdRepository,
	quoteRepo repository.QuoteRepository,
	saleRepo repository.SaleRepository,
	leadSourceRepo repository.LeadSourceRepository,
	spendRepo repository.LeadSourceSpendRepository,
	settingsRepo repository.AgencySettingsRepository,
	snapshotRepo repository.AnalyticsSnapshotRepository,
) Analyzer {
	return &Service{
		cfg:            cfg,
		householdRepo:  householdRepo,
		quoteRepo:      quoteRepo,
		saleRepo:       saleRepo,
		leadSourceRepo: leadSourceRepo,
		spendRepo:      spendRepo,
		settingsRepo:   settingsRepo,
		snapshotRepo:   snapshotRepo,
	}
}

// GetLatestSnapshot retorna o snapshot pré-calculado mais recente da agência
func (s *Service) GetLatestSnapshot(agencyID string) (*domain.AnalyticsSnapshot, error) {
	snapshot, err := s.snapshotRepo.GetLatestByAgency(agencyID)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", agencyID).Error("Erro ao buscar snapshot de analytics")
		return nil, err
	}

	return snapshot, nil
}

// GetRoiAnalytics calcula o relatório de ROI. O modo é decidido uma única vez
// aqui na entrada: cada variante tem sua própria função de agregação, com os
// campos da outra variante ficando no valor zero/nulo.
func (s *Service) GetRoiAnalytics(agencyID string, dateRange *domain.DateRange) (*domain.RoiAnalytics, error) {
	commissionRate, err := s.commissionRate(agencyID)
	if err != nil {
		return nil, err
	}

	sourceNames, err := s.sourceNames(agencyID)
	if err != nil {
		return nil, err
	}

	switch domain.ModeFor(dateRange) {
	case domain.ModeActivity:
		return s.activityAnalytics(agencyID, *dateRange, commissionRate, sourceNames)
	default:
		return s.pipelineAnalytics(agencyID, commissionRate, sourceNames)
	}
}

// pipelineAnalytics executa o Pipeline Mode: snapshot do funil por status
// atual, sem filtro de data. A busca de households e a de spend são
// independentes e rodam em paralelo.
func (s *Service) pipelineAnalytics(agencyID string, commissionRate float64, sourceNames map[string]string) (*domain.RoiAnalytics, error) {
	var (
		households    []*domain.Household
		spends        []*domain.LeadSourceSpend
		householdsErr error
		spendErr      error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		households, householdsErr = s.householdRepo.ListByAgency(agencyID)
	}()

	go func() {
		defer wg.Done()
		spends, spendErr = s.spendRepo.ListByAgency(agencyID, nil)
	}()

	wg.Wait()

	if householdsErr != nil {
		logrus.WithError(householdsErr).WithField("agency_id", agencyID).Error("Erro ao buscar households da agência")
		return nil, householdsErr
	}

	if spendErr != nil {
		logrus.WithError(spendErr).WithField("agency_id", agencyID).Error("Erro ao buscar spend da agência")
		return nil, spendErr
	}

	funnel := aggregatePipeline(households)

	rows, totalSpendCents := joinSpend(funnel.bySource, spends, sourceNames, commissionRate)

	summary := &domain.RoiSummary{
		Mode:             domain.ModePipeline,
		Pipeline:         funnel.summary,
		PremiumSoldCents: funnel.premiumSoldCents,
		CommissionRate:   commissionRate,
	}
	fillSpendSummary(summary, totalSpendCents)

	logrus.WithFields(logrus.Fields{
		"agency_id":   agencyID,
		"total_leads": funnel.summary.TotalLeads,
		"sold":        funnel.summary.SoldHouseholds,
	}).Debug("Pipeline analytics calculado")

	return &domain.RoiAnalytics{
		Summary:      summary,
		ByLeadSource: rows,
	}, nil
}

// activityAnalytics executa o Activity Mode: três buscas independentes de
// eventos dentro da janela, com deduplicação por household em cada estágio
func (s *Service) activityAnalytics(agencyID string, dateRange domain.DateRange, commissionRate float64, sourceNames map[string]string) (*domain.RoiAnalytics, error) {
	leads, err := s.householdRepo.ListReceivedInRange(agencyID, dateRange)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", agencyID).Error("Erro ao buscar leads recebidos na janela")
		return nil, err
	}

	quotes, err := s.quoteRepo.ListActivityInRange(agencyID, dateRange)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", agencyID).Error("Erro ao buscar cotações da janela")
		return nil, err
	}

	sales, err := s.saleRepo.ListActivityInRange(agencyID, dateRange)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", agencyID).Error("Erro ao buscar vendas da janela")
		return nil, err
	}

	spends, err := s.spendRepo.ListByAgency(agencyID, &dateRange)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", agencyID).Error("Erro ao buscar spend da janela")
		return nil, err
	}

	activity := aggregateActivity(leads, quotes, sales, dateRange)

	rows, totalSpendCents := joinSpend(activity.bySource, spends, sourceNames, commissionRate)

	summary := &domain.RoiSummary{
		Mode:             domain.ModeActivity,
		Activity:         activity.summary,
		PremiumSoldCents: activity.premiumSoldCents,
		CommissionRate:   commissionRate,
	}
	fillSpendSummary(summary, totalSpendCents)

	return &domain.RoiAnalytics{
		Summary:      summary,
		ByLeadSource: rows,
		DateRange:    &dateRange,
	}, nil
}

// commissionRate resolve o percentual de comissão da agência, com fallback
// para o valor padrão de configuração quando a agência não tem settings
func (s *Service) commissionRate(agencyID string) (float64, error) {
	settings, err := s.settingsRepo.GetByAgencyID(agencyID)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", agencyID).Error("Erro ao buscar configurações da agência")
		return 0, err
	}

	if settings == nil {
		return s.cfg.Analytics.DefaultCommissionRate, nil
	}

	return settings.CommissionRate, nil
}

// sourceNames monta o mapa id -> nome das origens da agência
func (s *Service) sourceNames(agencyID string) (map[string]string, error) {
	sources, err := s.leadSourceRepo.ListByAgency(agencyID)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", agencyID).Error("Erro ao buscar lead sources da agência")
		return nil, err
	}

	names := make(map[string]string, len(sources))
	for _, source := range sources {
		names[source.ID] = source.Name
	}

	return names, nil
}
