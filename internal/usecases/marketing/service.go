package marketing

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-ops-api/infrastructure/repository"
	"github.com/vfg2006/agency-ops-api/internal/domain"
	"github.com/vfg2006/agency-ops-api/pkg/apiErrors"
	"github.com/vfg2006/agency-ops-api/pkg/utils"
)

// MarketingService gerencia o cadastro de lead sources e o spend mensal por origem
type MarketingService interface {
	ListLeadSources(agencyID string) ([]*domain.LeadSource, error)
	CreateLeadSource(request *domain.CreateLeadSourceRequest) (*domain.LeadSource, error)
	UpdateLeadSource(request *domain.UpdateLeadSourceRequest) (*domain.LeadSource, error)
	ListSpend(agencyID string, dateRange *domain.DateRange) ([]*domain.LeadSourceSpend, error)
	SaveSpend(request *domain.SaveSpendRequest) (*domain.LeadSourceSpend, error)
}

type Service struct {
	sourceRepository repository.LeadSourceRepository
	spendRepository  repository.LeadSourceSpendRepository
}

func NewService(
	sourceRepository repository.LeadSourceRepository,
	spendRepository repository.LeadSourceSpendRepository,
) MarketingService {
	return &Service{
		sourceRepository: sourceRepository,
		spendRepository:  spendRepository,
	}
}

func (s *Service) ListLeadSources(agencyID string) ([]*domain.LeadSource, error) {
	sources, err := s.sourceRepository.ListByAgency(agencyID)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", agencyID).Error("Erro ao listar lead sources")
		return nil, NewMarketingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar lead sources no banco de dados")
	}

	return sources, nil
}

func (s *Service) CreateLeadSource(request *domain.CreateLeadSourceRequest) (*domain.LeadSource, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, NewMarketingError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Nome do lead source é obrigatório")
	}

	sourceID, err := utils.GenerateID()
	if err != nil {
		return nil, NewMarketingError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para lead source")
	}

	now := time.Now()
	source := &domain.LeadSource{
		ID:        sourceID,
		AgencyID:  request.AgencyID,
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sourceRepository.Create(source); err != nil {
		logrus.WithError(err).WithField("agency_id", request.AgencyID).Error("Erro ao criar lead source")
		return nil, NewMarketingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar lead source no banco de dados")
	}

	return source, nil
}

func (s *Service) UpdateLeadSource(request *domain.UpdateLeadSourceRequest) (*domain.LeadSource, error) {
	if request.ID == "" {
		return nil, NewMarketingError(ErrSourceIDRequired, apiErrors.ErrMissingRequiredData, "ID do lead source é obrigatório")
	}

	sources, err := s.sourceRepository.ListByAgency(request.AgencyID)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", request.AgencyID).Error("Erro ao buscar lead sources para atualização")
		return nil, NewMarketingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar lead source no banco de dados")
	}

	var source *domain.LeadSource
	for _, candidate := range sources {
		if candidate.ID == request.ID {
			source = candidate
			break
		}
	}

	if source == nil {
		return nil, NewMarketingError(ErrLeadSourceNotFound, apiErrors.ErrInvalidRequest, "Lead source não encontrado")
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, NewMarketingError(ErrNameRequired, apiErrors.ErrMissingRequiredData, "Nome do lead source é obrigatório")
		}
		source.Name = name
	}

	if request.Active != nil {
		source.Active = *request.Active
	}

	source.UpdatedAt = time.Now()

	if err := s.sourceRepository.Update(source); err != nil {
		logrus.WithError(err).WithField("lead_source_id", source.ID).Error("Erro ao atualizar lead source")
		return nil, NewMarketingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar lead source no banco de dados")
	}

	return source, nil
}

func (s *Service) ListSpend(agencyID string, dateRange *domain.DateRange) ([]*domain.LeadSourceSpend, error) {
	spends, err := s.spendRepository.ListByAgency(agencyID, dateRange)
	if err != nil {
		logrus.WithError(err).WithField("agency_id", agencyID).Error("Erro ao listar spend por lead source")
		return nil, NewMarketingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar spend no banco de dados")
	}

	return spends, nil
}

func (s *Service) SaveSpend(request *domain.SaveSpendRequest) (*domain.LeadSourceSpend, error) {
	if request.LeadSourceID == "" {
		return nil, NewMarketingError(ErrSourceIDRequired, apiErrors.ErrMissingRequiredData, "ID do lead source é obrigatório")
	}

	if request.Month.IsZero() {
		return nil, NewMarketingError(ErrMonthRequired, apiErrors.ErrMissingRequiredData, "Mês do spend é obrigatório")
	}

	if request.SpendCents < 0 {
		return nil, NewMarketingError(ErrNegativeSpend, apiErrors.ErrInvalidRequest, "Spend não pode ser negativo")
	}

	spendID, err := utils.GenerateID()
	if err != nil {
		return nil, NewMarketingError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para spend")
	}

	now := time.Now()
	spend := &domain.LeadSourceSpend{
		ID:           spendID,
		AgencyID:     request.AgencyID,
		LeadSourceID: request.LeadSourceID,
		// O mês é sempre normalizado para o primeiro dia, a chave de upsert
		Month:      utils.StartOfMonth(request.Month),
		SpendCents: request.SpendCents,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.spendRepository.SaveOrUpdate(spend); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"agency_id":      request.AgencyID,
			"lead_source_id": request.LeadSourceID,
		}).Error("Erro ao salvar spend do lead source")
		return nil, NewMarketingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar spend no banco de dados")
	}

	return spend, nil
}
