package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-ops-api/internal/domain"
	"github.com/vfg2006/agency-ops-api/internal/usecases/marketing"
	"github.com/vfg2006/agency-ops-api/pkg/apiErrors"
	"github.com/vfg2006/agency-ops-api/pkg/middleware"
	"github.com/vfg2006/agency-ops-api/pkg/utils"
)

type CreateLeadSourceBody struct {
	Name string `json:"name"`
}

type UpdateLeadSourceBody struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type SaveSpendBody struct {
	LeadSourceID string `json:"lead_source_id"`
	Month        string `json:"month"` // YYYY-MM-DD, qualquer dia do mês
	SpendCents   int64  `json:"spend_cents"`
}

// ListLeadSources lista os lead sources da agência do usuário
func ListLeadSources(service marketing.MarketingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		sources, err := service.ListLeadSources(userClaims.AgencyID)
		if err != nil {
			handleMarketingError(w, err, "Erro ao listar lead sources")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sources); err != nil {
			logrus.Error("Erro ao enviar resposta de lead sources:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateLeadSource cria um lead source na agência do usuário
func CreateLeadSource(service marketing.MarketingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var body CreateLeadSourceBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		source, err := service.CreateLeadSource(&domain.CreateLeadSourceRequest{
			AgencyID: userClaims.AgencyID,
			Name:     body.Name,
		})
		if err != nil {
			handleMarketingError(w, err, "Erro ao criar lead source")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(source); err != nil {
			logrus.Error("Erro ao enviar resposta de criação de lead source:", err)
		}
	}
}

// UpdateLeadSource atualiza nome e/ou status de um lead source
func UpdateLeadSource(service marketing.MarketingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		sourceID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if sourceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead source não fornecido", nil)
			return
		}

		var body UpdateLeadSourceBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		source, err := service.UpdateLeadSource(&domain.UpdateLeadSourceRequest{
			ID:       sourceID,
			AgencyID: userClaims.AgencyID,
			Name:     body.Name,
			Active:   body.Active,
		})
		if err != nil {
			handleMarketingError(w, err, "Erro ao atualizar lead source")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(source); err != nil {
			logrus.Error("Erro ao enviar resposta de atualização de lead source:", err)
		}
	}
}

// ListSpend lista o spend mensal por lead source, com filtro opcional de janela
func ListSpend(service marketing.MarketingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dateRange, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato YYYY-MM-DD", nil)
			return
		}

		spends, err := service.ListSpend(userClaims.AgencyID, dateRange)
		if err != nil {
			handleMarketingError(w, err, "Erro ao listar spend")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(spends); err != nil {
			logrus.Error("Erro ao enviar resposta de spend:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// SaveSpend insere ou atualiza o spend de um lead source em um mês
func SaveSpend(service marketing.MarketingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var body SaveSpendBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		month, err := utils.ParseDate(body.Month)
		if err != nil || month == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		spend, err := service.SaveSpend(&domain.SaveSpendRequest{
			AgencyID:     userClaims.AgencyID,
			LeadSourceID: body.LeadSourceID,
			Month:        *month,
			SpendCents:   body.SpendCents,
		})
		if err != nil {
			handleMarketingError(w, err, "Erro ao salvar spend")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(spend); err != nil {
			logrus.Error("Erro ao enviar resposta de spend:", err)
		}
	}
}

// handleMarketingError traduz os erros do usecase para a resposta da API
func handleMarketingError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback, ": ", err)

	var mktErr *marketing.MarketingError
	if errors.As(err, &mktErr) {
		apiErrors.WriteError(w, mktErr.Code, mktErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
