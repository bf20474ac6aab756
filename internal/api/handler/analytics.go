package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-ops-api/internal/domain"
	"github.com/vfg2006/agency-ops-api/internal/usecases/analyzing"
	"github.com/vfg2006/agency-ops-api/pkg/apiErrors"
	"github.com/vfg2006/agency-ops-api/pkg/middleware"
	"github.com/vfg2006/agency-ops-api/pkg/utils"
)

// GetRoiAnalytics retorna o relatório de lead quality/ROI da agência do usuário.
// Sem start_date/end_date o relatório sai em Pipeline Mode; com a janela
// completa sai em Activity Mode.
func GetRoiAnalytics(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dateRange, err := parseDateRange(r)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
			}).Warn("analytics: parâmetros de data inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas inválidas, use o formato YYYY-MM-DD", nil)
			return
		}

		analytics, err := service.GetRoiAnalytics(userClaims.AgencyID, dateRange)
		if err != nil {
			logrus.Error("Erro ao calcular analytics de ROI:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular analytics de ROI", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(analytics)
		if err != nil {
			logrus.Error("Erro ao enviar resposta de analytics:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetProducerDetail retorna a visão detalhada de produção de um membro do time.
// O parâmetro producer_id ausente seleciona a produção não atribuída; view_mode
// aceita quotedBy (default) ou soldBy.
func GetProducerDetail(service analyzing.Analyzer) http.HandlerFunc {
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

		var producerID *string
		if id := r.URL.Query().Get("producer_id"); id != "" {
			producerID = &id
		}

		viewMode := domain.ProducerViewMode(r.URL.Query().Get("view_mode"))
		if viewMode == "" {
			viewMode = domain.ViewQuotedBy
		}

		if viewMode != domain.ViewQuotedBy && viewMode != domain.ViewSoldBy {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "view_mode inválido. Valores aceitos: quotedBy, soldBy", nil)
			return
		}

		detail, err := service.GetProducerDetail(userClaims.AgencyID, producerID, viewMode, dateRange)
		if err != nil {
			logrus.Error("Erro ao calcular detalhe do produtor:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular detalhe do produtor", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(detail)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do detalhe do produtor:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetAnalyticsSnapshot retorna o snapshot noturno pré-calculado da agência
func GetAnalyticsSnapshot(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		snapshot, err := service.GetLatestSnapshot(userClaims.AgencyID)
		if err != nil {
			logrus.Error("Erro ao buscar snapshot de analytics:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot de analytics", nil)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Nenhum snapshot calculado para a agência", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(snapshot)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do snapshot:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// parseDateRange monta a janela a partir de start_date/end_date. As duas datas
// precisam vir juntas; nenhuma das duas significa janela nula (Pipeline Mode).
func parseDateRange(r *http.Request) (*domain.DateRange, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}

	if startDate == nil || endDate == nil {
		return nil, nil
	}

	if endDate.Before(*startDate) {
		return nil, errInvertedRange
	}

	return &domain.DateRange{Start: *startDate, End: *endDate}, nil
}

var errInvertedRange = errors.New("end_date anterior a start_date")
