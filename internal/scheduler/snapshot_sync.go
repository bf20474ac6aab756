// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-ops-api/infrastructure/repository"
	"github.com/vfg2006/agency-ops-api/internal/config"
	"github.com/vfg2006/agency-ops-api/internal/domain"
	"github.com/vfg2006/agency-ops-api/internal/usecases/analyzing"
)

type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotSyncService pré-calcula o Pipeline Mode de cada agência no cron
// noturno e persiste o resultado como snapshot, para que a home do dashboard
// carregue sem recomputar o relatório inteiro
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	settingsRepo        repository.AgencySettingsRepository
	snapshotRepo        repository.AnalyticsSnapshotRepository
	analyzer            analyzing.Analyzer
	config              SnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSnapshotSyncService(
	settingsRepo repository.AgencySettingsRepository,
	snapshotRepo repository.AnalyticsSnapshotRepository,
	analyzer analyzing.Analyzer,
	cfg *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: cfg.SnapshotSync.CronSchedule, // Default: 5h da manhã todos os dias
		SyncEnabled:  cfg.SnapshotSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshots de analytics carregada")

	return &SnapshotSyncService{
		scheduler:    scheduler,
		settingsRepo: settingsRepo,
		snapshotRepo: snapshotRepo,
		analyzer:     analyzer,
		config:       syncConfig,
	}
}

func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshots de analytics desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshots de analytics")

	// Agendar o cálculo dos snapshots
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateSnapshots(); err != nil {
			logrus.WithError(err).Error("Erro na atualização dos snapshots de analytics")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de snapshots de analytics: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshots de analytics")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateSnapshots recalcula o Pipeline Mode de todas as agências cadastradas.
// Uma agência que falha não impede as demais; o erro retornado é o da listagem
// inicial de agências.
func (s *SnapshotSyncService) UpdateSnapshots() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Atualização de snapshots de analytics já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização dos snapshots de analytics")

	agencies, err := s.settingsRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de agências para atualização dos snapshots")
		return err
	}

	if len(agencies) == 0 {
		logrus.Info("Nenhuma agência encontrada para atualização dos snapshots")
		return nil
	}

	updated := 0
	for _, agency := range agencies {
		if err := s.snapshotAgency(agency.AgencyID); err != nil {
			logrus.WithError(err).WithField("agency_id", agency.AgencyID).Error("Erro ao atualizar snapshot da agência")
			continue
		}
		updated++
	}

	logrus.WithFields(logrus.Fields{
		"agencies": len(agencies),
		"updated":  updated,
	}).Info("Atualização dos snapshots de analytics concluída")

	return nil
}

// snapshotAgency calcula o Pipeline Mode da agência (janela nula) e persiste
func (s *SnapshotSyncService) snapshotAgency(agencyID string) error {
	analytics, err := s.analyzer.GetRoiAnalytics(agencyID, nil)
	if err != nil {
		return err
	}

	return s.snapshotRepo.SaveOrUpdate(&domain.AnalyticsSnapshot{
		AgencyID:   agencyID,
		Analytics:  analytics,
		ComputedAt: time.Now(),
	})
}

// TriggerManualSync inicia manualmente uma atualização dos snapshots
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual dos snapshots de analytics")
	go s.UpdateSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
