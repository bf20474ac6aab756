package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-ops-api/internal/domain"
	analyzingMocks "github.com/vfg2006/agency-ops-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(
	ctrl *gomock.Controller,
	config SnapshotSyncConfig,
) (*SnapshotSyncService, *mocks.MockAgencySettingsRepository, *mocks.MockAnalyticsSnapshotRepository, *analyzingMocks.MockAnalyzer) {
	settingsRepo := mocks.NewMockAgencySettingsRepository(ctrl)
	snapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)
	analyzer := analyzingMocks.NewMockAnalyzer(ctrl)

	service := &SnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		settingsRepo: settingsRepo,
		snapshotRepo: snapshotRepo,
		analyzer:     analyzer,
		config:       config,
	}

	return service, settingsRepo, snapshotRepo, analyzer
}

func TestUpdateSnapshots(t *testing.T) {
	pipelineAnalytics := &domain.RoiAnalytics{
		Summary: &domain.RoiSummary{Mode: domain.ModePipeline},
	}

	tests := []struct {
		name  string
		setup func(
			settingsRepo *mocks.MockAgencySettingsRepository,
			snapshotRepo *mocks.MockAnalyticsSnapshotRepository,
			analyzer *analyzingMocks.MockAnalyzer,
		)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Nenhuma agência cadastrada - conclui sem calcular nada",
			setup: func(
				settingsRepo *mocks.MockAgencySettingsRepository,
				snapshotRepo *mocks.MockAnalyticsSnapshotRepository,
				analyzer *analyzingMocks.MockAnalyzer,
			) {
				settingsRepo.EXPECT().ListAll().Return([]*domain.AgencySettings{}, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Calcula o Pipeline Mode de cada agência e persiste o snapshot",
			setup: func(
				settingsRepo *mocks.MockAgencySettingsRepository,
				snapshotRepo *mocks.MockAnalyticsSnapshotRepository,
				analyzer *analyzingMocks.MockAnalyzer,
			) {
				settingsRepo.EXPECT().ListAll().Return([]*domain.AgencySettings{
					{AgencyID: "AGY001"},
					{AgencyID: "AGY002"},
				}, nil)

				analyzer.EXPECT().GetRoiAnalytics("AGY001", nil).Return(pipelineAnalytics, nil)
				analyzer.EXPECT().GetRoiAnalytics("AGY002", nil).Return(pipelineAnalytics, nil)

				snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(snapshot *domain.AnalyticsSnapshot) error {
					assert.Equal(t, "AGY001", snapshot.AgencyID)
					assert.Equal(t, pipelineAnalytics, snapshot.Analytics)
					assert.False(t, snapshot.ComputedAt.IsZero())
					return nil
				})
				snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(snapshot *domain.AnalyticsSnapshot) error {
					assert.Equal(t, "AGY002", snapshot.AgencyID)
					return nil
				})
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Falha de uma agência não impede as demais",
			setup: func(
				settingsRepo *mocks.MockAgencySettingsRepository,
				snapshotRepo *mocks.MockAnalyticsSnapshotRepository,
				analyzer *analyzingMocks.MockAnalyzer,
			) {
				settingsRepo.EXPECT().ListAll().Return([]*domain.AgencySettings{
					{AgencyID: "AGY001"},
					{AgencyID: "AGY002"},
				}, nil)

				analyzer.EXPECT().GetRoiAnalytics("AGY001", nil).Return(nil, errors.New("query timeout"))
				analyzer.EXPECT().GetRoiAnalytics("AGY002", nil).Return(pipelineAnalytics, nil)

				snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Erro na listagem de agências aborta a atualização",
			setup: func(
				settingsRepo *mocks.MockAgencySettingsRepository,
				snapshotRepo *mocks.MockAnalyticsSnapshotRepository,
				analyzer *analyzingMocks.MockAnalyzer,
			) {
				settingsRepo.EXPECT().ListAll().Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, settingsRepo, snapshotRepo, analyzer := newTestSyncService(ctrl, SnapshotSyncConfig{SyncEnabled: true})
			tt.setup(settingsRepo, snapshotRepo, analyzer)

			tt.validate(t, service.UpdateSnapshots())
		})
	}
}

func TestUpdateSnapshotsRegistersTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, settingsRepo, _, _ := newTestSyncService(ctrl, SnapshotSyncConfig{SyncEnabled: true})
	settingsRepo.EXPECT().ListAll().Return([]*domain.AgencySettings{}, nil)

	assert.True(t, service.lastSyncStartedAt.IsZero())

	err := service.UpdateSnapshots()

	assert.NoError(t, err)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestSnapshotSyncStart(t *testing.T) {
	t.Run("Cron desabilitada - não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestSyncService(ctrl, SnapshotSyncConfig{SyncEnabled: false})

		err := service.Start(context.Background())

		assert.NoError(t, err)
		assert.False(t, service.scheduler.IsRunning())
	})

	t.Run("Expressão cron inválida - retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newTestSyncService(ctrl, SnapshotSyncConfig{
			SyncEnabled:  true,
			CronSchedule: "not-a-cron",
		})

		err := service.Start(context.Background())

		assert.Error(t, err)
	})
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newTestSyncService(ctrl, SnapshotSyncConfig{
		SyncEnabled:  true,
		CronSchedule: "0 5 * * *",
	})

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
}
