package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/agency-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-ops-api/internal/domain"
)

const (
	analyticsSnapshotsTable = "analytics_snapshots sn"
)

type AnalyticsSnapshotRepository interface {
	// SaveOrUpdate persiste o snapshot noturno do Pipeline Mode de uma agência
	SaveOrUpdate(snapshot *domain.AnalyticsSnapshot) error

	// GetLatestByAgency busca o snapshot mais recente de uma agência; retorna
	// nil sem erro quando ainda não há snapshot calculado
	GetLatestByAgency(agencyID string) (*domain.AnalyticsSnapshot, error)
}

type analyticsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsSnapshotRepository(conn *postgres.Connection) AnalyticsSnapshotRepository {
	return &analyticsSnapshotRepository{
		conn: conn,
	}
}

func (r *analyticsSnapshotRepository) SaveOrUpdate(snapshot *domain.AnalyticsSnapshot) error {
	analyticsJSON, err := json.Marshal(snapshot.Analytics)
	if err != nil {
		return fmt.Errorf("erro ao serializar analytics para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("analytics_snapshots").
		Columns("agency_id", "analytics", "computed_at").
		Values(snapshot.AgencyID, analyticsJSON, snapshot.ComputedAt).
		Suffix(`
			ON CONFLICT (agency_id) DO UPDATE SET
				analytics = EXCLUDED.analytics,
				computed_at = EXCLUDED.computed_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	return nil
}

func (r *analyticsSnapshotRepository) GetLatestByAgency(agencyID string) (*domain.AnalyticsSnapshot, error) {
	query, args, err := squirrel.
		Select("sn.id, sn.agency_id, sn.analytics, sn.computed_at, sn.created_at, sn.updated_at").
		From(analyticsSnapshotsTable).
		Where(squirrel.Eq{"sn.agency_id": agencyID}).
		OrderBy("sn.computed_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		snapshot      domain.AnalyticsSnapshot
		analyticsJSON []byte
	)

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&snapshot.ID,
		&snapshot.AgencyID,
		&analyticsJSON,
		&snapshot.ComputedAt,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if len(analyticsJSON) > 0 {
		if err := json.Unmarshal(analyticsJSON, &snapshot.Analytics); err != nil {
			return nil, fmt.Errorf("erro ao desserializar analytics do snapshot: %w", err)
		}
	}

	return &snapshot, nil
}
