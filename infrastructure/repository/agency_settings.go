package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/agency-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-ops-api/internal/domain"
)

const (
	agencySettingsTable = "agency_settings ag"
)

type AgencySettingsRepository interface {
	// GetByAgencyID busca as configurações de uma agência; retorna nil sem
	// erro quando a agência ainda não tem configurações salvas
	GetByAgencyID(agencyID string) (*domain.AgencySettings, error)

	// ListAll retorna as configurações de todas as agências cadastradas
	ListAll() ([]*domain.AgencySettings, error)
}

type agencySettingsRepository struct {
	conn *postgres.Connection
}

func NewAgencySettingsRepository(conn *postgres.Connection) AgencySettingsRepository {
	return &agencySettingsRepository{
		conn: conn,
	}
}

func (r *agencySettingsRepository) GetByAgencyID(agencyID string) (*domain.AgencySettings, error) {
	query, args, err := squirrel.
		Select("ag.agency_id, ag.commission_rate, ag.created_at, ag.updated_at").
		From(agencySettingsTable).
		Where(squirrel.Eq{"ag.agency_id": agencyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var settings domain.AgencySettings
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&settings.AgencyID,
		&settings.CommissionRate,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configurações da agência: %w", err)
	}

	return &settings, nil
}

func (r *agencySettingsRepository) ListAll() ([]*domain.AgencySettings, error) {
	query, args, err := squirrel.
		Select("ag.agency_id, ag.commission_rate, ag.created_at, ag.updated_at").
		From(agencySettingsTable).
		OrderBy("ag.agency_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.AgencySettings{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	settingsList := make([]*domain.AgencySettings, 0)
	for rows.Next() {
		var settings domain.AgencySettings
		err := rows.Scan(
			&settings.AgencyID,
			&settings.CommissionRate,
			&settings.CreatedAt,
			&settings.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear configurações da agência: %w", err)
		}
		settingsList = append(settingsList, &settings)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return settingsList, nil
}
