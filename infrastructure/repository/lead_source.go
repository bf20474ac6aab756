package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/agency-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-ops-api/internal/domain"
)

const (
	leadSourcesTable = "lead_sources ls"
)

type LeadSourceRepository interface {
	ListByAgency(agencyID string) ([]*domain.LeadSource, error)
	Create(source *domain.LeadSource) error
	Update(source *domain.LeadSource) error
}

type leadSourceRepository struct {
	conn *postgres.Connection
}

func NewLeadSourceRepository(conn *postgres.Connection) LeadSourceRepository {
	return &leadSourceRepository{
		conn: conn,
	}
}

func (r *leadSourceRepository) ListByAgency(agencyID string) ([]*domain.LeadSource, error) {
	query, args, err := squirrel.
		Select("ls.id, ls.agency_id, ls.name, ls.active, ls.created_at, ls.updated_at").
		From(leadSourcesTable).
		Where(squirrel.Eq{"ls.agency_id": agencyID}).
		OrderBy("ls.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.LeadSource{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sources := make([]*domain.LeadSource, 0)
	for rows.Next() {
		var source domain.LeadSource
		err := rows.Scan(
			&source.ID,
			&source.AgencyID,
			&source.Name,
			&source.Active,
			&source.CreatedAt,
			&source.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lead source: %w", err)
		}
		sources = append(sources, &source)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sources, nil
}

func (r *leadSourceRepository) Create(source *domain.LeadSource) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("lead_sources").
		Columns("id", "agency_id", "name", "active").
		Values(source.ID, source.AgencyID, source.Name, source.Active).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir lead source: %w", err)
	}

	return nil
}

func (r *leadSourceRepository) Update(source *domain.LeadSource) error {
	query, args, err := squirrel.StatementBuilder.
		Update("lead_sources").
		Set("name", source.Name).
		Set("active", source.Active).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": source.ID, "agency_id": source.AgencyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar lead source: %w", err)
	}

	return nil
}
