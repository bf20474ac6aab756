package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/agency-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-ops-api/internal/domain"
	"github.com/vfg2006/agency-ops-api/pkg/utils"
)

const (
	leadSourceSpendTable = "lead_source_spend sp"

	leadSourceSpendColumns = "sp.id, sp.agency_id, sp.lead_source_id, sp.month, sp.spend_cents, sp.created_at, sp.updated_at"
)

type LeadSourceSpendRepository interface {
	// ListByAgency busca as linhas mensais de spend da agência. Quando uma
	// janela é informada, só retornam os meses que se sobrepõem a ela.
	ListByAgency(agencyID string, dateRange *domain.DateRange) ([]*domain.LeadSourceSpend, error)

	// SaveOrUpdate insere ou atualiza o spend de um lead source em um mês
	SaveOrUpdate(spend *domain.LeadSourceSpend) error
}

type leadSourceSpendRepository struct {
	conn *postgres.Connection
}

func NewLeadSourceSpendRepository(conn *postgres.Connection) LeadSourceSpendRepository {
	return &leadSourceSpendRepository{
		conn: conn,
	}
}

func (r *leadSourceSpendRepository) ListByAgency(agencyID string, dateRange *domain.DateRange) ([]*domain.LeadSourceSpend, error) {
	return fetchAllPages(func(limit, offset uint64) ([]*domain.LeadSourceSpend, error) {
		builder := squirrel.
			Select(leadSourceSpendColumns).
			From(leadSourceSpendTable).
			Where(squirrel.Eq{"sp.agency_id": agencyID}).
			OrderBy("sp.month ASC, sp.lead_source_id ASC").
			Limit(limit).
			Offset(offset).
			PlaceholderFormat(squirrel.Dollar)

		// Sobreposição de mês com a janela: o mês do registro precisa cair
		// entre o mês de início e o mês de fim do relatório
		if dateRange != nil {
			builder = builder.
				Where(squirrel.GtOrEq{"sp.month": utils.StartOfMonth(dateRange.Start).Format(time.DateOnly)}).
				Where(squirrel.LtOrEq{"sp.month": utils.StartOfMonth(dateRange.End).Format(time.DateOnly)})
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows, err := r.conn.Query(query, args...)
		if err != nil {
			if err == sql.ErrNoRows {
				return []*domain.LeadSourceSpend{}, nil
			}
			return nil, fmt.Errorf("erro ao executar a query: %w", err)
		}
		defer rows.Close()

		spends := make([]*domain.LeadSourceSpend, 0)
		for rows.Next() {
			var spend domain.LeadSourceSpend
			err := rows.Scan(
				&spend.ID,
				&spend.AgencyID,
				&spend.LeadSourceID,
				&spend.Month,
				&spend.SpendCents,
				&spend.CreatedAt,
				&spend.UpdatedAt,
			)
			if err != nil {
				return nil, fmt.Errorf("erro ao escanear spend: %w", err)
			}
			spends = append(spends, &spend)
		}

		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}

		return spends, nil
	})
}

func (r *leadSourceSpendRepository) SaveOrUpdate(spend *domain.LeadSourceSpend) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("lead_source_spend").
		Columns("id", "agency_id", "lead_source_id", "month", "spend_cents").
		Values(
			spend.ID,
			spend.AgencyID,
			spend.LeadSourceID,
			utils.StartOfMonth(spend.Month).Format(time.DateOnly),
			spend.SpendCents,
		).
		Suffix(`
			ON CONFLICT (agency_id, lead_source_id, month) DO UPDATE SET
				spend_cents = EXCLUDED.spend_cents,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar spend: %w", err)
	}

	return nil
}
