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
	quotesTable = "quotes q"

	quoteColumns = "q.id, q.household_id, q.quote_date, q.premium_cents, q.items_quoted, q.product_type, q.quoted_by, q.created_at"
)

type QuoteRepository interface {
	// ListActivityInRange busca as cotações criadas dentro da janela, cada uma
	// carregando o lead_source_id do household pai
	ListActivityInRange(agencyID string, dateRange domain.DateRange) ([]*domain.QuoteActivity, error)

	// ListHouseholdIDsByProducer resolve os ids distintos de households com
	// cotação do produtor informado (nil = cotações não atribuídas), com
	// filtro opcional de janela
	ListHouseholdIDsByProducer(agencyID string, producerID *string, dateRange *domain.DateRange) ([]string, error)
}

type quoteRepository struct {
	conn *postgres.Connection
}

func NewQuoteRepository(conn *postgres.Connection) QuoteRepository {
	return &quoteRepository{
		conn: conn,
	}
}

func (r *quoteRepository) ListActivityInRange(agencyID string, dateRange domain.DateRange) ([]*domain.QuoteActivity, error) {
	return fetchAllPages(func(limit, offset uint64) ([]*domain.QuoteActivity, error) {
		query, args, err := squirrel.
			Select(quoteColumns + ", h.lead_source_id").
			From(quotesTable).
			Join("households h ON h.id = q.household_id").
			Where(squirrel.Eq{"h.agency_id": agencyID}).
			Where(squirrel.GtOrEq{"q.quote_date": dateRange.Start.Format(time.DateOnly)}).
			Where(squirrel.LtOrEq{"q.quote_date": dateRange.End.Format(time.DateOnly)}).
			OrderBy("q.quote_date ASC, q.id ASC").
			Limit(limit).
			Offset(offset).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows, err := r.conn.Query(query, args...)
		if err != nil {
			if err == sql.ErrNoRows {
				return []*domain.QuoteActivity{}, nil
			}
			return nil, fmt.Errorf("erro ao executar a query: %w", err)
		}
		defer rows.Close()

		activities := make([]*domain.QuoteActivity, 0)
		for rows.Next() {
			activity, err := scanQuoteActivity(rows)
			if err != nil {
				return nil, fmt.Errorf("erro ao escanear quote: %w", err)
			}
			activities = append(activities, activity)
		}

		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}

		return activities, nil
	})
}

func (r *quoteRepository) ListHouseholdIDsByProducer(agencyID string, producerID *string, dateRange *domain.DateRange) ([]string, error) {
	return fetchAllPages(func(limit, offset uint64) ([]string, error) {
		builder := squirrel.
			Select("DISTINCT q.household_id").
			From(quotesTable).
			Join("households h ON h.id = q.household_id").
			Where(squirrel.Eq{"h.agency_id": agencyID}).
			OrderBy("q.household_id ASC").
			Limit(limit).
			Offset(offset).
			PlaceholderFormat(squirrel.Dollar)

		if producerID != nil {
			builder = builder.Where(squirrel.Eq{"q.quoted_by": *producerID})
		} else {
			// Sentinela "unassigned": cotações sem produtor
			builder = builder.Where(squirrel.Eq{"q.quoted_by": nil})
		}

		if dateRange != nil {
			builder = builder.
				Where(squirrel.GtOrEq{"q.quote_date": dateRange.Start.Format(time.DateOnly)}).
				Where(squirrel.LtOrEq{"q.quote_date": dateRange.End.Format(time.DateOnly)})
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		return queryIDs(r.conn, query, args)
	})
}

func scanQuote(rows *sql.Rows) (*domain.Quote, error) {
	var (
		quote    domain.Quote
		quotedBy sql.NullString
	)

	err := rows.Scan(
		&quote.ID,
		&quote.HouseholdID,
		&quote.QuoteDate,
		&quote.PremiumCents,
		&quote.ItemsQuoted,
		&quote.ProductType,
		&quotedBy,
		&quote.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if quotedBy.Valid {
		quote.QuotedBy = &quotedBy.String
	}

	return &quote, nil
}

func scanQuoteActivity(rows *sql.Rows) (*domain.QuoteActivity, error) {
	var (
		activity     domain.QuoteActivity
		quotedBy     sql.NullString
		leadSourceID sql.NullString
	)

	err := rows.Scan(
		&activity.ID,
		&activity.HouseholdID,
		&activity.QuoteDate,
		&activity.PremiumCents,
		&activity.ItemsQuoted,
		&activity.ProductType,
		&quotedBy,
		&activity.CreatedAt,
		&leadSourceID,
	)
	if err != nil {
		return nil, err
	}

	if quotedBy.Valid {
		activity.QuotedBy = &quotedBy.String
	}

	if leadSourceID.Valid {
		activity.LeadSourceID = &leadSourceID.String
	}

	return &activity, nil
}

// queryIDs executa uma query que retorna uma única coluna de ids
func queryIDs(conn *postgres.Connection, query string, args []interface{}) ([]string, error) {
	rows, err := conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []string{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}
