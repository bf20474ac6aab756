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
	householdsTable = "households h"

	householdColumns = "h.id, h.agency_id, h.name, h.status, h.lead_source_id, h.lead_received_date, h.created_at, h.updated_at"
)

type HouseholdRepository interface {
	// ListByAgency busca todos os households da agência com quotes e sales aninhados
	ListByAgency(agencyID string) ([]*domain.Household, error)

	// ListReceivedInRange busca os households cujo lead foi recebido dentro da janela,
	// usando lead_received_date com fallback para created_at quando nulo
	ListReceivedInRange(agencyID string, dateRange domain.DateRange) ([]*domain.Household, error)

	// GetByIDs busca households específicos (com quotes e sales aninhados),
	// respeitando o limite de ids por filtro IN da fonte de dados
	GetByIDs(ids []string) ([]*domain.Household, error)
}

type householdRepository struct {
	conn *postgres.Connection
}

func NewHouseholdRepository(conn *postgres.Connection) HouseholdRepository {
	return &householdRepository{
		conn: conn,
	}
}

func (r *householdRepository) ListByAgency(agencyID string) ([]*domain.Household, error) {
	households, err := fetchAllPages(func(limit, offset uint64) ([]*domain.Household, error) {
		query, args, err := squirrel.
			Select(householdColumns).
			From(householdsTable).
			Where(squirrel.Eq{"h.agency_id": agencyID}).
			OrderBy("h.id ASC").
			Limit(limit).
			Offset(offset).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		return r.queryHouseholds(query, args)
	})
	if err != nil {
		return nil, err
	}

	if err := r.attachRelations(households); err != nil {
		return nil, err
	}

	return households, nil
}

func (r *householdRepository) ListReceivedInRange(agencyID string, dateRange domain.DateRange) ([]*domain.Household, error) {
	start := dateRange.Start.Format(time.DateOnly)
	end := dateRange.End.Format(time.DateOnly)

	// A query usa um OR entre lead_received_date e created_at para reduzir o
	// conjunto; o refinamento fino do fallback é refeito em memória pelo engine
	return fetchAllPages(func(limit, offset uint64) ([]*domain.Household, error) {
		query, args, err := squirrel.
			Select(householdColumns).
			From(householdsTable).
			Where(squirrel.Eq{"h.agency_id": agencyID}).
			Where(squirrel.Or{
				squirrel.And{
					squirrel.GtOrEq{"h.lead_received_date": start},
					squirrel.LtOrEq{"h.lead_received_date": end},
				},
				squirrel.And{
					squirrel.Eq{"h.lead_received_date": nil},
					squirrel.GtOrEq{"h.created_at": start},
					squirrel.LtOrEq{"h.created_at": end},
				},
			}).
			OrderBy("h.id ASC").
			Limit(limit).
			Offset(offset).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		return r.queryHouseholds(query, args)
	})
}

func (r *householdRepository) GetByIDs(ids []string) ([]*domain.Household, error) {
	if len(ids) == 0 {
		return []*domain.Household{}, nil
	}

	households := make([]*domain.Household, 0, len(ids))

	// A fonte de dados limita a quantidade de ids por filtro IN,
	// então a busca é feita em lotes
	for _, batch := range batchIDs(ids) {
		if len(households) >= maxFetchRows {
			break
		}

		query, args, err := squirrel.
			Select(householdColumns).
			From(householdsTable).
			Where(squirrel.Eq{"h.id": batch}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		batchHouseholds, err := r.queryHouseholds(query, args)
		if err != nil {
			return nil, err
		}

		households = append(households, batchHouseholds...)
	}

	if err := r.attachRelations(households); err != nil {
		return nil, err
	}

	return households, nil
}

func (r *householdRepository) queryHouseholds(query string, args []interface{}) ([]*domain.Household, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Household{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	households := make([]*domain.Household, 0)
	for rows.Next() {
		household, err := r.scanHousehold(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear household: %w", err)
		}
		households = append(households, household)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return households, nil
}

func (r *householdRepository) scanHousehold(rows *sql.Rows) (*domain.Household, error) {
	var (
		household        domain.Household
		leadSourceID     sql.NullString
		leadReceivedDate sql.NullTime
	)

	err := rows.Scan(
		&household.ID,
		&household.AgencyID,
		&household.Name,
		&household.Status,
		&leadSourceID,
		&leadReceivedDate,
		&household.CreatedAt,
		&household.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if leadSourceID.Valid {
		household.LeadSourceID = &leadSourceID.String
	}

	if leadReceivedDate.Valid {
		household.LeadReceivedDate = &leadReceivedDate.Time
	}

	household.Quotes = make([]*domain.Quote, 0)
	household.Sales = make([]*domain.Sale, 0)

	return &household, nil
}

// attachRelations carrega quotes e sales dos households informados e os anexa
// aos respectivos registros, em lotes de ids
func (r *householdRepository) attachRelations(households []*domain.Household) error {
	if len(households) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Household, len(households))
	ids := make([]string, 0, len(households))
	for _, household := range households {
		byID[household.ID] = household
		ids = append(ids, household.ID)
	}

	for _, batch := range batchIDs(ids) {
		quotes, err := r.quotesByHouseholdIDs(batch)
		if err != nil {
			return err
		}

		for _, quote := range quotes {
			if household, ok := byID[quote.HouseholdID]; ok {
				household.Quotes = append(household.Quotes, quote)
			}
		}

		sales, err := r.salesByHouseholdIDs(batch)
		if err != nil {
			return err
		}

		for _, sale := range sales {
			if household, ok := byID[sale.HouseholdID]; ok {
				household.Sales = append(household.Sales, sale)
			}
		}
	}

	return nil
}

func (r *householdRepository) quotesByHouseholdIDs(ids []string) ([]*domain.Quote, error) {
	query, args, err := squirrel.
		Select(quoteColumns).
		From(quotesTable).
		Where(squirrel.Eq{"q.household_id": ids}).
		OrderBy("q.quote_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Quote{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	quotes := make([]*domain.Quote, 0)
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear quote: %w", err)
		}
		quotes = append(quotes, quote)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return quotes, nil
}

func (r *householdRepository) salesByHouseholdIDs(ids []string) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns).
		From(salesTable).
		Where(squirrel.Eq{"s.household_id": ids}).
		OrderBy("s.sale_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Sale{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}
