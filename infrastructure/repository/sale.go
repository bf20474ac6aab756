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
	salesTable = "sales s"

	saleColumns = "s.id, s.household_id, s.sale_date, s.premium_cents, s.items_sold, s.policies_sold, s.product_type, s.sold_by, s.created_at"
)

type SaleRepository interface {
	// ListActivityInRange busca as vendas fechadas dentro da janela, cada uma
	// carregando o lead_source_id do household pai
	ListActivityInRange(agencyID string, dateRange domain.DateRange) ([]*domain.SaleActivity, error)

	// ListHouseholdIDsByProducer resolve os ids distintos de households com
	// venda do produtor informado (nil = vendas não atribuídas), com filtro
	// opcional de janela
	ListHouseholdIDsByProducer(agencyID string, producerID *string, dateRange *domain.DateRange) ([]string, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListActivityInRange(agencyID string, dateRange domain.DateRange) ([]*domain.SaleActivity, error) {
	return fetchAllPages(func(limit, offset uint64) ([]*domain.SaleActivity, error) {
		query, args, err := squirrel.
			Select(saleColumns + ", h.lead_source_id").
			From(salesTable).
			Join("households h ON h.id = s.household_id").
			Where(squirrel.Eq{"h.agency_id": agencyID}).
			Where(squirrel.GtOrEq{"s.sale_date": dateRange.Start.Format(time.DateOnly)}).
			Where(squirrel.LtOrEq{"s.sale_date": dateRange.End.Format(time.DateOnly)}).
			OrderBy("s.sale_date ASC, s.id ASC").
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
				return []*domain.SaleActivity{}, nil
			}
			return nil, fmt.Errorf("erro ao executar a query: %w", err)
		}
		defer rows.Close()

		activities := make([]*domain.SaleActivity, 0)
		for rows.Next() {
			activity, err := scanSaleActivity(rows)
			if err != nil {
				return nil, fmt.Errorf("erro ao escanear sale: %w", err)
			}
			activities = append(activities, activity)
		}

		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}

		return activities, nil
	})
}

func (r *saleRepository) ListHouseholdIDsByProducer(agencyID string, producerID *string, dateRange *domain.DateRange) ([]string, error) {
	return fetchAllPages(func(limit, offset uint64) ([]string, error) {
		builder := squirrel.
			Select("DISTINCT s.household_id").
			From(salesTable).
			Join("households h ON h.id = s.household_id").
			Where(squirrel.Eq{"h.agency_id": agencyID}).
			OrderBy("s.household_id ASC").
			Limit(limit).
			Offset(offset).
			PlaceholderFormat(squirrel.Dollar)

		if producerID != nil {
			builder = builder.Where(squirrel.Eq{"s.sold_by": *producerID})
		} else {
			// Sentinela "unassigned": vendas sem produtor
			builder = builder.Where(squirrel.Eq{"s.sold_by": nil})
		}

		if dateRange != nil {
			builder = builder.
				Where(squirrel.GtOrEq{"s.sale_date": dateRange.Start.Format(time.DateOnly)}).
				Where(squirrel.LtOrEq{"s.sale_date": dateRange.End.Format(time.DateOnly)})
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		return queryIDs(r.conn, query, args)
	})
}

func scanSale(rows *sql.Rows) (*domain.Sale, error) {
	var (
		sale   domain.Sale
		soldBy sql.NullString
	)

	err := rows.Scan(
		&sale.ID,
		&sale.HouseholdID,
		&sale.SaleDate,
		&sale.PremiumCents,
		&sale.ItemsSold,
		&sale.PoliciesSold,
		&sale.ProductType,
		&soldBy,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if soldBy.Valid {
		sale.SoldBy = &soldBy.String
	}

	return &sale, nil
}

func scanSaleActivity(rows *sql.Rows) (*domain.SaleActivity, error) {
	var (
		activity     domain.SaleActivity
		soldBy       sql.NullString
		leadSourceID sql.NullString
	)

	err := rows.Scan(
		&activity.ID,
		&activity.HouseholdID,
		&activity.SaleDate,
		&activity.PremiumCents,
		&activity.ItemsSold,
		&activity.PoliciesSold,
		&activity.ProductType,
		&soldBy,
		&activity.CreatedAt,
		&leadSourceID,
	)
	if err != nil {
		return nil, err
	}

	if soldBy.Valid {
		activity.SoldBy = &soldBy.String
	}

	if leadSourceID.Valid {
		activity.LeadSourceID = &leadSourceID.String
	}

	return &activity, nil
}
