// Copyright (c) 2026 AutoVault. All rights reserved.

package dealer

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autovault/autovault/internal/platform/database/schema"
	"github.com/autovault/autovault/internal/platform/dberr"
)

// # PostgreSQL Repository

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed dealer store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// selectColumns is the shared projection for hydrating a [Dealer].
func selectColumns() string {
	table := schema.CoreDealer
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		table.ID, table.Name, table.Email, table.Phone,
		table.Avatar, table.Location, table.CreatedAt, table.UpdatedAt,
	)
}

// List implements [Repository].
func (repository *repository) List(context context.Context) ([]*Dealer, error) {
	table := schema.CoreDealer

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", selectColumns(), table.Table, table.Name)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list dealers")
	}
	defer rows.Close()

	var dealers []*Dealer
	for rows.Next() {
		dealer := &Dealer{}
		err := rows.Scan(
			&dealer.ID, &dealer.Name, &dealer.Email, &dealer.Phone,
			&dealer.Avatar, &dealer.Location, &dealer.CreatedAt, &dealer.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan dealer row")
		}
		dealers = append(dealers, dealer)
	}

	return dealers, rows.Err()
}

// FindByID implements [Repository].
func (repository *repository) FindByID(context context.Context, id string) (*Dealer, error) {
	table := schema.CoreDealer

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", selectColumns(), table.Table, table.ID)

	dealer := &Dealer{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&dealer.ID, &dealer.Name, &dealer.Email, &dealer.Phone,
		&dealer.Avatar, &dealer.Location, &dealer.CreatedAt, &dealer.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find dealer by id")
	}

	return dealer, nil
}
