// Copyright (c) 2026 AutoVault. All rights reserved.

package inquiry

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autovault/autovault/internal/platform/database/schema"
	"github.com/autovault/autovault/internal/platform/dberr"
)

// # PostgreSQL Repository

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed inquiry store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// selectColumns is the shared projection for hydrating an [Inquiry].
func selectColumns() string {
	table := schema.CRMInquiry
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		table.ID, table.Name, table.Email, table.Phone, table.Message,
		table.CarID, table.CarName, table.Status, table.CreatedAt, table.UpdatedAt,
	)
}

// scanInquiry hydrates an [Inquiry] from the shared projection.
func scanInquiry(row pgx.Row) (*Inquiry, error) {
	inquiry := &Inquiry{}
	err := row.Scan(
		&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.Message,
		&inquiry.CarID, &inquiry.CarName, &inquiry.Status, &inquiry.CreatedAt, &inquiry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inquiry, nil
}

// Create implements [Repository].
func (repository *repository) Create(context context.Context, inquiry *Inquiry) error {
	table := schema.CRMInquiry

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		table.Table,
		table.ID, table.Name, table.Email, table.Phone,
		table.Message, table.CarID, table.CarName, table.Status,
	)

	_, err := repository.pool.Exec(context, query,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Phone,
		inquiry.Message, inquiry.CarID, inquiry.CarName, inquiry.Status,
	)
	if err != nil {
		return dberr.Wrap(err, "create inquiry")
	}

	return nil
}

// FindByID implements [Repository].
func (repository *repository) FindByID(context context.Context, id string) (*Inquiry, error) {
	table := schema.CRMInquiry

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", selectColumns(), table.Table, table.ID)

	inquiry, err := scanInquiry(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find inquiry by id")
	}

	return inquiry, nil
}

// ListByCar implements [Repository].
func (repository *repository) ListByCar(context context.Context, carID string) ([]*Inquiry, error) {
	table := schema.CRMInquiry

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC",
		selectColumns(), table.Table, table.CarID, table.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, carID)
	if err != nil {
		return nil, dberr.Wrap(err, "list inquiries by car")
	}
	defer rows.Close()

	var inquiries []*Inquiry
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan inquiry row")
		}
		inquiries = append(inquiries, inquiry)
	}

	return inquiries, rows.Err()
}

// UpdateStatus implements [Repository].
func (repository *repository) UpdateStatus(context context.Context, id string, status Status) error {
	table := schema.CRMInquiry

	query := fmt.Sprintf("UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2",
		table.Table, table.Status, table.UpdatedAt, table.ID,
	)

	result, err := repository.pool.Exec(context, query, status, id)
	if err != nil {
		return dberr.Wrap(err, "update inquiry status")
	}

	if result.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "update inquiry status")
	}

	return nil
}
