// Copyright (c) 2026 AutoVault. All rights reserved.

/*
PostgreSQL implementation of the car inventory data access layer.

It leans on a few Postgres capabilities to keep the discovery path fast:
  - Set Operations: Uses ANY($n) binding for multi-value facet filters.
  - ILIKE Escaping: Search input is escaped so patterns match literally.
  - Aggregate Pushdown: Price ranges, facet counts, and fleet stats are
    computed database-side with FILTER clauses and GROUP BY.

All filtered queries are assembled by a single shared WHERE builder so the
listing, count, and aggregate reads always agree on the matching set.
*/

package car

import (
	"context"
	"fmt"
	"strings"

	"github.com/autovault/autovault/internal/platform/database/schema"
	"github.com/autovault/autovault/internal/platform/dberr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// # PostgreSQL Repository

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed car store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// selectColumns is the shared projection for hydrating a [Car] with its
// denormalized dealer reference.
func selectColumns() string {
	car := schema.CoreCar
	dealer := schema.CoreDealer
	return fmt.Sprintf(`
		c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
		c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
		c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
		COALESCE(d.%s, ''), COALESCE(d.%s, '')`,
		car.ID, car.Slug, car.Title, car.Make, car.Model, car.Year, car.Price, car.Mileage,
		car.Tag, car.Images, car.Transmission, car.FuelType, car.DriveType, car.Color, car.Seats, car.Features,
		car.Engine, car.Description, car.Video, car.MapURL, car.DealerID, car.Status, car.Views, car.Favorites, car.CreatedAt, car.UpdatedAt,
		dealer.Name, dealer.Avatar,
	)
}

// fromClause joins the dealer table so dealer names are available both for
// display and for free-text search.
func fromClause() string {
	return fmt.Sprintf("FROM %s c LEFT JOIN %s d ON c.%s = d.%s",
		schema.CoreCar.Table, schema.CoreDealer.Table,
		schema.CoreCar.DealerID, schema.CoreDealer.ID,
	)
}

/*
buildWhere assembles the dynamic WHERE clause for a [Filter].

Description: Every filtered read path (List, Count, PriceRange, FacetCounts)
funnels through this builder, guaranteeing that the page of rows and the
aggregates describe the same matching set. Multi-value attributes bind as
array ANY comparisons; search text is escaped and matched as a literal
case-insensitive substring across make, model, description, and dealer name.

Parameters:
  - filter: Filter (Normalised criteria)
  - argID: int (Next positional parameter index)

Returns:
  - string: WHERE clause starting with " WHERE 1=1"
  - []any: Positional arguments in clause order
  - int: Next free positional parameter index
*/
func buildWhere(filter Filter, argID int) (string, []any, int) {
	car := schema.CoreCar
	dealer := schema.CoreDealer

	var clause strings.Builder
	var args []any
	clause.WriteString(" WHERE 1=1")

	// Multi-value facet constraints
	if len(filter.Makes) > 0 {
		clause.WriteString(fmt.Sprintf(" AND c.%s = ANY($%d)", car.Make, argID))
		args = append(args, filter.Makes)
		argID++
	}

	if len(filter.Models) > 0 {
		clause.WriteString(fmt.Sprintf(" AND c.%s = ANY($%d)", car.Model, argID))
		args = append(args, filter.Models)
		argID++
	}

	if len(filter.Colors) > 0 {
		clause.WriteString(fmt.Sprintf(" AND c.%s = ANY($%d)", car.Color, argID))
		args = append(args, filter.Colors)
		argID++
	}

	if len(filter.Seats) > 0 {
		clause.WriteString(fmt.Sprintf(" AND c.%s = ANY($%d)", car.Seats, argID))
		args = append(args, filter.Seats)
		argID++
	}

	// Independent price bounds
	if filter.MinPrice != nil {
		clause.WriteString(fmt.Sprintf(" AND c.%s >= $%d", car.Price, argID))
		args = append(args, *filter.MinPrice)
		argID++
	}

	if filter.MaxPrice != nil {
		clause.WriteString(fmt.Sprintf(" AND c.%s <= $%d", car.Price, argID))
		args = append(args, *filter.MaxPrice)
		argID++
	}

	// Availability scoping
	if filter.Status != "" {
		clause.WriteString(fmt.Sprintf(" AND c.%s = $%d", car.Status, argID))
		args = append(args, string(filter.Status))
		argID++
	}

	// Literal case-insensitive substring search
	if filter.HasSearch() {
		clause.WriteString(fmt.Sprintf(
			" AND (c.%s ILIKE $%d OR c.%s ILIKE $%d OR c.%s ILIKE $%d OR d.%s ILIKE $%d)",
			car.Make, argID, car.Model, argID, car.Description, argID, dealer.Name, argID,
		))
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		argID++
	}

	return clause.String(), args, argID
}

// orderColumn maps a resolved [Ordering] to its physical column.
func orderColumn(ordering Ordering) string {
	car := schema.CoreCar
	switch ordering.Column {
	case FieldPrice:
		return car.Price
	case FieldMileage:
		return car.Mileage
	case "views":
		return car.Views
	case "favorites":
		return car.Favorites
	default:
		return car.CreatedAt
	}
}

// # Read Paths

// List implements [Repository].
func (repository *repository) List(context context.Context, filter Filter, ordering Ordering, limit, offset int) ([]*Car, error) {

	// Shared matching set assembly
	where, args, argID := buildWhere(filter, 1)

	direction := "ASC"
	if ordering.Descending {
		direction = "DESC"
	}

	// Secondary id tiebreak keeps pagination stable across equal sort keys
	query := fmt.Sprintf("SELECT %s %s%s ORDER BY c.%s %s, c.%s DESC LIMIT $%d OFFSET $%d",
		selectColumns(), fromClause(), where,
		orderColumn(ordering), direction, schema.CoreCar.ID,
		argID, argID+1,
	)
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list cars")
	}
	defer rows.Close()

	var cars []*Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan car row")
		}
		cars = append(cars, car)
	}

	return cars, rows.Err()
}

// Count implements [Repository].
func (repository *repository) Count(context context.Context, filter Filter) (int, error) {
	where, args, _ := buildWhere(filter, 1)
	query := fmt.Sprintf("SELECT COUNT(*) %s%s", fromClause(), where)

	var total int
	if err := repository.pool.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count cars")
	}

	return total, nil
}

// PriceRange implements [Repository]. An empty matching set yields the
// zero range rather than an error.
func (repository *repository) PriceRange(context context.Context, filter Filter) (PriceRange, error) {
	where, args, _ := buildWhere(filter, 1)
	query := fmt.Sprintf("SELECT COALESCE(MIN(c.%s), 0), COALESCE(MAX(c.%s), 0) %s%s",
		schema.CoreCar.Price, schema.CoreCar.Price, fromClause(), where,
	)

	var priceRange PriceRange
	if err := repository.pool.QueryRow(context, query, args...).Scan(&priceRange.Min, &priceRange.Max); err != nil {
		return PriceRange{}, dberr.Wrap(err, "aggregate price range")
	}

	return priceRange, nil
}

// FindBySlug implements [Repository].
func (repository *repository) FindBySlug(context context.Context, slug string) (*Car, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE c.%s = $1",
		selectColumns(), fromClause(), schema.CoreCar.Slug,
	)

	car, err := scanCar(repository.pool.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "find car by slug")
	}

	return car, nil
}

// FindByID implements [Repository].
func (repository *repository) FindByID(context context.Context, id string) (*Car, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE c.%s = $1",
		selectColumns(), fromClause(), schema.CoreCar.ID,
	)

	car, err := scanCar(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find car by id")
	}

	return car, nil
}

// Related implements [Repository].
func (repository *repository) Related(context context.Context, car *Car, limit int) ([]*Car, error) {
	table := schema.CoreCar

	query := fmt.Sprintf(`SELECT %s %s
		WHERE c.%s = $1 AND c.%s <> $2 AND c.%s = $3 AND c.%s BETWEEN $4 AND $5
		ORDER BY c.%s DESC LIMIT $6`,
		selectColumns(), fromClause(),
		table.Make, table.ID, table.Status, table.Price,
		table.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query,
		car.Make, car.ID, string(StatusAvailable),
		car.Price*0.8, car.Price*1.2, limit,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "list related cars")
	}
	defer rows.Close()

	var related []*Car
	for rows.Next() {
		match, err := scanCar(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan related car")
		}
		related = append(related, match)
	}

	return related, rows.Err()
}

// # Facets & Aggregates

// DistinctFacets implements [Repository].
func (repository *repository) DistinctFacets(context context.Context) (FacetValues, error) {
	table := schema.CoreCar
	facets := FacetValues{}

	var err error
	if facets.Makes, err = repository.distinctStrings(context, table.Make); err != nil {
		return FacetValues{}, err
	}
	if facets.Models, err = repository.distinctStrings(context, table.Model); err != nil {
		return FacetValues{}, err
	}
	if facets.Colors, err = repository.distinctStrings(context, table.Color); err != nil {
		return FacetValues{}, err
	}
	if facets.FuelTypes, err = repository.distinctStrings(context, table.FuelType); err != nil {
		return FacetValues{}, err
	}

	// Seats sort numerically at the database level
	rows, err := repository.pool.Query(context, fmt.Sprintf(
		"SELECT DISTINCT %s FROM %s ORDER BY %s", table.Seats, table.Table, table.Seats,
	))
	if err != nil {
		return FacetValues{}, dberr.Wrap(err, "list seat facets")
	}
	defer rows.Close()

	for rows.Next() {
		var seats int
		if err := rows.Scan(&seats); err != nil {
			return FacetValues{}, dberr.Wrap(err, "scan seat facet")
		}
		facets.Seats = append(facets.Seats, seats)
	}

	return facets, rows.Err()
}

// distinctStrings returns the sorted distinct values of a text column.
func (repository *repository) distinctStrings(context context.Context, column string) ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s <> '' ORDER BY %s",
		column, schema.CoreCar.Table, column, column,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list distinct "+column)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, dberr.Wrap(err, "scan distinct "+column)
		}
		values = append(values, value)
	}

	return values, rows.Err()
}

// FacetCounts implements [Repository].
func (repository *repository) FacetCounts(context context.Context, filter Filter) (FacetCounts, error) {
	table := schema.CoreCar
	counts := FacetCounts{}

	var err error
	if counts.Makes, err = repository.countsBy(context, table.Make, filter); err != nil {
		return FacetCounts{}, err
	}
	if counts.Models, err = repository.countsBy(context, table.Model, filter); err != nil {
		return FacetCounts{}, err
	}
	if counts.Colors, err = repository.countsBy(context, table.Color, filter); err != nil {
		return FacetCounts{}, err
	}
	if counts.FuelTypes, err = repository.countsBy(context, table.FuelType, filter); err != nil {
		return FacetCounts{}, err
	}

	return counts, nil
}

// countsBy groups the filtered set by a column and counts each group.
func (repository *repository) countsBy(context context.Context, column string, filter Filter) (map[string]int, error) {
	where, args, _ := buildWhere(filter, 1)
	query := fmt.Sprintf("SELECT c.%s, COUNT(*) %s%s GROUP BY c.%s",
		column, fromClause(), where, column,
	)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "count by "+column)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return nil, dberr.Wrap(err, "scan count by "+column)
		}
		counts[value] = count
	}

	return counts, rows.Err()
}

// Stats implements [Repository].
func (repository *repository) Stats(context context.Context) (Stats, error) {
	table := schema.CoreCar

	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE %s = $1),
			COUNT(*) FILTER (WHERE %s = $2),
			COALESCE(AVG(%s), 0),
			COALESCE(AVG(%s), 0),
			COALESCE(SUM(%s), 0)
		FROM %s`,
		table.Status, table.Status, table.Price, table.Mileage, table.Views, table.Table,
	)

	var stats Stats
	err := repository.pool.QueryRow(context, query, string(StatusAvailable), string(StatusSold)).Scan(
		&stats.TotalCars,
		&stats.AvailableCars,
		&stats.SoldCars,
		&stats.AveragePrice,
		&stats.AverageMileage,
		&stats.TotalViews,
	)
	if err != nil {
		return Stats{}, dberr.Wrap(err, "aggregate fleet stats")
	}

	return stats, nil
}

// # Write Paths

// Create implements [Repository].
func (repository *repository) Create(context context.Context, car *Car) error {
	table := schema.CoreCar

	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`,
		table.Table,
		table.ID, table.Slug, table.Title, table.Make, table.Model, table.Year, table.Price, table.Mileage,
		table.Tag, table.Images, table.Transmission, table.FuelType, table.DriveType, table.Color, table.Seats, table.Features,
		table.Engine, table.Description, table.Video, table.MapURL, table.DealerID, table.Status,
	)

	_, err := repository.pool.Exec(context, query,
		car.ID, car.Slug, car.Title, car.Make, car.Model, car.Year, car.Price, car.Mileage,
		car.Tag, car.Images, car.Transmission, car.FuelType, car.DriveType, car.Color, car.Seats, car.Features,
		car.Engine, car.Description, car.Video, car.MapURL, car.Dealer.ID, car.Status,
	)
	if err != nil {
		return dberr.Wrap(err, "create car")
	}

	return nil
}

// Update implements [Repository]. Only populated fields overwrite existing
// column values, mirroring the PATCH semantics of the admin endpoint.
func (repository *repository) Update(context context.Context, car *Car) error {
	table := schema.CoreCar

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", table.Table, table.UpdatedAt))

	var args []any
	argID := 1

	set := func(column string, value any) {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if car.Slug != "" {
		set(table.Slug, car.Slug)
	}
	if car.Title != "" {
		set(table.Title, car.Title)
	}
	if car.Make != "" {
		set(table.Make, car.Make)
	}
	if car.Model != "" {
		set(table.Model, car.Model)
	}
	if car.Year != 0 {
		set(table.Year, car.Year)
	}
	if car.Price != 0 {
		set(table.Price, car.Price)
	}
	if car.Mileage != 0 {
		set(table.Mileage, car.Mileage)
	}
	if car.Tag != "" {
		set(table.Tag, car.Tag)
	}
	if len(car.Images) > 0 {
		set(table.Images, car.Images)
	}
	if car.Transmission != "" {
		set(table.Transmission, car.Transmission)
	}
	if car.FuelType != "" {
		set(table.FuelType, car.FuelType)
	}
	if car.DriveType != "" {
		set(table.DriveType, car.DriveType)
	}
	if car.Color != "" {
		set(table.Color, car.Color)
	}
	if car.Seats != 0 {
		set(table.Seats, car.Seats)
	}
	if len(car.Features) > 0 {
		set(table.Features, car.Features)
	}
	if car.Engine != "" {
		set(table.Engine, car.Engine)
	}
	if car.Description != "" {
		set(table.Description, car.Description)
	}
	if car.Video != "" {
		set(table.Video, car.Video)
	}
	if car.MapURL != "" {
		set(table.MapURL, car.MapURL)
	}
	if car.Dealer.ID != "" {
		set(table.DealerID, car.Dealer.ID)
	}
	if car.Status != "" {
		set(table.Status, car.Status)
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d", table.ID, argID))
	args = append(args, car.ID)

	result, err := repository.pool.Exec(context, queryBuilder.String(), args...)
	if err != nil {
		return dberr.Wrap(err, "update car")
	}

	if result.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "update car")
	}

	return nil
}

// IncrementViews implements [Repository]. The counter bump happens database
// side so concurrent detail views never lose updates.
func (repository *repository) IncrementViews(context context.Context, id string) error {
	table := schema.CoreCar

	query := fmt.Sprintf("UPDATE %s SET %s = %s + 1 WHERE %s = $1",
		table.Table, table.Views, table.Views, table.ID,
	)

	if _, err := repository.pool.Exec(context, query, id); err != nil {
		return dberr.Wrap(err, "increment car views")
	}

	return nil
}

// # Row Hydration

// rowScanner is the subset of pgx row types used by scanCar.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCar hydrates a [Car] from the shared selectColumns projection.
func scanCar(row rowScanner) (*Car, error) {
	car := &Car{}
	err := row.Scan(
		&car.ID,
		&car.Slug,
		&car.Title,
		&car.Make,
		&car.Model,
		&car.Year,
		&car.Price,
		&car.Mileage,
		&car.Tag,
		&car.Images,
		&car.Transmission,
		&car.FuelType,
		&car.DriveType,
		&car.Color,
		&car.Seats,
		&car.Features,
		&car.Engine,
		&car.Description,
		&car.Video,
		&car.MapURL,
		&car.Dealer.ID,
		&car.Status,
		&car.Views,
		&car.Favorites,
		&car.CreatedAt,
		&car.UpdatedAt,
		&car.Dealer.Name,
		&car.Dealer.Avatar,
	)
	if err != nil {
		return nil, err
	}
	return car, nil
}
