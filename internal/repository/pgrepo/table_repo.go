package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/pkg/uow"
)

const tableColumns = `id, created_at, updated_at, number, capacity, location`

type TableRepository struct {
	conn uow.DBTX
}

func NewTableRepository(conn uow.DBTX) *TableRepository {
	return &TableRepository{conn: conn}
}

func (t *TableRepository) Create(
	ctx context.Context,
	number int32,
	capacity int32,
	location string,
) (*domain.DiningTable, error) {
	row := t.conn.QueryRow(
		ctx,
		`INSERT INTO dining_tables (number, capacity, location) VALUES ($1, $2, $3) RETURNING `+tableColumns,
		number, capacity, location,
	)
	table, err := scanTable(row)
	if err != nil {
		return nil, convertErr(err, "creating table with number `%d`", number)
	}
	return table, nil
}

func (t *TableRepository) FindByID(ctx context.Context, id int64) (*domain.DiningTable, error) {
	row := t.conn.QueryRow(ctx, `SELECT `+tableColumns+` FROM dining_tables WHERE id = $1`, id)
	table, err := scanTable(row)
	if err != nil {
		return nil, convertErr(err, "finding table by id `%d`", id)
	}
	return table, nil
}

// FindByIDForUpdate блокирует строку стола. Строка служит ареной сериализации:
// конкурентные создания броней на один стол выстраиваются в очередь на этой блокировке.
// Вызывать только внутри транзакции.
func (t *TableRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.DiningTable, error) {
	row := t.conn.QueryRow(ctx, `SELECT `+tableColumns+` FROM dining_tables WHERE id = $1 FOR UPDATE`, id)
	table, err := scanTable(row)
	if err != nil {
		return nil, convertErr(err, "locking table by id `%d`", id)
	}
	return table, nil
}

func (t *TableRepository) List(ctx context.Context) ([]domain.DiningTable, error) {
	rows, err := t.conn.Query(ctx, `SELECT `+tableColumns+` FROM dining_tables ORDER BY number`)
	if err != nil {
		return nil, convertErr(err, "listing tables")
	}
	defer rows.Close()

	var tables []domain.DiningTable
	for rows.Next() {
		table, scanErr := scanTable(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning table row")
		}
		tables = append(tables, *table)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing tables")
	}
	return tables, nil
}

func (t *TableRepository) Delete(ctx context.Context, id int64) error {
	tag, err := t.conn.Exec(ctx, `DELETE FROM dining_tables WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting table `%d`", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting table `%d`", id)
	}
	return nil
}

func scanTable(row pgx.Row) (*domain.DiningTable, error) {
	var table domain.DiningTable
	if err := row.Scan(
		&table.ID,
		&table.CreatedAt,
		&table.UpdatedAt,
		&table.Number,
		&table.Capacity,
		&table.Location,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &table, nil
}
