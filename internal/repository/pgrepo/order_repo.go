package pgrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/pkg/uow"
)

// Суммы храним в numeric, наружу отдаем text чтобы распарсить в decimal без потерь.
const orderColumns = `id, created_at, updated_at, customer_id, table_id, order_type, status, payment_status,
total_amount::text, tax_amount::text, discount_amount::text, final_amount::text`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by id `%d`", id)
	}
	return order, nil
}

// FindByIDForUpdate читает заказ под блокировкой строки. Вызывать только внутри транзакции.
func (o *OrderRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "locking order by id `%d`", id)
	}
	return order, nil
}

func (o *OrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.OrderStatusType,
) (*domain.Order, error) {
	row := o.conn.QueryRow(
		ctx,
		`UPDATE orders SET status = $1, updated_at = now() WHERE id = $2 RETURNING `+orderColumns,
		string(status), id,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating status for order `%d`", id)
	}
	return order, nil
}

func (o *OrderRepository) UpdatePaymentStatus(
	ctx context.Context,
	id int64,
	status domain.PaymentStatusType,
) (*domain.Order, error) {
	row := o.conn.QueryRow(
		ctx,
		`UPDATE orders SET payment_status = $1, updated_at = now() WHERE id = $2 RETURNING `+orderColumns,
		string(status), id,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating payment status for order `%d`", id)
	}
	return order, nil
}

// List возвращает заказы по фильтру, отсортированные по дате создания по убыванию.
func (o *OrderRepository) List(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	var args []any
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		query += fmt.Sprintf(` AND customer_id = $%d`, len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := o.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "listing orders")
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning order row")
		}
		orders = append(orders, *order)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing orders")
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var total, tax, discount, final string

	if err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.CustomerID,
		&order.TableID,
		&order.OrderType,
		&order.Status,
		&order.PaymentStatus,
		&total,
		&tax,
		&discount,
		&final,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}

	for _, pair := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&order.TotalAmount, total},
		{&order.TaxAmount, tax},
		{&order.DiscountAmount, discount},
		{&order.FinalAmount, final},
	} {
		d, dErr := decimal.NewFromString(pair.src)
		if dErr != nil {
			return nil, fmt.Errorf("parsing order amount `%s`: %w", pair.src, dErr)
		}
		*pair.dst = d
	}
	return &order, nil
}
