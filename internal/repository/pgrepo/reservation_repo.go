package pgrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/pkg/uow"
)

const timeOfDayLayout = "15:04:05"

// Время брони отдаем как полный timestamp (дата + время) чтобы сканировать в time.Time.
const reservationColumns = `id, created_at, updated_at, customer_id, table_id, reservation_date,
(reservation_date + reservation_time)::timestamp, party_size, status, special_requests`

type ReservationRepository struct {
	conn uow.DBTX
}

func NewReservationRepository(conn uow.DBTX) *ReservationRepository {
	return &ReservationRepository{conn: conn}
}

func (r *ReservationRepository) Create(
	ctx context.Context,
	args repoargs.ReservationCreate,
) (*domain.Reservation, error) {
	row := r.conn.QueryRow(
		ctx,
		`INSERT INTO reservations
			(customer_id, table_id, reservation_date, reservation_time, party_size, status, special_requests)
		VALUES ($1, $2, $3::date, $4::time, $5, $6, $7)
		RETURNING `+reservationColumns,
		args.CustomerID,
		args.TableID,
		args.Date.Format("2006-01-02"),
		args.Time.Format(timeOfDayLayout),
		args.PartySize,
		string(domain.ReservationStatusPending),
		args.SpecialRequests,
	)
	reservation, err := scanReservation(row)
	if err != nil {
		return nil, convertErr(err, "creating reservation for table `%d`", args.TableID)
	}
	return reservation, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
	reservation, err := scanReservation(row)
	if err != nil {
		return nil, convertErr(err, "finding reservation by id `%d`", id)
	}
	return reservation, nil
}

// FindByIDForUpdate читает бронь под блокировкой строки. Вызывать только внутри транзакции.
func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Reservation, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1 FOR UPDATE`, id)
	reservation, err := scanReservation(row)
	if err != nil {
		return nil, convertErr(err, "locking reservation by id `%d`", id)
	}
	return reservation, nil
}

func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.ReservationStatusType,
) (*domain.Reservation, error) {
	row := r.conn.QueryRow(
		ctx,
		`UPDATE reservations SET status = $1, updated_at = now() WHERE id = $2 RETURNING `+reservationColumns,
		string(status), id,
	)
	reservation, err := scanReservation(row)
	if err != nil {
		return nil, convertErr(err, "updating status for reservation `%d`", id)
	}
	return reservation, nil
}

// FindConflicting ищет активную бронь того же стола на ту же дату, чье время отстоит
// от запрошенного меньше чем на интервал оборота. Возвращает ErrRecordNotFound если
// пересечений нет. Корректный результат гарантирован только под блокировкой стола.
func (r *ReservationRepository) FindConflicting(
	ctx context.Context,
	q repoargs.ReservationConflictQuery,
) (*domain.Reservation, error) {
	statuses := make([]string, 0, len(domain.ActiveReservationStatuses()))
	for _, s := range domain.ActiveReservationStatuses() {
		statuses = append(statuses, string(s))
	}

	row := r.conn.QueryRow(
		ctx,
		`SELECT `+reservationColumns+` FROM reservations
		WHERE table_id = $1
			AND reservation_date = $2::date
			AND status = ANY($3)
			AND ABS(EXTRACT(EPOCH FROM (reservation_time - $4::time))) < $5
		ORDER BY reservation_time
		LIMIT 1`,
		q.TableID,
		q.Date.Format("2006-01-02"),
		statuses,
		q.Time.Format(timeOfDayLayout),
		q.Turnover.Seconds(),
	)
	reservation, err := scanReservation(row)
	if err != nil {
		return nil, convertErr(err, "finding conflicting reservation for table `%d`", q.TableID)
	}
	return reservation, nil
}

// CountActiveByTableID возвращает количество активных броней стола.
func (r *ReservationRepository) CountActiveByTableID(ctx context.Context, tableID int64) (int64, error) {
	statuses := make([]string, 0, len(domain.ActiveReservationStatuses()))
	for _, s := range domain.ActiveReservationStatuses() {
		statuses = append(statuses, string(s))
	}

	var count int64
	err := r.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM reservations WHERE table_id = $1 AND status = ANY($2)`,
		tableID, statuses,
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting active reservations for table `%d`", tableID)
	}
	return count, nil
}

// List возвращает брони по фильтру, отсортированные по дате и времени.
func (r *ReservationRepository) List(
	ctx context.Context,
	filter repoargs.ReservationFilter,
) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`
	var args []any
	if filter.Date != nil {
		args = append(args, filter.Date.Format("2006-01-02"))
		query += fmt.Sprintf(` AND reservation_date = $%d::date`, len(args))
	}
	if filter.TableID != nil {
		args = append(args, *filter.TableID)
		query += fmt.Sprintf(` AND table_id = $%d`, len(args))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		args = append(args, statuses)
		query += fmt.Sprintf(` AND status = ANY($%d)`, len(args))
	}
	query += ` ORDER BY reservation_date, reservation_time`

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "listing reservations")
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		reservation, scanErr := scanReservation(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning reservation row")
		}
		reservations = append(reservations, *reservation)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing reservations")
	}
	return reservations, nil
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := row.Scan(
		&reservation.ID,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
		&reservation.CustomerID,
		&reservation.TableID,
		&reservation.ReservationDate,
		&reservation.ReservationTime,
		&reservation.PartySize,
		&reservation.Status,
		&reservation.SpecialRequests,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &reservation, nil
}
