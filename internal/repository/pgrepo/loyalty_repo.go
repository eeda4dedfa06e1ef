package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/pkg/uow"
)

const loyaltyProfileColumns = `customer_id, created_at, updated_at, points, tier, tier_overridden`

type LoyaltyRepository struct {
	conn uow.DBTX
}

func NewLoyaltyRepository(conn uow.DBTX) *LoyaltyRepository {
	return &LoyaltyRepository{conn: conn}
}

func (l *LoyaltyRepository) FindByCustomerID(ctx context.Context, customerID int64) (*domain.LoyaltyProfile, error) {
	row := l.conn.QueryRow(
		ctx,
		`SELECT `+loyaltyProfileColumns+` FROM loyalty_profiles WHERE customer_id = $1`,
		customerID,
	)
	profile, err := scanLoyaltyProfile(row)
	if err != nil {
		return nil, convertErr(err, "finding loyalty profile for customer `%d`", customerID)
	}
	return profile, nil
}

// FindByCustomerIDForUpdate читает профиль под блокировкой строки. Блокировка сериализует
// конкурентные списания и закрывает гонку потерянного обновления баланса.
// Вызывать только внутри транзакции.
func (l *LoyaltyRepository) FindByCustomerIDForUpdate(
	ctx context.Context,
	customerID int64,
) (*domain.LoyaltyProfile, error) {
	row := l.conn.QueryRow(
		ctx,
		`SELECT `+loyaltyProfileColumns+` FROM loyalty_profiles WHERE customer_id = $1 FOR UPDATE`,
		customerID,
	)
	profile, err := scanLoyaltyProfile(row)
	if err != nil {
		return nil, convertErr(err, "locking loyalty profile for customer `%d`", customerID)
	}
	return profile, nil
}

func (l *LoyaltyRepository) UpdateProfile(
	ctx context.Context,
	args repoargs.LoyaltyProfileUpdate,
) (*domain.LoyaltyProfile, error) {
	row := l.conn.QueryRow(
		ctx,
		`UPDATE loyalty_profiles
		SET points = $1, tier = $2, tier_overridden = $3, updated_at = now()
		WHERE customer_id = $4
		RETURNING `+loyaltyProfileColumns,
		args.Points,
		string(args.Tier),
		args.TierOverridden,
		args.CustomerID,
	)
	profile, err := scanLoyaltyProfile(row)
	if err != nil {
		return nil, convertErr(err, "updating loyalty profile for customer `%d`", args.CustomerID)
	}
	return profile, nil
}

func (l *LoyaltyRepository) CreateTransaction(
	ctx context.Context,
	args repoargs.LoyaltyTransactionCreate,
) (*domain.LoyaltyTransaction, error) {
	row := l.conn.QueryRow(
		ctx,
		`INSERT INTO loyalty_point_transactions (customer_id, admin_id, direction, amount, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, customer_id, admin_id, direction, amount, reason`,
		args.CustomerID,
		args.AdminID,
		string(args.Direction),
		args.Amount,
		args.Reason,
	)

	var transaction domain.LoyaltyTransaction
	if err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.CustomerID,
		&transaction.AdminID,
		&transaction.Direction,
		&transaction.Amount,
		&transaction.Reason,
	); err != nil {
		return nil, convertErr(err, "creating loyalty transaction for customer `%d`", args.CustomerID)
	}
	return &transaction, nil
}

// ListTransactions возвращает историю изменений баллов по убыванию даты.
func (l *LoyaltyRepository) ListTransactions(
	ctx context.Context,
	customerID int64,
) ([]domain.LoyaltyTransaction, error) {
	rows, err := l.conn.Query(
		ctx,
		`SELECT id, created_at, customer_id, admin_id, direction, amount, reason
		FROM loyalty_point_transactions
		WHERE customer_id = $1
		ORDER BY created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, convertErr(err, "listing loyalty transactions for customer `%d`", customerID)
	}
	defer rows.Close()

	var transactions []domain.LoyaltyTransaction
	for rows.Next() {
		var transaction domain.LoyaltyTransaction
		if scanErr := rows.Scan(
			&transaction.ID,
			&transaction.CreatedAt,
			&transaction.CustomerID,
			&transaction.AdminID,
			&transaction.Direction,
			&transaction.Amount,
			&transaction.Reason,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning loyalty transaction row")
		}
		transactions = append(transactions, transaction)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing loyalty transactions for customer `%d`", customerID)
	}
	return transactions, nil
}

func scanLoyaltyProfile(row pgx.Row) (*domain.LoyaltyProfile, error) {
	var profile domain.LoyaltyProfile
	if err := row.Scan(
		&profile.CustomerID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&profile.Points,
		&profile.Tier,
		&profile.TierOverridden,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &profile, nil
}
