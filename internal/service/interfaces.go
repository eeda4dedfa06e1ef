package service

import (
	"context"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type OrderRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatusType) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatusType) (*domain.Order, error)
	List(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, args repoargs.ReservationCreate) (*domain.Reservation, error)
	FindByID(ctx context.Context, id int64) (*domain.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatusType) (*domain.Reservation, error)
	FindConflicting(ctx context.Context, q repoargs.ReservationConflictQuery) (*domain.Reservation, error)
	CountActiveByTableID(ctx context.Context, tableID int64) (int64, error)
	List(ctx context.Context, filter repoargs.ReservationFilter) ([]domain.Reservation, error)
}

type TableRepository interface {
	Create(ctx context.Context, number int32, capacity int32, location string) (*domain.DiningTable, error)
	FindByID(ctx context.Context, id int64) (*domain.DiningTable, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.DiningTable, error)
	List(ctx context.Context) ([]domain.DiningTable, error)
	Delete(ctx context.Context, id int64) error
}

type LoyaltyRepository interface {
	FindByCustomerID(ctx context.Context, customerID int64) (*domain.LoyaltyProfile, error)
	FindByCustomerIDForUpdate(ctx context.Context, customerID int64) (*domain.LoyaltyProfile, error)
	UpdateProfile(ctx context.Context, args repoargs.LoyaltyProfileUpdate) (*domain.LoyaltyProfile, error)
	CreateTransaction(ctx context.Context, args repoargs.LoyaltyTransactionCreate) (*domain.LoyaltyTransaction, error)
	ListTransactions(ctx context.Context, customerID int64) ([]domain.LoyaltyTransaction, error)
}

type StaffRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Staff, error)
}
