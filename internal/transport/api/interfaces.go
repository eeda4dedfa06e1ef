package api

import (
	"context"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type StaffServicer interface {
	Login(ctx context.Context, username, password string) (*domain.Staff, string, error)
}

type OrderServicer interface {
	UpdateStatus(
		ctx context.Context,
		adminID int64,
		orderID int64,
		newStatus domain.OrderStatusType,
		force bool,
	) (*domain.Order, error)
	UpdatePaymentStatus(
		ctx context.Context,
		adminID int64,
		orderID int64,
		newStatus domain.PaymentStatusType,
		force bool,
	) (*domain.Order, error)
	GetByID(ctx context.Context, orderID int64) (*domain.Order, error)
	List(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error)
}

type ReservationServicer interface {
	Create(ctx context.Context, adminID int64, args service.CreateReservationArgs) (*domain.Reservation, error)
	UpdateStatus(
		ctx context.Context,
		adminID int64,
		reservationID int64,
		newStatus domain.ReservationStatusType,
	) (*domain.Reservation, error)
	GetByID(ctx context.Context, reservationID int64) (*domain.Reservation, error)
	List(ctx context.Context, filter repoargs.ReservationFilter) ([]domain.Reservation, error)
}

type LoyaltyServicer interface {
	AdjustPoints(ctx context.Context, adminID int64, args service.AdjustPointsArgs) (*domain.LoyaltyProfile, error)
	SetTierOverride(
		ctx context.Context,
		adminID int64,
		customerID int64,
		tier domain.TierType,
	) (*domain.LoyaltyProfile, error)
	GetProfile(ctx context.Context, customerID int64) (*service.ProfileView, error)
	GetTransactions(ctx context.Context, customerID int64) ([]domain.LoyaltyTransaction, error)
}

type TableServicer interface {
	Create(ctx context.Context, number int32, capacity int32, location string) (*domain.DiningTable, error)
	GetByID(ctx context.Context, id int64) (*domain.DiningTable, error)
	List(ctx context.Context) ([]domain.DiningTable, error)
	Delete(ctx context.Context, id int64) error
}
