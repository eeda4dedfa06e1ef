package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Staff struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
	FullName  string
}

type Customer struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Phone     string
}

type DiningTable struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Number    int32
	Capacity  int32
	Location  string
}

type Order struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CustomerID     int64
	TableID        *int64
	OrderType      OrderType
	Status         OrderStatusType
	PaymentStatus  PaymentStatusType
	TotalAmount    decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
}

type Reservation struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CustomerID      int64
	TableID         int64
	ReservationDate time.Time
	ReservationTime time.Time
	PartySize       int32
	Status          ReservationStatusType
	SpecialRequests string
}

type LoyaltyProfile struct {
	CustomerID     int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Points         int64
	Tier           TierType
	TierOverridden bool
}

// LoyaltyTransaction хранит каждое изменение баллов как отдельную запись аудита.
// Записи создаются только вместе с изменением баланса и никогда не изменяются.
type LoyaltyTransaction struct {
	ID         int64
	CreatedAt  time.Time
	CustomerID int64
	AdminID    int64
	Direction  DirectionType
	Amount     int64
	Reason     string
}
