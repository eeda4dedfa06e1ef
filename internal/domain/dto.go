package domain

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

type OrderStatusType string

const (
	OrderStatusPending   OrderStatusType = "pending"
	OrderStatusConfirmed OrderStatusType = "confirmed"
	OrderStatusPreparing OrderStatusType = "preparing"
	OrderStatusReady     OrderStatusType = "ready"
	OrderStatusServed    OrderStatusType = "served"
	OrderStatusDelivered OrderStatusType = "delivered"
	OrderStatusCompleted OrderStatusType = "completed"
	OrderStatusCancelled OrderStatusType = "cancelled"
)

type PaymentStatusType string

const (
	PaymentStatusPending  PaymentStatusType = "pending"
	PaymentStatusPaid     PaymentStatusType = "paid"
	PaymentStatusFailed   PaymentStatusType = "failed"
	PaymentStatusRefunded PaymentStatusType = "refunded"
)

type ReservationStatusType string

const (
	ReservationStatusPending   ReservationStatusType = "pending"
	ReservationStatusConfirmed ReservationStatusType = "confirmed"
	ReservationStatusSeated    ReservationStatusType = "seated"
	ReservationStatusCompleted ReservationStatusType = "completed"
	ReservationStatusCancelled ReservationStatusType = "cancelled"
)

type TierType string

const (
	TierBronze   TierType = "bronze"
	TierSilver   TierType = "silver"
	TierGold     TierType = "gold"
	TierPlatinum TierType = "platinum"
)

type DirectionType string

const (
	DirectionAdd    DirectionType = "add"
	DirectionDeduct DirectionType = "deduct"
)
