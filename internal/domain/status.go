package domain

// Таблицы допустимых переходов статусов. Пустой срез означает терминальный статус.
// Любой статус, отсутствующий в таблице, считается невалидным значением enum.

var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusServed, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusServed:    {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusDelivered: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

var paymentTransitions = map[PaymentStatusType][]PaymentStatusType{
	PaymentStatusPending:  {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusPaid:     {PaymentStatusRefunded},
	PaymentStatusFailed:   {},
	PaymentStatusRefunded: {},
}

var reservationTransitions = map[ReservationStatusType][]ReservationStatusType{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusSeated, ReservationStatusCancelled},
	ReservationStatusSeated:    {ReservationStatusCompleted, ReservationStatusCancelled},
	ReservationStatusCompleted: {},
	ReservationStatusCancelled: {},
}

func (s OrderStatusType) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal возвращает true для статусов, из которых запрещены любые переходы.
func (s OrderStatusType) Terminal() bool {
	targets, ok := orderTransitions[s]
	return ok && len(targets) == 0
}

// CanTransitionTo проверяет переход по таблице. Для неизвестных значений всегда false.
func (s OrderStatusType) CanTransitionTo(to OrderStatusType) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s PaymentStatusType) Valid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

func (s PaymentStatusType) Terminal() bool {
	targets, ok := paymentTransitions[s]
	return ok && len(targets) == 0
}

func (s PaymentStatusType) CanTransitionTo(to PaymentStatusType) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s ReservationStatusType) Valid() bool {
	_, ok := reservationTransitions[s]
	return ok
}

func (s ReservationStatusType) Terminal() bool {
	targets, ok := reservationTransitions[s]
	return ok && len(targets) == 0
}

func (s ReservationStatusType) CanTransitionTo(to ReservationStatusType) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
		return true
	}
	return false
}

// ActiveReservationStatuses статусы, при которых бронь занимает стол
// и участвует в проверке пересечений слотов.
func ActiveReservationStatuses() []ReservationStatusType {
	return []ReservationStatusType{
		ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusSeated,
	}
}
