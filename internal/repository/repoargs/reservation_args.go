package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-resto/internal/domain"
)

type ReservationCreate struct {
	CustomerID      int64
	TableID         int64
	Date            time.Time
	Time            time.Time
	PartySize       int32
	SpecialRequests string
}

// ReservationConflictQuery параметры поиска активной брони, пересекающейся
// с запрошенным слотом в пределах интервала оборота стола.
type ReservationConflictQuery struct {
	TableID  int64
	Date     time.Time
	Time     time.Time
	Turnover time.Duration
}

type ReservationFilter struct {
	Date     *time.Time
	TableID  *int64
	Statuses []domain.ReservationStatusType
}
