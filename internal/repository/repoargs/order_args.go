package repoargs

import "github.com/fsdevblog/groph-resto/internal/domain"

type OrderFilter struct {
	CustomerID *int64
	Status     *domain.OrderStatusType
	Limit      uint
}
