package repoargs

import "github.com/fsdevblog/groph-resto/internal/domain"

// LoyaltyProfileUpdate полная перезапись вычисляемой части профиля.
// Выполняется только под блокировкой строки внутри транзакции.
type LoyaltyProfileUpdate struct {
	CustomerID     int64
	Points         int64
	Tier           domain.TierType
	TierOverridden bool
}

type LoyaltyTransactionCreate struct {
	CustomerID int64
	AdminID    int64
	Direction  domain.DirectionType
	Amount     int64
	Reason     string
}
