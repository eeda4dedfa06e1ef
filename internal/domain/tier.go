package domain

import "github.com/shopspring/decimal"

// TierLevel одна строка статической таблицы уровней лояльности.
type TierLevel struct {
	Tier            TierType
	MinPoints       int64
	DiscountPercent decimal.Decimal
	Multiplier      decimal.Decimal
}

// tierTable упорядочена по возрастанию MinPoints. Порядок важен для DeriveTier.
var tierTable = []TierLevel{
	{Tier: TierBronze, MinPoints: 0, DiscountPercent: decimal.NewFromInt(5), Multiplier: decimal.NewFromFloat(1.0)},
	{Tier: TierSilver, MinPoints: 500, DiscountPercent: decimal.NewFromInt(10), Multiplier: decimal.NewFromFloat(1.5)},
	{Tier: TierGold, MinPoints: 1000, DiscountPercent: decimal.NewFromInt(15), Multiplier: decimal.NewFromFloat(2.0)},
	{Tier: TierPlatinum, MinPoints: 2000, DiscountPercent: decimal.NewFromInt(20), Multiplier: decimal.NewFromFloat(2.5)},
}

func (t TierType) Valid() bool {
	switch t {
	case TierBronze, TierSilver, TierGold, TierPlatinum:
		return true
	}
	return false
}

// DeriveTier возвращает старший уровень, чей MinPoints не превышает points.
// Чистая функция без побочных эффектов; для отрицательных значений вернется bronze.
func DeriveTier(points int64) TierType {
	tier := tierTable[0].Tier
	for _, level := range tierTable {
		if points >= level.MinPoints {
			tier = level.Tier
		}
	}
	return tier
}

// DiscountFor возвращает процент скидки уровня. Для значения вне канонических
// четырех вернется ErrUnknownTier; при валидации на всех путях записи недостижимо.
func DiscountFor(tier TierType) (decimal.Decimal, error) {
	for _, level := range tierTable {
		if level.Tier == tier {
			return level.DiscountPercent, nil
		}
	}
	return decimal.Zero, ErrUnknownTier
}

// MultiplierFor возвращает множитель начисления баллов уровня.
func MultiplierFor(tier TierType) (decimal.Decimal, error) {
	for _, level := range tierTable {
		if level.Tier == tier {
			return level.Multiplier, nil
		}
	}
	return decimal.Zero, ErrUnknownTier
}
