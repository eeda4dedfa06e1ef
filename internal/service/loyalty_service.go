package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/pkg/uow"
)

type LoyaltyService struct {
	uow         uow.UOW
	loyaltyRepo LoyaltyRepository
	logger      *logrus.Logger
}

func NewLoyaltyService(u uow.UOW, l *logrus.Logger) (*LoyaltyService, error) {
	loyaltyRepo, err := uow.GetRepositoryAs[LoyaltyRepository](u, uow.RepositoryName(repoargs.LoyaltyRepoName))
	if err != nil {
		return nil, err
	}
	return &LoyaltyService{
		uow:         u,
		loyaltyRepo: loyaltyRepo,
		logger:      l,
	}, nil
}

type AdjustPointsArgs struct {
	CustomerID int64
	Amount     int64
	Direction  domain.DirectionType
	Reason     string
}

// AdjustPoints изменяет баланс баллов на Amount в сторону Direction и пишет запись аудита.
// Баланс перечитывается под блокировкой строки непосредственно перед записью, поэтому два
// конкурентных списания не могут увести его в минус. После успешного изменения уровень
// пересчитывается от нового баланса и ручной override снимается.
//
// Возможные ошибки: domain.ErrEmptyReason, domain.ErrInvalidDirection,
// domain.ErrInvalidDelta, domain.ErrInsufficientPoints, domain.ErrRecordNotFound.
func (l *LoyaltyService) AdjustPoints(
	ctx context.Context,
	adminID int64,
	args AdjustPointsArgs,
) (*domain.LoyaltyProfile, error) {
	if strings.TrimSpace(args.Reason) == "" {
		return nil, fmt.Errorf("adjusting points: %w", domain.ErrEmptyReason)
	}
	if args.Direction != domain.DirectionAdd && args.Direction != domain.DirectionDeduct {
		return nil, fmt.Errorf("adjusting points: %w: %s", domain.ErrInvalidDirection, args.Direction)
	}

	amount := args.Amount
	if amount < 0 {
		amount = -amount
	}
	if amount == 0 {
		return nil, fmt.Errorf("adjusting points: %w: zero delta", domain.ErrInvalidDelta)
	}

	var profile *domain.LoyaltyProfile
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[LoyaltyRepository](tx, uow.RepositoryName(repoargs.LoyaltyRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, findErr := repo.FindByCustomerIDForUpdate(c, args.CustomerID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		newPoints := current.Points + amount
		if args.Direction == domain.DirectionDeduct {
			newPoints = current.Points - amount
			if newPoints < 0 {
				return fmt.Errorf(
					"%w: balance %d, deduction %d",
					domain.ErrInsufficientPoints,
					current.Points,
					amount,
				)
			}
		}

		var updErr error
		profile, updErr = repo.UpdateProfile(c, repoargs.LoyaltyProfileUpdate{
			CustomerID:     args.CustomerID,
			Points:         newPoints,
			Tier:           domain.DeriveTier(newPoints),
			TierOverridden: false,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		_, transErr := repo.CreateTransaction(c, repoargs.LoyaltyTransactionCreate{
			CustomerID: args.CustomerID,
			AdminID:    adminID,
			Direction:  args.Direction,
			Amount:     amount,
			Reason:     args.Reason,
		})
		return transErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("adjusting points: %w", txErr)
	}
	return profile, nil
}

// SetTierOverride выставляет уровень напрямую, минуя расчет от баллов. Профиль помечается
// как переопределенный вручную; признак не липкий — следующий AdjustPoints вернет расчетный
// уровень. Намеренное расхождение уровня и баллов до этого момента сохраняется как есть.
func (l *LoyaltyService) SetTierOverride(
	ctx context.Context,
	adminID int64,
	customerID int64,
	tier domain.TierType,
) (*domain.LoyaltyProfile, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("setting tier override: %w: %s", domain.ErrUnknownTier, tier)
	}

	var profile *domain.LoyaltyProfile
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[LoyaltyRepository](tx, uow.RepositoryName(repoargs.LoyaltyRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, findErr := repo.FindByCustomerIDForUpdate(c, customerID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		var updErr error
		profile, updErr = repo.UpdateProfile(c, repoargs.LoyaltyProfileUpdate{
			CustomerID:     customerID,
			Points:         current.Points,
			Tier:           tier,
			TierOverridden: true,
		})
		return updErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("setting tier override: %w", txErr)
	}

	l.logger.WithFields(logrus.Fields{
		"adminID":    adminID,
		"customerID": customerID,
		"tier":       tier,
	}).Info("loyalty tier overridden")

	return profile, nil
}

// ProfileView профиль вместе с привилегиями текущего уровня.
type ProfileView struct {
	Profile         *domain.LoyaltyProfile
	DiscountPercent decimal.Decimal
	Multiplier      decimal.Decimal
}

func (l *LoyaltyService) GetProfile(ctx context.Context, customerID int64) (*ProfileView, error) {
	profile, err := l.loyaltyRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	discount, discountErr := domain.DiscountFor(profile.Tier)
	if discountErr != nil {
		return nil, fmt.Errorf("getting loyalty profile: %w", discountErr)
	}
	multiplier, multiplierErr := domain.MultiplierFor(profile.Tier)
	if multiplierErr != nil {
		return nil, fmt.Errorf("getting loyalty profile: %w", multiplierErr)
	}

	return &ProfileView{
		Profile:         profile,
		DiscountPercent: discount,
		Multiplier:      multiplier,
	}, nil
}

func (l *LoyaltyService) GetTransactions(
	ctx context.Context,
	customerID int64,
) ([]domain.LoyaltyTransaction, error) {
	transactions, err := l.loyaltyRepo.ListTransactions(ctx, customerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}
