package service

import (
	"context"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/internal/service/mocks"
	"github.com/fsdevblog/groph-resto/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-resto/pkg/uow/mocks"
)

type LoyaltyServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockLoyaltyRepo *mocks.MockLoyaltyRepository
	service         *LoyaltyService
}

func TestLoyaltyServiceSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyServiceTestSuite))
}

func (s *LoyaltyServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockLoyaltyRepo = mocks.NewMockLoyaltyRepository(s.mockCtrl)

	// Настроить возврат LoyaltyRepository в сервисе при инициализации
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.LoyaltyRepoName)).
		Return(s.mockLoyaltyRepo, nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	var err error
	s.service, err = NewLoyaltyService(s.mockUOW, l)
	s.Require().NoError(err)
}

func (s *LoyaltyServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// passthroughDo прокидывает функцию транзакции напрямую в mockTX.
func (s *LoyaltyServiceTestSuite) passthroughDo(times int) {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.LoyaltyRepoName)).
		Return(s.mockLoyaltyRepo, nil).Times(times)

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	).Times(times)
}

func (s *LoyaltyServiceTestSuite) TestAdjustPoints_AddCrossesTier() {
	const adminID int64 = 7
	const customerID int64 = 123

	current := &domain.LoyaltyProfile{
		CustomerID: customerID,
		Points:     480,
		Tier:       domain.TierBronze,
	}

	s.passthroughDo(1)

	s.mockLoyaltyRepo.EXPECT().
		FindByCustomerIDForUpdate(gomock.Any(), customerID).
		Return(current, nil)

	// 480 + 30 = 510, порог silver пройден; ручной override снимается.
	s.mockLoyaltyRepo.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LoyaltyProfileUpdate) (*domain.LoyaltyProfile, error) {
			s.Equal(customerID, args.CustomerID)
			s.Equal(int64(510), args.Points)
			s.Equal(domain.TierSilver, args.Tier)
			s.False(args.TierOverridden)
			return &domain.LoyaltyProfile{
				CustomerID: customerID,
				Points:     args.Points,
				Tier:       args.Tier,
			}, nil
		})

	s.mockLoyaltyRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LoyaltyTransactionCreate) (*domain.LoyaltyTransaction, error) {
			// запись аудита хранит автора и причину.
			s.Equal(customerID, args.CustomerID)
			s.Equal(adminID, args.AdminID)
			s.Equal(domain.DirectionAdd, args.Direction)
			s.Equal(int64(30), args.Amount)
			s.Equal("birthday bonus", args.Reason)
			return &domain.LoyaltyTransaction{ID: 1}, nil
		})

	profile, err := s.service.AdjustPoints(s.T().Context(), adminID, AdjustPointsArgs{
		CustomerID: customerID,
		Amount:     30,
		Direction:  domain.DirectionAdd,
		Reason:     "birthday bonus",
	})
	s.Require().NoError(err)
	s.Equal(int64(510), profile.Points)
	s.Equal(domain.TierSilver, profile.Tier)
}

func (s *LoyaltyServiceTestSuite) TestAdjustPoints_InsufficientPoints() {
	const customerID int64 = 123

	s.passthroughDo(1)

	s.mockLoyaltyRepo.EXPECT().
		FindByCustomerIDForUpdate(gomock.Any(), customerID).
		Return(&domain.LoyaltyProfile{CustomerID: customerID, Points: 40, Tier: domain.TierBronze}, nil)

	// баланс меняться не должен.
	s.mockLoyaltyRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Times(0)
	s.mockLoyaltyRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.AdjustPoints(s.T().Context(), 7, AdjustPointsArgs{
		CustomerID: customerID,
		Amount:     100,
		Direction:  domain.DirectionDeduct,
		Reason:     "manual correction",
	})
	s.Require().ErrorIs(err, domain.ErrInsufficientPoints)
}

func (s *LoyaltyServiceTestSuite) TestAdjustPoints_NegativeAmountTreatedAsMagnitude() {
	const customerID int64 = 123

	s.passthroughDo(1)

	s.mockLoyaltyRepo.EXPECT().
		FindByCustomerIDForUpdate(gomock.Any(), customerID).
		Return(&domain.LoyaltyProfile{CustomerID: customerID, Points: 100, Tier: domain.TierBronze}, nil)

	s.mockLoyaltyRepo.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LoyaltyProfileUpdate) (*domain.LoyaltyProfile, error) {
			// направление задает знак, величина берется по модулю: 100 - 50 = 50.
			s.Equal(int64(50), args.Points)
			return &domain.LoyaltyProfile{CustomerID: customerID, Points: args.Points, Tier: args.Tier}, nil
		})

	s.mockLoyaltyRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LoyaltyTransactionCreate) (*domain.LoyaltyTransaction, error) {
			s.Equal(int64(50), args.Amount)
			return &domain.LoyaltyTransaction{ID: 1}, nil
		})

	_, err := s.service.AdjustPoints(s.T().Context(), 7, AdjustPointsArgs{
		CustomerID: customerID,
		Amount:     -50,
		Direction:  domain.DirectionDeduct,
		Reason:     "manual correction",
	})
	s.Require().NoError(err)
}

func (s *LoyaltyServiceTestSuite) TestAdjustPoints_Validation() {
	cases := []struct {
		name    string
		args    AdjustPointsArgs
		wantErr error
	}{
		{
			name:    "empty reason",
			args:    AdjustPointsArgs{CustomerID: 1, Amount: 10, Direction: domain.DirectionAdd, Reason: "   "},
			wantErr: domain.ErrEmptyReason,
		}, {
			name:    "unknown direction",
			args:    AdjustPointsArgs{CustomerID: 1, Amount: 10, Direction: "multiply", Reason: "promo"},
			wantErr: domain.ErrInvalidDirection,
		}, {
			name:    "zero delta",
			args:    AdjustPointsArgs{CustomerID: 1, Amount: 0, Direction: domain.DirectionAdd, Reason: "promo"},
			wantErr: domain.ErrInvalidDelta,
		},
	}

	// валидация отсекает запрос до открытия транзакции.
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.service.AdjustPoints(s.T().Context(), 7, t.args)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *LoyaltyServiceTestSuite) TestSetTierOverride() {
	const adminID int64 = 7
	const customerID int64 = 123

	s.passthroughDo(1)

	s.mockLoyaltyRepo.EXPECT().
		FindByCustomerIDForUpdate(gomock.Any(), customerID).
		Return(&domain.LoyaltyProfile{CustomerID: customerID, Points: 120, Tier: domain.TierBronze}, nil)

	s.mockLoyaltyRepo.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LoyaltyProfileUpdate) (*domain.LoyaltyProfile, error) {
			// баллы не трогаем, уровень выставляется напрямую с пометкой override.
			s.Equal(int64(120), args.Points)
			s.Equal(domain.TierPlatinum, args.Tier)
			s.True(args.TierOverridden)
			return &domain.LoyaltyProfile{
				CustomerID:     customerID,
				Points:         args.Points,
				Tier:           args.Tier,
				TierOverridden: args.TierOverridden,
			}, nil
		})

	profile, err := s.service.SetTierOverride(s.T().Context(), adminID, customerID, domain.TierPlatinum)
	s.Require().NoError(err)
	s.Equal(domain.TierPlatinum, profile.Tier)
	s.True(profile.TierOverridden)
}

func (s *LoyaltyServiceTestSuite) TestSetTierOverride_UnknownTier() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.SetTierOverride(s.T().Context(), 7, 123, "diamond")
	s.Require().ErrorIs(err, domain.ErrUnknownTier)
}

func (s *LoyaltyServiceTestSuite) TestGetProfile() {
	const customerID int64 = 123

	s.mockLoyaltyRepo.EXPECT().
		FindByCustomerID(gomock.Any(), customerID).
		Return(&domain.LoyaltyProfile{CustomerID: customerID, Points: 1200, Tier: domain.TierGold}, nil)

	view, err := s.service.GetProfile(s.T().Context(), customerID)
	s.Require().NoError(err)
	s.Equal(domain.TierGold, view.Profile.Tier)
	s.Equal("15", view.DiscountPercent.String())
	s.Equal("2", view.Multiplier.String())
}

func (s *LoyaltyServiceTestSuite) TestGetProfile_NotFound() {
	s.mockLoyaltyRepo.EXPECT().
		FindByCustomerID(gomock.Any(), int64(999)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.GetProfile(s.T().Context(), 999)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
