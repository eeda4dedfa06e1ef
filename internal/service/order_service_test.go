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

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockOrderRepo *mocks.MockOrderRepository
	service       *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	var err error
	s.service, err = NewOrderService(s.mockUOW, l)
	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OrderServiceTestSuite) passthroughDo(times int) {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).Times(times)

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	).Times(times)
}

func (s *OrderServiceTestSuite) TestUpdateStatus() {
	const orderID int64 = 1

	cases := []struct {
		name      string
		from      domain.OrderStatusType
		to        domain.OrderStatusType
		wantErr   error
		wantWrite bool
	}{
		{
			name:      "pending to confirmed",
			from:      domain.OrderStatusPending,
			to:        domain.OrderStatusConfirmed,
			wantWrite: true,
		}, {
			name:    "no skipping steps",
			from:    domain.OrderStatusPending,
			to:      domain.OrderStatusCompleted,
			wantErr: domain.ErrInvalidTransition,
		}, {
			name:    "completed is terminal",
			from:    domain.OrderStatusCompleted,
			to:      domain.OrderStatusPending,
			wantErr: domain.ErrTerminalState,
		}, {
			name:    "cancelled is terminal",
			from:    domain.OrderStatusCancelled,
			to:      domain.OrderStatusConfirmed,
			wantErr: domain.ErrTerminalState,
		}, {
			name:      "cancel from any active status",
			from:      domain.OrderStatusPreparing,
			to:        domain.OrderStatusCancelled,
			wantWrite: true,
		},
	}

	s.passthroughDo(len(cases))

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockOrderRepo.EXPECT().
				FindByIDForUpdate(gomock.Any(), orderID).
				Return(&domain.Order{ID: orderID, Status: t.from}, nil)

			if t.wantWrite {
				s.mockOrderRepo.EXPECT().
					UpdateStatus(gomock.Any(), orderID, t.to).
					Return(&domain.Order{ID: orderID, Status: t.to}, nil)
			}

			order, err := s.service.UpdateStatus(s.T().Context(), 7, orderID, t.to, false)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(t.to, order.Status)
		})
	}
}

func (s *OrderServiceTestSuite) TestUpdateStatus_ForceBypassesGraph() {
	const orderID int64 = 1

	s.passthroughDo(1)

	// force выводит даже из терминального статуса.
	s.mockOrderRepo.EXPECT().
		FindByIDForUpdate(gomock.Any(), orderID).
		Return(&domain.Order{ID: orderID, Status: domain.OrderStatusCompleted}, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), orderID, domain.OrderStatusPreparing).
		Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPreparing}, nil)

	order, err := s.service.UpdateStatus(s.T().Context(), 7, orderID, domain.OrderStatusPreparing, true)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPreparing, order.Status)
}

func (s *OrderServiceTestSuite) TestUpdateStatus_UnknownStatusNotForceable() {
	// force не легализует значение вне enum.
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.UpdateStatus(s.T().Context(), 7, 1, "burned", true)
	s.Require().ErrorIs(err, domain.ErrInvalidStatus)
}

func (s *OrderServiceTestSuite) TestUpdatePaymentStatus() {
	const orderID int64 = 1

	cases := []struct {
		name      string
		from      domain.PaymentStatusType
		to        domain.PaymentStatusType
		wantErr   error
		wantWrite bool
	}{
		{
			name:      "pending to paid",
			from:      domain.PaymentStatusPending,
			to:        domain.PaymentStatusPaid,
			wantWrite: true,
		}, {
			name:      "paid to refunded",
			from:      domain.PaymentStatusPaid,
			to:        domain.PaymentStatusRefunded,
			wantWrite: true,
		}, {
			name:    "refund requires payment",
			from:    domain.PaymentStatusPending,
			to:      domain.PaymentStatusRefunded,
			wantErr: domain.ErrInvalidTransition,
		}, {
			name:    "refunded is terminal",
			from:    domain.PaymentStatusRefunded,
			to:      domain.PaymentStatusPaid,
			wantErr: domain.ErrTerminalState,
		},
	}

	s.passthroughDo(len(cases))

	for _, t := range cases {
		s.Run(t.name, func() {
			// ось оплаты не зависит от статуса заказа: заказ остается pending.
			s.mockOrderRepo.EXPECT().
				FindByIDForUpdate(gomock.Any(), orderID).
				Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPending, PaymentStatus: t.from}, nil)

			if t.wantWrite {
				s.mockOrderRepo.EXPECT().
					UpdatePaymentStatus(gomock.Any(), orderID, t.to).
					Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPending, PaymentStatus: t.to}, nil)
			}

			order, err := s.service.UpdatePaymentStatus(s.T().Context(), 7, orderID, t.to, false)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(t.to, order.PaymentStatus)
			s.Equal(domain.OrderStatusPending, order.Status)
		})
	}
}

func (s *OrderServiceTestSuite) TestUpdateStatus_NotFound() {
	s.passthroughDo(1)

	s.mockOrderRepo.EXPECT().
		FindByIDForUpdate(gomock.Any(), int64(999)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.UpdateStatus(s.T().Context(), 7, 999, domain.OrderStatusConfirmed, false)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *OrderServiceTestSuite) TestEligibleForLoyaltyAccrual() {
	s.True(EligibleForLoyaltyAccrual(&domain.Order{PaymentStatus: domain.PaymentStatusPaid}))
	s.False(EligibleForLoyaltyAccrual(&domain.Order{PaymentStatus: domain.PaymentStatusPending}))
	s.False(EligibleForLoyaltyAccrual(&domain.Order{PaymentStatus: domain.PaymentStatusRefunded}))
}
