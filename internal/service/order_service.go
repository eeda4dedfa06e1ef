package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/pkg/uow"
)

type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
	logger    *logrus.Logger
}

func NewOrderService(u uow.UOW, l *logrus.Logger) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
		logger:    l,
	}, nil
}

// UpdateStatus переводит заказ в статус newStatus. Текущий статус читается под блокировкой
// строки, переход проверяется по таблице переходов. Возможные ошибки:
//   - domain.ErrInvalidStatus для значения вне enum (force не обходит эту проверку);
//   - *domain.StatusTransitionError (оборачивает ErrTerminalState либо ErrInvalidTransition).
//
// force=true пропускает проверку таблицы переходов целиком, включая выход из терминального
// статуса. Каждый форсированный переход логируется с id администратора.
func (o *OrderService) UpdateStatus(
	ctx context.Context,
	adminID int64,
	orderID int64,
	newStatus domain.OrderStatusType,
	force bool,
) (*domain.Order, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("updating order status: %w: %s", domain.ErrInvalidStatus, newStatus)
	}

	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, findErr := repo.FindByIDForUpdate(c, orderID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		if !current.Status.CanTransitionTo(newStatus) {
			if !force {
				return domain.NewStatusTransitionError(
					"order",
					string(current.Status),
					string(newStatus),
					current.Status.Terminal(),
				)
			}
			o.logger.WithFields(logrus.Fields{
				"adminID": adminID,
				"orderID": orderID,
				"from":    current.Status,
				"to":      newStatus,
			}).Warn("forced order status transition")
		}

		var updErr error
		order, updErr = repo.UpdateStatus(c, orderID, newStatus)
		return updErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating order status: %w", txErr)
	}
	return order, nil
}

// UpdatePaymentStatus переводит статус оплаты. Ось оплаты независима от статуса заказа:
// refund не отменяет заказ, оплата не двигает его по кухне.
func (o *OrderService) UpdatePaymentStatus(
	ctx context.Context,
	adminID int64,
	orderID int64,
	newStatus domain.PaymentStatusType,
	force bool,
) (*domain.Order, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("updating payment status: %w: %s", domain.ErrInvalidStatus, newStatus)
	}

	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, findErr := repo.FindByIDForUpdate(c, orderID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		if !current.PaymentStatus.CanTransitionTo(newStatus) {
			if !force {
				return domain.NewStatusTransitionError(
					"payment",
					string(current.PaymentStatus),
					string(newStatus),
					current.PaymentStatus.Terminal(),
				)
			}
			o.logger.WithFields(logrus.Fields{
				"adminID": adminID,
				"orderID": orderID,
				"from":    current.PaymentStatus,
				"to":      newStatus,
			}).Warn("forced payment status transition")
		}

		var updErr error
		order, updErr = repo.UpdatePaymentStatus(c, orderID, newStatus)
		return updErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating payment status: %w", txErr)
	}
	return order, nil
}

func (o *OrderService) GetByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := o.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

func (o *OrderService) List(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error) {
	orders, err := o.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// EligibleForLoyaltyAccrual производный признак для админки: начислять баллы есть смысл
// только по оплаченному заказу. Само начисление остается ручной административной командой.
func EligibleForLoyaltyAccrual(order *domain.Order) bool {
	return order.PaymentStatus == domain.PaymentStatusPaid
}
