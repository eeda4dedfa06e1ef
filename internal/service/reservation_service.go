package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/pkg/uow"
)

// DefaultTurnoverInterval минимальное время, которое стол считается занятым бронью.
const DefaultTurnoverInterval = 90 * time.Minute

type ReservationService struct {
	uow      uow.UOW
	rsvRepo  ReservationRepository
	logger   *logrus.Logger
	turnover time.Duration
}

func NewReservationService(u uow.UOW, l *logrus.Logger, turnover time.Duration) (*ReservationService, error) {
	rsvRepo, err := uow.GetRepositoryAs[ReservationRepository](u, uow.RepositoryName(repoargs.ReservationRepoName))
	if err != nil {
		return nil, err
	}
	if turnover <= 0 {
		turnover = DefaultTurnoverInterval
	}
	return &ReservationService{
		uow:      u,
		rsvRepo:  rsvRepo,
		logger:   l,
		turnover: turnover,
	}, nil
}

type CreateReservationArgs struct {
	CustomerID      int64
	TableID         int64
	Date            time.Time
	Time            time.Time
	PartySize       int32
	SpecialRequests string
}

// Create создает бронь. Проверка вместимости, поиск пересечений и вставка выполняются
// в одной транзакции под блокировкой строки стола: два конкурентных запроса на один
// стол сериализуются и второй увидит бронь первого. Возможные ошибки:
//   - domain.ErrCapacityExceeded если размер группы больше вместимости стола;
//   - *domain.SlotConflictError если активная бронь попадает в интервал оборота;
//   - domain.ErrRecordNotFound если стола нет.
func (r *ReservationService) Create(
	ctx context.Context,
	adminID int64,
	args CreateReservationArgs,
) (*domain.Reservation, error) {
	var reservation *domain.Reservation
	txErr := r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		tableRepo, tableRepoErr := uow.GetAs[TableRepository](tx, uow.RepositoryName(repoargs.TableRepoName))
		if tableRepoErr != nil {
			return tableRepoErr //nolint:wrapcheck
		}
		rsvRepo, rsvRepoErr := uow.GetAs[ReservationRepository](tx, uow.RepositoryName(repoargs.ReservationRepoName))
		if rsvRepoErr != nil {
			return rsvRepoErr //nolint:wrapcheck
		}

		// Арена сериализации: блокируем строку стола до проверок.
		table, tableErr := tableRepo.FindByIDForUpdate(c, args.TableID)
		if tableErr != nil {
			return tableErr //nolint:wrapcheck
		}

		if args.PartySize > table.Capacity {
			return fmt.Errorf(
				"%w: party of %d for table with capacity %d",
				domain.ErrCapacityExceeded,
				args.PartySize,
				table.Capacity,
			)
		}

		conflicting, conflictErr := rsvRepo.FindConflicting(c, repoargs.ReservationConflictQuery{
			TableID:  args.TableID,
			Date:     args.Date,
			Time:     args.Time,
			Turnover: r.turnover,
		})
		if conflictErr != nil && !errors.Is(conflictErr, domain.ErrRecordNotFound) {
			return conflictErr //nolint:wrapcheck
		}
		if conflicting != nil {
			return &domain.SlotConflictError{TableID: args.TableID, ConflictingID: conflicting.ID}
		}

		var createErr error
		reservation, createErr = rsvRepo.Create(c, repoargs.ReservationCreate{
			CustomerID:      args.CustomerID,
			TableID:         args.TableID,
			Date:            args.Date,
			Time:            args.Time,
			PartySize:       args.PartySize,
			SpecialRequests: args.SpecialRequests,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating reservation: %w", txErr)
	}

	r.logger.WithFields(logrus.Fields{
		"adminID":       adminID,
		"reservationID": reservation.ID,
		"tableID":       reservation.TableID,
	}).Info("reservation created")

	return reservation, nil
}

// UpdateStatus переводит бронь в статус newStatus по таблице переходов.
// Терминальные брони (completed/cancelled) неизменяемы.
func (r *ReservationService) UpdateStatus(
	ctx context.Context,
	adminID int64,
	reservationID int64,
	newStatus domain.ReservationStatusType,
) (*domain.Reservation, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("updating reservation status: %w: %s", domain.ErrInvalidStatus, newStatus)
	}

	var reservation *domain.Reservation
	txErr := r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[ReservationRepository](tx, uow.RepositoryName(repoargs.ReservationRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		current, findErr := repo.FindByIDForUpdate(c, reservationID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		if !current.Status.CanTransitionTo(newStatus) {
			return domain.NewStatusTransitionError(
				"reservation",
				string(current.Status),
				string(newStatus),
				current.Status.Terminal(),
			)
		}

		var updErr error
		reservation, updErr = repo.UpdateStatus(c, reservationID, newStatus)
		return updErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating reservation status: %w", txErr)
	}

	r.logger.WithFields(logrus.Fields{
		"adminID":       adminID,
		"reservationID": reservationID,
		"status":        newStatus,
	}).Info("reservation status updated")

	return reservation, nil
}

func (r *ReservationService) GetByID(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	reservation, err := r.rsvRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return reservation, nil
}

func (r *ReservationService) List(
	ctx context.Context,
	filter repoargs.ReservationFilter,
) ([]domain.Reservation, error) {
	reservations, err := r.rsvRepo.List(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return reservations, nil
}
