package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/pkg/uow"
)

type TableService struct {
	uow       uow.UOW
	tableRepo TableRepository
}

func NewTableService(u uow.UOW) (*TableService, error) {
	tableRepo, err := uow.GetRepositoryAs[TableRepository](u, uow.RepositoryName(repoargs.TableRepoName))
	if err != nil {
		return nil, err
	}
	return &TableService{
		uow:       u,
		tableRepo: tableRepo,
	}, nil
}

func (t *TableService) Create(
	ctx context.Context,
	number int32,
	capacity int32,
	location string,
) (*domain.DiningTable, error) {
	table, err := t.tableRepo.Create(ctx, number, capacity, location)
	if err != nil {
		return nil, fmt.Errorf("creating table: %w", err)
	}
	return table, nil
}

func (t *TableService) GetByID(ctx context.Context, id int64) (*domain.DiningTable, error) {
	table, err := t.tableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return table, nil
}

func (t *TableService) List(ctx context.Context) ([]domain.DiningTable, error) {
	tables, err := t.tableRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return tables, nil
}

// Delete удаляет стол. Стол с активными бронями (pending/confirmed/seated) удалить нельзя —
// проверка и удаление выполняются в одной транзакции под блокировкой строки стола,
// чтобы конкурентное создание брони не проскочило между ними.
func (t *TableService) Delete(ctx context.Context, id int64) error {
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		tableRepo, tableRepoErr := uow.GetAs[TableRepository](tx, uow.RepositoryName(repoargs.TableRepoName))
		if tableRepoErr != nil {
			return tableRepoErr //nolint:wrapcheck
		}
		rsvRepo, rsvRepoErr := uow.GetAs[ReservationRepository](tx, uow.RepositoryName(repoargs.ReservationRepoName))
		if rsvRepoErr != nil {
			return rsvRepoErr //nolint:wrapcheck
		}

		if _, lockErr := tableRepo.FindByIDForUpdate(c, id); lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		active, countErr := rsvRepo.CountActiveByTableID(c, id)
		if countErr != nil {
			return countErr //nolint:wrapcheck
		}
		if active > 0 {
			return fmt.Errorf("%w: %d active", domain.ErrHasActiveReservations, active)
		}

		return tableRepo.Delete(c, id) //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("deleting table: %w", txErr)
	}
	return nil
}
