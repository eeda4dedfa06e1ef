package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-resto/pkg/uow"
)

type AppServices struct {
	StaffService       *StaffService
	OrderService       *OrderService
	ReservationService *ReservationService
	LoyaltyService     *LoyaltyService
	TableService       *TableService
}

type FactoryArgs struct {
	UnitOfWork uow.UOW
	Logger     *logrus.Logger
	JWTSecret  []byte
	Turnover   time.Duration
}

func Factory(args FactoryArgs) (*AppServices, error) {
	staffService, staffServiceErr := NewStaffService(args.UnitOfWork, args.JWTSecret)
	if staffServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", staffServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(args.UnitOfWork, args.Logger)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	reservationService, reservationServiceErr := NewReservationService(args.UnitOfWork, args.Logger, args.Turnover)
	if reservationServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", reservationServiceErr.Error())
	}

	loyaltyService, loyaltyServiceErr := NewLoyaltyService(args.UnitOfWork, args.Logger)
	if loyaltyServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", loyaltyServiceErr.Error())
	}

	tableService, tableServiceErr := NewTableService(args.UnitOfWork)
	if tableServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", tableServiceErr.Error())
	}

	return &AppServices{
		StaffService:       staffService,
		OrderService:       orderService,
		ReservationService: reservationService,
		LoyaltyService:     loyaltyService,
		TableService:       tableService,
	}, nil
}
