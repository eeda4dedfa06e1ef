package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-resto/internal/config"
	"github.com/fsdevblog/groph-resto/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/internal/service"
	"github.com/fsdevblog/groph-resto/internal/transport/api"
	"github.com/fsdevblog/groph-resto/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(service.FactoryArgs{
		UnitOfWork: unitOfWork,
		Logger:     a.Logger,
		JWTSecret:  []byte(a.Config.JWTStaffSecret),
		Turnover:   time.Duration(a.Config.TurnoverMinutes) * time.Minute,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:             a.Logger,
		StaffService:       services.StaffService,
		OrderService:       services.OrderService,
		ReservationService: services.ReservationService,
		LoyaltyService:     services.LoyaltyService,
		TableService:       services.TableService,
		JWTSecretKey:       []byte(a.Config.JWTStaffSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.StaffRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewStaffRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.ReservationRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewReservationRepository(dbtx)
		},
		repoargs.TableRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTableRepository(dbtx)
		},
		repoargs.LoyaltyRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewLoyaltyRepository(dbtx)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
