package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-resto/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup        = "/api"
	LoginRoute        = "/staff/login"
	OrdersRoute       = "/orders"
	ReservationsRoute = "/reservations"
	LoyaltyRoute      = "/loyalty"
	TablesRoute       = "/tables"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	StaffService       StaffServicer
	OrderService       OrderServicer
	ReservationService ReservationServicer
	LoyaltyService     LoyaltyServicer
	TableService       TableServicer
	JWTSecretKey       []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.StaffService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	reservationsHandler := NewReservationsHandler(args.ReservationService)
	loyaltyHandler := NewLoyaltyHandler(args.LoyaltyService)
	tablesHandler := NewTablesHandler(args.TableService)

	api := r.Group(RouteGroup)

	api.POST(LoginRoute, authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного сотрудника.
	api.GET(OrdersRoute, ordersHandler.Index)
	api.GET(OrdersRoute+"/:id", ordersHandler.Show)
	api.PATCH(OrdersRoute+"/:id/status", ordersHandler.UpdateStatus)
	api.PATCH(OrdersRoute+"/:id/payment-status", ordersHandler.UpdatePaymentStatus)

	api.POST(ReservationsRoute, reservationsHandler.Create)
	api.GET(ReservationsRoute, reservationsHandler.Index)
	api.GET(ReservationsRoute+"/:id", reservationsHandler.Show)
	api.PATCH(ReservationsRoute+"/:id/status", reservationsHandler.UpdateStatus)

	api.GET(LoyaltyRoute+"/:customerID", loyaltyHandler.Show)
	api.GET(LoyaltyRoute+"/:customerID/transactions", loyaltyHandler.Transactions)
	api.POST(LoyaltyRoute+"/:customerID/adjust", loyaltyHandler.Adjust)
	api.PUT(LoyaltyRoute+"/:customerID/tier", loyaltyHandler.SetTier)

	api.POST(TablesRoute, tablesHandler.Create)
	api.GET(TablesRoute, tablesHandler.Index)
	api.DELETE(TablesRoute+"/:id", tablesHandler.Delete)

	return r
}
