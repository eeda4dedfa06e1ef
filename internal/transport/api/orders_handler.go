package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/internal/service"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type OrderResponse struct {
	ID              int64                    `json:"id"`
	CustomerID      int64                    `json:"customer_id"`
	TableID         *int64                   `json:"table_id,omitempty"`
	OrderType       domain.OrderType         `json:"order_type"`
	Status          domain.OrderStatusType   `json:"status"`
	PaymentStatus   domain.PaymentStatusType `json:"payment_status"`
	TotalAmount     float64                  `json:"total_amount"`
	TaxAmount       float64                  `json:"tax_amount"`
	DiscountAmount  float64                  `json:"discount_amount"`
	FinalAmount     float64                  `json:"final_amount"`
	LoyaltyEligible bool                     `json:"loyalty_eligible"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func orderResponseFrom(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		TableID:         order.TableID,
		OrderType:       order.OrderType,
		Status:          order.Status,
		PaymentStatus:   order.PaymentStatus,
		TotalAmount:     order.TotalAmount.InexactFloat64(),
		TaxAmount:       order.TaxAmount.InexactFloat64(),
		DiscountAmount:  order.DiscountAmount.InexactFloat64(),
		FinalAmount:     order.FinalAmount.InexactFloat64(),
		LoyaltyEligible: service.EligibleForLoyaltyAccrual(order),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

type UpdateOrderStatusParams struct {
	Status string `json:"status" binding:"required"`
	Force  bool   `json:"force"`
}

// UpdateStatus PATCH RouteGroup + OrdersRoute + /:id/status.
func (o *OrdersHandler) UpdateStatus(c *gin.Context) {
	adminID := getAdminIDFromContext(c)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var params UpdateOrderStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, updErr := o.orderSvs.UpdateStatus(
		reqCtx,
		adminID,
		orderID,
		domain.OrderStatusType(params.Status),
		params.Force,
	)
	if updErr != nil {
		abortWithBusinessError(c, updErr)
		return
	}

	c.JSON(http.StatusOK, orderResponseFrom(order))
}

type UpdatePaymentStatusParams struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
	Force         bool   `json:"force"`
}

// UpdatePaymentStatus PATCH RouteGroup + OrdersRoute + /:id/payment-status.
func (o *OrdersHandler) UpdatePaymentStatus(c *gin.Context) {
	adminID := getAdminIDFromContext(c)

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var params UpdatePaymentStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, updErr := o.orderSvs.UpdatePaymentStatus(
		reqCtx,
		adminID,
		orderID,
		domain.PaymentStatusType(params.PaymentStatus),
		params.Force,
	)
	if updErr != nil {
		abortWithBusinessError(c, updErr)
		return
	}

	c.JSON(http.StatusOK, orderResponseFrom(order))
}

// Show GET RouteGroup + OrdersRoute + /:id.
func (o *OrdersHandler) Show(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.GetByID(reqCtx, orderID)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponseFrom(order))
}

type OrdersIndexParams struct {
	Status     string `form:"status"`
	CustomerID int64  `form:"customer_id"`
	Limit      uint   `form:"limit"`
}

// Index GET RouteGroup + OrdersRoute.
func (o *OrdersHandler) Index(c *gin.Context) {
	var params OrdersIndexParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	var filter repoargs.OrderFilter
	if params.Status != "" {
		status := domain.OrderStatusType(params.Status)
		if !status.Valid() {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown status"})
			return
		}
		filter.Status = &status
	}
	if params.CustomerID > 0 {
		filter.CustomerID = &params.CustomerID
	}
	filter.Limit = params.Limit

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.List(reqCtx, filter)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = orderResponseFrom(&orders[i])
	}
	c.JSON(http.StatusOK, response)
}

func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}
