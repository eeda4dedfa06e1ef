package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/internal/service"
)

const (
	reservationDateLayout = "2006-01-02"
	reservationTimeLayout = "15:04"
)

type ReservationsHandler struct {
	rsvSvs ReservationServicer
}

func NewReservationsHandler(rsvSvs ReservationServicer) *ReservationsHandler {
	return &ReservationsHandler{
		rsvSvs: rsvSvs,
	}
}

type ReservationResponse struct {
	ID              int64                        `json:"id"`
	CustomerID      int64                        `json:"customer_id"`
	TableID         int64                        `json:"table_id"`
	Date            string                       `json:"date"`
	Time            string                       `json:"time"`
	PartySize       int32                        `json:"party_size"`
	Status          domain.ReservationStatusType `json:"status"`
	SpecialRequests string                       `json:"special_requests,omitempty"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
}

func reservationResponseFrom(reservation *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              reservation.ID,
		CustomerID:      reservation.CustomerID,
		TableID:         reservation.TableID,
		Date:            reservation.ReservationDate.Format(reservationDateLayout),
		Time:            reservation.ReservationTime.Format(reservationTimeLayout),
		PartySize:       reservation.PartySize,
		Status:          reservation.Status,
		SpecialRequests: reservation.SpecialRequests,
		CreatedAt:       reservation.CreatedAt,
		UpdatedAt:       reservation.UpdatedAt,
	}
}

type CreateReservationParams struct {
	CustomerID      int64  `json:"customer_id" binding:"required,gt=0"`
	TableID         int64  `json:"table_id" binding:"required,gt=0"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	PartySize       int32  `json:"party_size" binding:"required,gt=0"`
	SpecialRequests string `json:"special_requests" binding:"max=1000"`
}

// Create POST RouteGroup + ReservationsRoute.
func (r *ReservationsHandler) Create(c *gin.Context) {
	adminID := getAdminIDFromContext(c)

	var params CreateReservationParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	date, dateErr := time.Parse(reservationDateLayout, params.Date)
	if dateErr != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	slotTime, timeErr := time.Parse(reservationTimeLayout, params.Time)
	if timeErr != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid time, expected HH:MM"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reservation, createErr := r.rsvSvs.Create(reqCtx, adminID, service.CreateReservationArgs{
		CustomerID:      params.CustomerID,
		TableID:         params.TableID,
		Date:            date,
		Time:            slotTime,
		PartySize:       params.PartySize,
		SpecialRequests: params.SpecialRequests,
	})
	if createErr != nil {
		abortWithBusinessError(c, createErr)
		return
	}

	c.JSON(http.StatusCreated, reservationResponseFrom(reservation))
}

type UpdateReservationStatusParams struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus PATCH RouteGroup + ReservationsRoute + /:id/status.
func (r *ReservationsHandler) UpdateStatus(c *gin.Context) {
	adminID := getAdminIDFromContext(c)

	reservationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var params UpdateReservationStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reservation, updErr := r.rsvSvs.UpdateStatus(
		reqCtx,
		adminID,
		reservationID,
		domain.ReservationStatusType(params.Status),
	)
	if updErr != nil {
		abortWithBusinessError(c, updErr)
		return
	}

	c.JSON(http.StatusOK, reservationResponseFrom(reservation))
}

// Show GET RouteGroup + ReservationsRoute + /:id.
func (r *ReservationsHandler) Show(c *gin.Context) {
	reservationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reservation, err := r.rsvSvs.GetByID(reqCtx, reservationID)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservationResponseFrom(reservation))
}

type ReservationsIndexParams struct {
	Date    string `form:"date"`
	TableID int64  `form:"table_id"`
	Active  bool   `form:"active"`
}

// Index GET RouteGroup + ReservationsRoute.
func (r *ReservationsHandler) Index(c *gin.Context) {
	var params ReservationsIndexParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	var filter repoargs.ReservationFilter
	if params.Date != "" {
		date, dateErr := time.Parse(reservationDateLayout, params.Date)
		if dateErr != nil {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}
	if params.TableID > 0 {
		filter.TableID = &params.TableID
	}
	if params.Active {
		filter.Statuses = domain.ActiveReservationStatuses()
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	reservations, err := r.rsvSvs.List(reqCtx, filter)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	response := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		response[i] = reservationResponseFrom(&reservations[i])
	}
	c.JSON(http.StatusOK, response)
}
