package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/transport/api/middlewares"
)

// getAdminIDFromContext берет из контекста gin id текущего сотрудника. ID устанавливается
// в middlewares.AuthRequired. В случае отсутствия значения или ошибки утверждения типа
// вернется 0.
func getAdminIDFromContext(c *gin.Context) int64 {
	adminIDVal, exist := c.Get(middlewares.CurrentAdminIDKey)
	if !exist {
		return 0
	}
	adminID, ok := adminIDVal.(int64)
	if !ok {
		return 0
	}
	return adminID
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// businessErrorCode машиночитаемый код бизнес-ошибки для админки.
func businessErrorCode(err error) (string, int) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return "not_found", http.StatusNotFound
	case errors.Is(err, domain.ErrTerminalState):
		return "terminal_state_violation", http.StatusConflict
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition", http.StatusConflict
	case errors.Is(err, domain.ErrSlotConflict):
		return "slot_conflict", http.StatusConflict
	case errors.Is(err, domain.ErrHasActiveReservations):
		return "has_active_reservations", http.StatusConflict
	case errors.Is(err, domain.ErrDuplicateKey):
		return "duplicate", http.StatusConflict
	case errors.Is(err, domain.ErrReferencedRecord):
		return "referenced_record", http.StatusConflict
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "capacity_exceeded", http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInsufficientPoints):
		return "insufficient_points", http.StatusPaymentRequired
	case errors.Is(err, domain.ErrInvalidStatus):
		return "invalid_status", http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnknownTier):
		return "unknown_tier", http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidDirection):
		return "invalid_direction", http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidDelta):
		return "invalid_delta", http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEmptyReason):
		return "empty_reason", http.StatusUnprocessableEntity
	default:
		return "", 0
	}
}

// abortWithBusinessError отдает бизнес-ошибку как структурированный ответ {code, error}.
// Все прочие ошибки уходят в errors middleware как 500: ядро ошибок не глотает.
func abortWithBusinessError(c *gin.Context, err error) {
	if code, status := businessErrorCode(err); code != "" {
		c.AbortWithStatusJSON(status, gin.H{"code": code, "error": err.Error()})
		return
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}
