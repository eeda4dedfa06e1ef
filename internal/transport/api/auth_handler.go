package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-resto/internal/domain"
)

type AuthHandler struct {
	staffService StaffServicer
}

func NewAuthHandler(staffService StaffServicer) *AuthHandler {
	return &AuthHandler{
		staffService: staffService,
	}
}

type StaffLoginParams struct {
	Username string `json:"login" binding:"required,min=1,max=50"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

type StaffLoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"login"`
	FullName string `json:"full_name"`
	Token    string `json:"token"`
}

// Login POST RouteGroup + LoginRoute. Аутентифицирует сотрудника и выдает jwt токен.
func (h *AuthHandler) Login(c *gin.Context) {
	var params StaffLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	staff, jwtToken, loginErr := h.staffService.Login(reqCtx, params.Username, params.Password)
	if loginErr != nil {
		if errors.Is(loginErr, domain.ErrRecordNotFound) || errors.Is(loginErr, domain.ErrPasswordMissMatch) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, loginErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &StaffLoginResponse{
		ID:       staff.ID,
		Username: staff.Username,
		FullName: staff.FullName,
		Token:    jwtToken,
	})
}
