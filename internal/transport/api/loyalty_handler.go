package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/service"
)

type LoyaltyHandler struct {
	loyaltySvs LoyaltyServicer
}

func NewLoyaltyHandler(loyaltySvs LoyaltyServicer) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltySvs: loyaltySvs,
	}
}

type LoyaltyProfileResponse struct {
	CustomerID      int64           `json:"customer_id"`
	Points          int64           `json:"points"`
	Tier            domain.TierType `json:"tier"`
	TierOverridden  bool            `json:"tier_overridden"`
	DiscountPercent float64         `json:"discount_percent,omitempty"`
	Multiplier      float64         `json:"multiplier,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func loyaltyProfileResponseFrom(profile *domain.LoyaltyProfile) LoyaltyProfileResponse {
	return LoyaltyProfileResponse{
		CustomerID:     profile.CustomerID,
		Points:         profile.Points,
		Tier:           profile.Tier,
		TierOverridden: profile.TierOverridden,
		UpdatedAt:      profile.UpdatedAt,
	}
}

type AdjustPointsParams struct {
	Delta     int64  `json:"delta" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=add deduct"`
	Reason    string `json:"reason" binding:"required,min=1,max=500"`
}

// Adjust POST RouteGroup + LoyaltyRoute + /:customerID/adjust.
func (l *LoyaltyHandler) Adjust(c *gin.Context) {
	adminID := getAdminIDFromContext(c)

	customerID, ok := parseIDParam(c, "customerID")
	if !ok {
		return
	}

	var params AdjustPointsParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, adjErr := l.loyaltySvs.AdjustPoints(reqCtx, adminID, service.AdjustPointsArgs{
		CustomerID: customerID,
		Amount:     params.Delta,
		Direction:  domain.DirectionType(params.Direction),
		Reason:     params.Reason,
	})
	if adjErr != nil {
		abortWithBusinessError(c, adjErr)
		return
	}

	c.JSON(http.StatusOK, loyaltyProfileResponseFrom(profile))
}

type SetTierParams struct {
	Tier string `json:"tier" binding:"required"`
}

// SetTier PUT RouteGroup + LoyaltyRoute + /:customerID/tier.
func (l *LoyaltyHandler) SetTier(c *gin.Context) {
	adminID := getAdminIDFromContext(c)

	customerID, ok := parseIDParam(c, "customerID")
	if !ok {
		return
	}

	var params SetTierParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, setErr := l.loyaltySvs.SetTierOverride(reqCtx, adminID, customerID, domain.TierType(params.Tier))
	if setErr != nil {
		abortWithBusinessError(c, setErr)
		return
	}

	c.JSON(http.StatusOK, loyaltyProfileResponseFrom(profile))
}

// Show GET RouteGroup + LoyaltyRoute + /:customerID.
func (l *LoyaltyHandler) Show(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := l.loyaltySvs.GetProfile(reqCtx, customerID)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	response := loyaltyProfileResponseFrom(view.Profile)
	response.DiscountPercent = view.DiscountPercent.InexactFloat64()
	response.Multiplier = view.Multiplier.InexactFloat64()
	c.JSON(http.StatusOK, response)
}

type LoyaltyTransactionResponse struct {
	ID        int64                `json:"id"`
	AdminID   int64                `json:"admin_id"`
	Direction domain.DirectionType `json:"direction"`
	Amount    int64                `json:"amount"`
	Reason    string               `json:"reason"`
	CreatedAt time.Time            `json:"created_at"`
}

// Transactions GET RouteGroup + LoyaltyRoute + /:customerID/transactions.
func (l *LoyaltyHandler) Transactions(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := l.loyaltySvs.GetTransactions(reqCtx, customerID)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	response := make([]LoyaltyTransactionResponse, len(transactions))
	for i, transaction := range transactions {
		response[i] = LoyaltyTransactionResponse{
			ID:        transaction.ID,
			AdminID:   transaction.AdminID,
			Direction: transaction.Direction,
			Amount:    transaction.Amount,
			Reason:    transaction.Reason,
			CreatedAt: transaction.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}
