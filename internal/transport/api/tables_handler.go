package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-resto/internal/domain"
)

type TablesHandler struct {
	tableSvs TableServicer
}

func NewTablesHandler(tableSvs TableServicer) *TablesHandler {
	return &TablesHandler{
		tableSvs: tableSvs,
	}
}

type TableResponse struct {
	ID        int64     `json:"id"`
	Number    int32     `json:"number"`
	Capacity  int32     `json:"capacity"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func tableResponseFrom(table *domain.DiningTable) TableResponse {
	return TableResponse{
		ID:        table.ID,
		Number:    table.Number,
		Capacity:  table.Capacity,
		Location:  table.Location,
		CreatedAt: table.CreatedAt,
		UpdatedAt: table.UpdatedAt,
	}
}

type CreateTableParams struct {
	Number   int32  `json:"number" binding:"required,gt=0"`
	Capacity int32  `json:"capacity" binding:"required,gt=0"`
	Location string `json:"location" binding:"max=50"`
}

// Create POST RouteGroup + TablesRoute.
func (t *TablesHandler) Create(c *gin.Context) {
	var params CreateTableParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	table, createErr := t.tableSvs.Create(reqCtx, params.Number, params.Capacity, params.Location)
	if createErr != nil {
		abortWithBusinessError(c, createErr)
		return
	}

	c.JSON(http.StatusCreated, tableResponseFrom(table))
}

// Index GET RouteGroup + TablesRoute.
func (t *TablesHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tables, err := t.tableSvs.List(reqCtx)
	if err != nil {
		abortWithBusinessError(c, err)
		return
	}

	response := make([]TableResponse, len(tables))
	for i := range tables {
		response[i] = tableResponseFrom(&tables[i])
	}
	c.JSON(http.StatusOK, response)
}

// Delete DELETE RouteGroup + TablesRoute + /:id. Стол с активными бронями удалить нельзя.
func (t *TablesHandler) Delete(c *gin.Context) {
	tableID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := t.tableSvs.Delete(reqCtx, tableID); err != nil {
		abortWithBusinessError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
