package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/internhub/internal/app/models/dto"
	"github.com/internhub/internhub/internal/pkg/logger"
)

// HealthController reports service and database liveness
type HealthController struct {
	db *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(db *pgxpool.Pool) *HealthController {
	return &HealthController{
		db: db,
	}
}

// Health checks database connectivity
// @Summary Health check
// @Description Runs SELECT 1 against the database pool
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service healthy"
// @Failure 500 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	var one int
	if err := c.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		logger.Error().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Database connection failed"))
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", DB: one})
}
