package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/internhub/internhub/internal/pkg/apperrors"
)

// parseIDParam reads a numeric path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("Invalid " + name + " parameter")
	}

	return id, nil
}
