// Package controllers maps the HTTP surface onto the service layer. Every
// handler binds and validates the request, delegates to a service, and
// renders the shared response envelope.
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aaryan/councilhub/internal/middleware"
)

// parseID reads the numeric :id path parameter. On failure the error
// response has already been written.
func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleInvalidID(ctx)
		return 0, false
	}
	return id, true
}
